package api

import (
	"context"
	"time"

	"github.com/phrazzld/params-api/internal/binding"
)

func registerDatatypeRoutes(reg *Registry) error {
	routes := []Registration{
		{
			Method:  "PUT",
			Pattern: "/process/{item_id}",
			Schema: binding.NewSchema(
				binding.Path("item_id", binding.TypeUUID),
				binding.Body("start_datetime", binding.TypeDateTime).Required(),
				binding.Body("end_datetime", binding.TypeDateTime).Required(),
				binding.Body("process_after", binding.TypeDuration).Required(),
				binding.Body("repeat_at", binding.TypeTimeOfDay),
			),
			Handler: handleProcessItem,
		},
		{
			Method:  "GET",
			Pattern: "/cookie/",
			Schema: binding.NewSchema(
				binding.Cookie("ads_id", binding.TypeString),
			),
			Handler: handleCookie,
		},
		{
			Method:  "GET",
			Pattern: "/header/",
			Schema: binding.NewSchema(
				binding.Header("user_agent", binding.TypeString),
			),
			Handler: handleHeader,
		},
		{
			Method:  "GET",
			Pattern: "/multi-header/",
			Schema: binding.NewSchema(
				binding.Header("x_token", binding.TypeString).List(),
			),
			Handler: handleMultiHeader,
		},
	}
	return registerAll(reg, routes)
}

// handleProcessItem derives the scheduling window: start_process is the
// start pushed out by process_after, duration is what remains until
// end_datetime.
func handleProcessItem(ctx context.Context, in binding.Values) any {
	start := in.Time("start_datetime")
	end := in.Time("end_datetime")
	after := in.Duration("process_after")

	startProcess := start.Add(time.Duration(after))
	duration := binding.Duration(end.Sub(startProcess))

	result := map[string]any{
		"item_id":        in.UUID("item_id"),
		"start_datetime": start,
		"end_datetime":   end,
		"process_after":  after,
		"repeat_at":      nil,
		"start_process":  startProcess,
		"duration":       duration,
	}
	if in.Has("repeat_at") {
		result["repeat_at"] = in.TimeOfDay("repeat_at")
	}
	return result
}

func handleCookie(ctx context.Context, in binding.Values) any {
	return map[string]any{"ads_id": optionalString(in, "ads_id")}
}

func handleHeader(ctx context.Context, in binding.Values) any {
	return map[string]any{"User-Agent": optionalString(in, "user_agent")}
}

func handleMultiHeader(ctx context.Context, in binding.Values) any {
	var tokens any
	if in.Has("x_token") {
		tokens = in.Strings("x_token")
	}
	return map[string]any{"X-Token values": tokens}
}
