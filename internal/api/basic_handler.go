package api

import (
	"context"
	"fmt"

	"github.com/phrazzld/params-api/internal/binding"
)

// registerBasicRoutes wires the greeting, user, model, and file routes.
// /users/me must be declared alongside /users/{user_id}: chi resolves
// the static "me" segment ahead of the parameterized one.
func registerBasicRoutes(reg *Registry) error {
	routes := []Registration{
		{
			Method:  "GET",
			Pattern: "/",
			Schema:  binding.NewSchema(),
			Handler: handleRoot,
		},
		{
			Method:  "GET",
			Pattern: "/hello/{name}",
			Schema: binding.NewSchema(
				binding.Path("name", binding.TypeString),
			),
			Handler: handleHello,
		},
		{
			Method:  "GET",
			Pattern: "/users/me",
			Schema:  binding.NewSchema(),
			Handler: handleCurrentUser,
		},
		{
			Method:  "GET",
			Pattern: "/users/{user_id}",
			Schema: binding.NewSchema(
				binding.Path("user_id", binding.TypeString),
			),
			Handler: handleUser,
		},
		{
			Method:  "GET",
			Pattern: "/users",
			Schema:  binding.NewSchema(),
			Handler: handleUsers,
		},
		{
			Method:  "GET",
			Pattern: "/users/{user_id}/items/{item_id}",
			Schema: binding.NewSchema(
				binding.Path("user_id", binding.TypeInt),
				binding.Path("item_id", binding.TypeString),
				binding.Query("q", binding.TypeString),
				binding.Query("short", binding.TypeBool).Default(false),
			),
			Handler: handleUserItem,
		},
		{
			Method:  "GET",
			Pattern: "/models/{model_name}",
			Schema: binding.NewSchema(
				binding.Path("model_name", binding.TypeString).
					Enum("alexnet", "resent", "lenet"),
			),
			Handler: handleModel,
		},
		{
			Method:  "GET",
			Pattern: "/files/*",
			Schema: binding.NewSchema(
				// The wildcard captures the remaining path segments,
				// including embedded slashes.
				binding.Path("file_path", binding.TypeString).Alias("*"),
			),
			Handler: handleFile,
		},
	}
	return registerAll(reg, routes)
}

func handleRoot(ctx context.Context, in binding.Values) any {
	return map[string]any{"message": "Hello World"}
}

func handleHello(ctx context.Context, in binding.Values) any {
	return map[string]any{"message": fmt.Sprintf("Hello, %s!", in.String("name"))}
}

func handleCurrentUser(ctx context.Context, in binding.Values) any {
	return map[string]any{"user_id": "the current user"}
}

func handleUser(ctx context.Context, in binding.Values) any {
	return map[string]any{"user_id": in.String("user_id")}
}

// handleUsers returns a fixed ordered sequence.
func handleUsers(ctx context.Context, in binding.Values) any {
	return []string{"Rick", "Morty"}
}

func handleUserItem(ctx context.Context, in binding.Values) any {
	result := map[string]any{
		"user_id": in.Int("user_id"),
		"item_id": in.String("item_id"),
		"q":       nil,
		"short":   in.Bool("short"),
	}
	if in.Has("q") {
		result["q"] = in.String("q")
	}
	return result
}

func handleModel(ctx context.Context, in binding.Values) any {
	model := in.String("model_name")
	message := "Have some ridiculous"
	switch model {
	case "alexnet":
		message = "Deep Learning FTW!"
	case "lenet":
		message = "LeCNN all the images"
	}
	return map[string]any{"model_name": model, "message": message}
}

func handleFile(ctx context.Context, in binding.Values) any {
	return map[string]any{"file_path": in.String("file_path")}
}
