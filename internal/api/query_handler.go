package api

import (
	"context"
	"errors"
	"strings"

	"github.com/phrazzld/params-api/internal/binding"
)

// noSpaces rejects any string value containing a space character.
func noSpaces(v any) error {
	if s, ok := v.(string); ok && strings.Contains(s, " ") {
		return errors.New("value must not contain spaces")
	}
	return nil
}

func registerQueryRoutes(reg *Registry) error {
	routes := []Registration{
		{
			Method:  "GET",
			Pattern: "/usernames/",
			Schema: binding.NewSchema(
				binding.Query("username", binding.TypeString).
					Required().MinLen(3).MaxLen(20),
			),
			Handler: handleUsername,
		},
		{
			Method:  "GET",
			Pattern: "/products/",
			Schema: binding.NewSchema(
				binding.Query("code", binding.TypeString).
					Required().Pattern("^PROD-[0-9]{4}$"),
			),
			Handler: handleProductCode,
		},
		{
			Method:  "GET",
			Pattern: "/search/",
			Schema: binding.NewSchema(
				binding.Query("keyword", binding.TypeString).
					Alias("q").Required().MinLen(2).MaxLen(30),
			),
			Handler: handleSearch,
		},
		{
			Method:  "GET",
			Pattern: "/deprecated/",
			Schema: binding.NewSchema(
				binding.Query("old_param", binding.TypeString).Deprecated(),
				binding.Query("new_param", binding.TypeString),
			),
			Handler: handleDeprecated,
		},
		{
			Method:  "GET",
			Pattern: "/validate/",
			Schema: binding.NewSchema(
				binding.Query("text", binding.TypeString).
					Required().Check(noSpaces),
			),
			Handler: handleValidateText,
		},
		{
			Method:  "GET",
			Pattern: "/products/{product_id}",
			Schema: binding.NewSchema(
				binding.Path("product_id", binding.TypeInt).Gte(1).Lte(1000),
			),
			Handler: handleProductByID,
		},
		{
			Method:  "GET",
			Pattern: "/sizes/{item_id}",
			Schema: binding.NewSchema(
				binding.Path("item_id", binding.TypeInt).Gte(1).Lte(1000),
				// Exclusive bounds on both ends: 0 < size < 10.5.
				binding.Query("size", binding.TypeFloat).
					Required().Gt(0).Lt(10.5),
			),
			Handler: handleSize,
		},
	}
	return registerAll(reg, routes)
}

func handleUsername(ctx context.Context, in binding.Values) any {
	return map[string]any{"username": in.String("username")}
}

func handleProductCode(ctx context.Context, in binding.Values) any {
	return map[string]any{"code": in.String("code")}
}

func handleSearch(ctx context.Context, in binding.Values) any {
	return map[string]any{"search_keyword": in.String("keyword")}
}

func handleDeprecated(ctx context.Context, in binding.Values) any {
	return map[string]any{
		"old_param": optionalString(in, "old_param"),
		"new_param": optionalString(in, "new_param"),
	}
}

func handleValidateText(ctx context.Context, in binding.Values) any {
	return map[string]any{"text": in.String("text")}
}

func handleProductByID(ctx context.Context, in binding.Values) any {
	return map[string]any{"product_id": in.Int("product_id")}
}

func handleSize(ctx context.Context, in binding.Values) any {
	return map[string]any{
		"item_id": in.Int("item_id"),
		"size":    in.Float("size"),
	}
}
