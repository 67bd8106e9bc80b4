package api

import (
	"context"

	"github.com/phrazzld/params-api/internal/binding"
)

// itemFields declares the item body shared by the create and update
// routes: name and price required, description and tax optional.
func itemFields() []*binding.Field {
	return []*binding.Field{
		binding.Body("name", binding.TypeString).Required(),
		binding.Body("description", binding.TypeString),
		binding.Body("price", binding.TypeFloat).Required(),
		binding.Body("tax", binding.TypeFloat),
	}
}

func registerItemRoutes(reg *Registry) error {
	routes := []Registration{
		{
			Method:  "POST",
			Pattern: "/items/",
			Schema:  binding.NewSchema(itemFields()...),
			Handler: handleCreateItem,
		},
		{
			Method:  "PUT",
			Pattern: "/items/{item_id}",
			Schema: binding.NewSchema(append(itemFields(),
				binding.Path("item_id", binding.TypeInt),
				binding.Query("q", binding.TypeString),
			)...),
			Handler: handleUpdateItem,
		},
		{
			Method:  "GET",
			Pattern: "/items/{item_id}",
			Schema: binding.NewSchema(
				binding.Path("item_id", binding.TypeInt),
				binding.Query("q", binding.TypeString).Alias("item-query"),
			),
			Handler: handleReadItem,
		},
		{
			Method:  "GET",
			Pattern: "/items-filter/",
			Schema: binding.NewSchema(
				binding.Query("limit", binding.TypeInt).Gt(0).Lte(100).Default(100),
				binding.Query("offset", binding.TypeInt).Gte(0).Default(0),
				binding.Query("order_by", binding.TypeString).
					Enum("created_at", "updated_at").Default("created_at"),
				binding.Query("tags", binding.TypeString).List().Default([]string{}),
			),
			Handler: handleFilterItems,
		},
		{
			// Cookie-group variant of GET /items/: the declared cookies
			// form a strict group, so any undeclared cookie is rejected.
			Method:  "GET",
			Pattern: "/items/",
			Schema: binding.NewSchema(
				binding.Cookie("session_id", binding.TypeString).Required(),
				binding.Cookie("fatebook_tracker", binding.TypeString),
				binding.Cookie("googall_tracker", binding.TypeString),
			).Strict(binding.SourceCookie),
			Handler: handleItemCookies,
		},
	}
	return registerAll(reg, routes)
}

// handleCreateItem echoes the item and derives price_with_tax only when
// tax was supplied. Optional fields serialize as null when absent.
func handleCreateItem(ctx context.Context, in binding.Values) any {
	result := itemDict(in)
	if in.Has("tax") {
		result["price_with_tax"] = in.Float("price") + in.Float("tax")
	}
	return result
}

func handleUpdateItem(ctx context.Context, in binding.Values) any {
	result := itemDict(in)
	result["item_id"] = in.Int("item_id")
	if in.Has("q") && in.String("q") != "" {
		result["q"] = in.String("q")
	}
	return result
}

func handleReadItem(ctx context.Context, in binding.Values) any {
	result := map[string]any{"item_id": in.Int("item_id")}
	if in.Has("q") && in.String("q") != "" {
		result["q"] = in.String("q")
	}
	return result
}

func handleFilterItems(ctx context.Context, in binding.Values) any {
	tags := in.Strings("tags")
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"limit":    in.Int("limit"),
		"offset":   in.Int("offset"),
		"order_by": in.String("order_by"),
		"tags":     tags,
	}
}

func handleItemCookies(ctx context.Context, in binding.Values) any {
	return map[string]any{
		"session_id":       in.String("session_id"),
		"fatebook_tracker": optionalString(in, "fatebook_tracker"),
		"googall_tracker":  optionalString(in, "googall_tracker"),
	}
}

// itemDict builds the echo form of an item body with optional fields
// explicitly null when absent.
func itemDict(in binding.Values) map[string]any {
	return map[string]any{
		"name":        in.String("name"),
		"description": optionalString(in, "description"),
		"price":       in.Float("price"),
		"tax":         optionalFloat(in, "tax"),
	}
}

func optionalString(in binding.Values, name string) any {
	if in.Has(name) {
		return in.String(name)
	}
	return nil
}

func optionalFloat(in binding.Values, name string) any {
	if in.Has(name) {
		return in.Float(name)
	}
	return nil
}
