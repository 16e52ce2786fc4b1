package weaviate

import (
	"context"
	"fmt"

	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/storekit/admin-backend/pkg/logger"
)

// Weaviate schemas are flat: every class persists scalar properties only.
// Structured domain fields (order items, product attributes) are stored as
// JSON-encoded TEXT properties (items_json, attributes_json) because the
// store cannot index nested shapes.

type propertyDef struct {
	name     string
	dataType string
}

type classDef struct {
	name        string
	description string
	vectorized  bool
	properties  []propertyDef
}

var classes = []classDef{
	{
		name:        "SiteConfig",
		description: "Website configuration and branding",
		properties: []propertyDef{
			{"company_name", "text"},
			{"logo_url", "text"},
			{"header_text", "text"},
			{"tagline", "text"},
			{"primary_color", "text"},
			{"secondary_color", "text"},
			{"contact_email", "text"},
			{"contact_phone", "text"},
			{"address", "text"},
			{"banner_enabled", "boolean"},
			{"banner_text", "text"},
			{"banner_link", "text"},
			{"banner_color", "text"},
			{"currency_symbol", "text"},
			{"tax_rate", "number"},
			{"free_shipping_threshold", "number"},
			{"created_at", "text"},
			{"updated_at", "text"},
		},
	},
	{
		name:        "Section",
		description: "Website sections and subsections",
		vectorized:  true,
		properties: []propertyDef{
			{"name", "text"},
			{"description", "text"},
			{"order", "int"},
			{"is_active", "boolean"},
			{"parent_section_id", "text"},
			{"created_at", "text"},
			{"updated_at", "text"},
		},
	},
	{
		name:        "Category",
		description: "Product categories and subcategories",
		vectorized:  true,
		properties: []propertyDef{
			{"name", "text"},
			{"description", "text"},
			{"section_id", "text"},
			{"parent_category_id", "text"},
			{"is_active", "boolean"},
			{"order", "int"},
			{"slug", "text"},
			{"image_url", "text"},
			{"created_at", "text"},
			{"updated_at", "text"},
		},
	},
	{
		name:        "Product",
		description: "Products and items for sale",
		vectorized:  true,
		properties: []propertyDef{
			{"name", "text"},
			{"description", "text"},
			{"price", "number"},
			{"compare_at_price", "number"},
			{"cost", "number"},
			{"category_id", "text"},
			{"section_id", "text"},
			{"sku", "text"},
			{"inventory_quantity", "int"},
			{"image_url", "text"},
			{"is_active", "boolean"},
			{"featured", "boolean"},
			{"discount_percentage", "number"},
			{"attributes_json", "text"},
			{"slug", "text"},
			{"created_at", "text"},
			{"updated_at", "text"},
		},
	},
	{
		name:        "Order",
		description: "Customer orders",
		properties: []propertyDef{
			{"order_number", "text"},
			{"customer_name", "text"},
			{"customer_email", "text"},
			{"customer_phone", "text"},
			{"shipping_address", "text"},
			{"billing_address", "text"},
			{"items_json", "text"},
			{"subtotal", "number"},
			{"tax", "number"},
			{"shipping_cost", "number"},
			{"total", "number"},
			{"status", "text"},
			{"notes", "text"},
			{"created_at", "text"},
			{"updated_at", "text"},
		},
	},
}

// scanFields builds the GraphQL selection for a class: all of its scalar
// properties plus the object key.
func scanFields(class string) []graphql.Field {
	for _, def := range classes {
		if def.name != class {
			continue
		}
		fields := make([]graphql.Field, 0, len(def.properties)+1)
		for _, p := range def.properties {
			fields = append(fields, graphql.Field{Name: p.name})
		}
		fields = append(fields, graphql.Field{
			Name:   "_additional",
			Fields: []graphql.Field{{Name: "id"}},
		})
		return fields
	}
	return []graphql.Field{{Name: "_additional", Fields: []graphql.Field{{Name: "id"}}}}
}

// EnsureSchema creates any missing collection classes. Existing classes are
// left untouched so restarts never drop data.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, def := range classes {
		exists, err := s.client.Schema().ClassExistenceChecker().
			WithClassName(def.name).
			Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to check class %s: %w", def.name, err)
		}
		if exists {
			continue
		}

		vectorizer := "none"
		if def.vectorized {
			vectorizer = "text2vec-transformers"
		}

		properties := make([]*models.Property, 0, len(def.properties))
		for _, p := range def.properties {
			properties = append(properties, &models.Property{
				Name:     p.name,
				DataType: []string{p.dataType},
			})
		}

		class := &models.Class{
			Class:       def.name,
			Description: def.description,
			Vectorizer:  vectorizer,
			Properties:  properties,
		}
		if err := s.client.Schema().ClassCreator().WithClass(class).Do(ctx); err != nil {
			return fmt.Errorf("failed to create class %s: %w", def.name, err)
		}

		logger.Logger.Info().Str("class", def.name).Msg("Created collection class")
	}
	return nil
}
