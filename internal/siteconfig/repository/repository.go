package repository

import (
	"context"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/derive"
	"github.com/storekit/admin-backend/internal/siteconfig/domain"
	"github.com/storekit/admin-backend/internal/storage"
)

const className = "SiteConfig"

// SiteConfigRepository maps the site configuration singleton onto the
// store's flat property schema.
type SiteConfigRepository struct {
	col storage.Collection
}

// NewSiteConfigRepository creates a repository over the given store handle.
func NewSiteConfigRepository(store storage.Store) *SiteConfigRepository {
	return &SiteConfigRepository{col: store.Collection(className)}
}

// Get returns the sole configuration record.
func (r *SiteConfigRepository) Get(ctx context.Context) (*domain.SiteConfig, error) {
	obj, err := r.fetchSingleton(ctx)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, apperrors.NotFound("Site configuration not found")
	}
	return decodeSiteConfig(*obj), nil
}

// Create inserts the configuration record. The singleton invariant is an
// application check performed before insert, not a store-level constraint:
// two racing creators can both pass it.
func (r *SiteConfigRepository) Create(ctx context.Context, input domain.SiteConfigCreate) (*domain.SiteConfig, error) {
	existing, err := r.fetchSingleton(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Site configuration already exists. Use update instead.")
	}

	now := derive.Timestamp()
	props := encodeSiteConfig(input)
	props["created_at"] = now
	props["updated_at"] = now

	id, err := r.col.Insert(ctx, props)
	if err != nil {
		return nil, apperrors.Database("create site config", err)
	}
	return decodeSiteConfig(storage.Object{ID: id, Properties: props}), nil
}

// Update merges the supplied fields into the sole record. An update with no
// set fields returns the current record untouched.
func (r *SiteConfigRepository) Update(ctx context.Context, update domain.SiteConfigUpdate) (*domain.SiteConfig, error) {
	obj, err := r.fetchSingleton(ctx)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, apperrors.NotFound("Site configuration not found")
	}

	if update.IsEmpty() {
		return decodeSiteConfig(*obj), nil
	}

	partial := encodeSiteConfigUpdate(update)
	partial["updated_at"] = derive.Timestamp()

	if err := r.col.Update(ctx, obj.ID, partial); err != nil {
		return nil, apperrors.Database("update site config", err)
	}

	updated, err := r.col.FetchByID(ctx, obj.ID)
	if err != nil {
		return nil, apperrors.Database("fetch site config", err)
	}
	if updated == nil {
		return nil, apperrors.NotFound("Site configuration not found")
	}
	return decodeSiteConfig(*updated), nil
}

// fetchSingleton returns the first record of the collection, or nil when the
// collection is empty.
func (r *SiteConfigRepository) fetchSingleton(ctx context.Context) (*storage.Object, error) {
	objects, err := r.col.Scan(ctx, 1, 0)
	if err != nil {
		return nil, apperrors.Database("fetch site config", err)
	}
	if len(objects) == 0 {
		return nil, nil
	}
	return &objects[0], nil
}

func encodeSiteConfig(input domain.SiteConfigCreate) storage.Properties {
	return storage.Properties{
		"company_name":            input.CompanyName,
		"logo_url":                input.LogoURL,
		"header_text":             input.HeaderText,
		"tagline":                 input.Tagline,
		"primary_color":           input.PrimaryColor,
		"secondary_color":         input.SecondaryColor,
		"contact_email":           input.ContactEmail,
		"contact_phone":           input.ContactPhone,
		"address":                 input.Address,
		"banner_enabled":          input.BannerEnabled,
		"banner_text":             input.BannerText,
		"banner_link":             input.BannerLink,
		"banner_color":            input.BannerColor,
		"currency_symbol":         input.CurrencySymbol,
		"tax_rate":                input.TaxRate,
		"free_shipping_threshold": input.FreeShippingThreshold,
	}
}

func encodeSiteConfigUpdate(update domain.SiteConfigUpdate) storage.Properties {
	partial := storage.Properties{}
	if update.CompanyName != nil {
		partial["company_name"] = *update.CompanyName
	}
	if update.LogoURL != nil {
		partial["logo_url"] = *update.LogoURL
	}
	if update.HeaderText != nil {
		partial["header_text"] = *update.HeaderText
	}
	if update.Tagline != nil {
		partial["tagline"] = *update.Tagline
	}
	if update.PrimaryColor != nil {
		partial["primary_color"] = *update.PrimaryColor
	}
	if update.SecondaryColor != nil {
		partial["secondary_color"] = *update.SecondaryColor
	}
	if update.ContactEmail != nil {
		partial["contact_email"] = *update.ContactEmail
	}
	if update.ContactPhone != nil {
		partial["contact_phone"] = *update.ContactPhone
	}
	if update.Address != nil {
		partial["address"] = *update.Address
	}
	if update.BannerEnabled != nil {
		partial["banner_enabled"] = *update.BannerEnabled
	}
	if update.BannerText != nil {
		partial["banner_text"] = *update.BannerText
	}
	if update.BannerLink != nil {
		partial["banner_link"] = *update.BannerLink
	}
	if update.BannerColor != nil {
		partial["banner_color"] = *update.BannerColor
	}
	if update.CurrencySymbol != nil {
		partial["currency_symbol"] = *update.CurrencySymbol
	}
	if update.TaxRate != nil {
		partial["tax_rate"] = *update.TaxRate
	}
	if update.FreeShippingThreshold != nil {
		partial["free_shipping_threshold"] = *update.FreeShippingThreshold
	}
	return partial
}

func decodeSiteConfig(obj storage.Object) *domain.SiteConfig {
	p := obj.Properties
	return &domain.SiteConfig{
		ID:                    obj.ID,
		CompanyName:           p.String("company_name"),
		LogoURL:               p.String("logo_url"),
		HeaderText:            p.String("header_text"),
		Tagline:               p.String("tagline"),
		PrimaryColor:          p.String("primary_color"),
		SecondaryColor:        p.String("secondary_color"),
		ContactEmail:          p.String("contact_email"),
		ContactPhone:          p.String("contact_phone"),
		Address:               p.String("address"),
		BannerEnabled:         p.Bool("banner_enabled"),
		BannerText:            p.String("banner_text"),
		BannerLink:            p.String("banner_link"),
		BannerColor:           p.String("banner_color"),
		CurrencySymbol:        p.String("currency_symbol"),
		TaxRate:               p.Float("tax_rate"),
		FreeShippingThreshold: p.Float("free_shipping_threshold"),
		CreatedAt:             p.String("created_at"),
		UpdatedAt:             p.String("updated_at"),
	}
}
