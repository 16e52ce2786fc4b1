package domain

import "context"

// SiteConfig is the singleton site configuration record: branding, banner
// and currency/tax settings. At most one instance ever exists.
type SiteConfig struct {
	ID             string `json:"id"`
	CompanyName    string `json:"company_name"`
	LogoURL        string `json:"logo_url,omitempty"`
	HeaderText     string `json:"header_text,omitempty"`
	Tagline        string `json:"tagline,omitempty"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	ContactEmail   string `json:"contact_email,omitempty"`
	ContactPhone   string `json:"contact_phone,omitempty"`
	Address        string `json:"address,omitempty"`

	// Announcement banner
	BannerEnabled bool   `json:"banner_enabled"`
	BannerText    string `json:"banner_text,omitempty"`
	BannerLink    string `json:"banner_link,omitempty"`
	BannerColor   string `json:"banner_color"`

	// Currency and tax
	CurrencySymbol        string  `json:"currency_symbol"`
	TaxRate               float64 `json:"tax_rate"`
	FreeShippingThreshold float64 `json:"free_shipping_threshold"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SiteConfigCreate carries the caller-validated fields for creation.
type SiteConfigCreate struct {
	CompanyName    string
	LogoURL        string
	HeaderText     string
	Tagline        string
	PrimaryColor   string
	SecondaryColor string
	ContactEmail   string
	ContactPhone   string
	Address        string

	BannerEnabled bool
	BannerText    string
	BannerLink    string
	BannerColor   string

	CurrencySymbol        string
	TaxRate               float64
	FreeShippingThreshold float64
}

// SiteConfigUpdate is a partial update; nil fields are left unchanged.
type SiteConfigUpdate struct {
	CompanyName    *string
	LogoURL        *string
	HeaderText     *string
	Tagline        *string
	PrimaryColor   *string
	SecondaryColor *string
	ContactEmail   *string
	ContactPhone   *string
	Address        *string

	BannerEnabled *bool
	BannerText    *string
	BannerLink    *string
	BannerColor   *string

	CurrencySymbol        *string
	TaxRate               *float64
	FreeShippingThreshold *float64
}

// IsEmpty reports whether the update carries no set fields.
func (u SiteConfigUpdate) IsEmpty() bool {
	return u.CompanyName == nil && u.LogoURL == nil && u.HeaderText == nil &&
		u.Tagline == nil && u.PrimaryColor == nil && u.SecondaryColor == nil &&
		u.ContactEmail == nil && u.ContactPhone == nil && u.Address == nil &&
		u.BannerEnabled == nil && u.BannerText == nil && u.BannerLink == nil &&
		u.BannerColor == nil && u.CurrencySymbol == nil && u.TaxRate == nil &&
		u.FreeShippingThreshold == nil
}

// SiteConfigRepository defines the contract for site configuration access.
// The singleton is keyed by the first record in its collection rather than a
// caller-supplied id.
type SiteConfigRepository interface {
	Get(ctx context.Context) (*SiteConfig, error)
	Create(ctx context.Context, input SiteConfigCreate) (*SiteConfig, error)
	Update(ctx context.Context, update SiteConfigUpdate) (*SiteConfig, error)
}
