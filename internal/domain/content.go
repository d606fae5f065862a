package domain

// Category is a storefront navigation category
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url,omitempty"`
}

// Collection is a curated set of products shown on the storefront
type Collection struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	ProductIDs []string `json:"product_ids"`
}

// HeroBanner is the storefront's landing page hero content
type HeroBanner struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	CTALabel   string `json:"cta_label"`
	CTAPath    string `json:"cta_path"`
}
