// internal/catalog/entity.go
package catalog

import "time"

// Product is a read-only snapshot of a catalog entry. Stock is the
// authoritative purchase ceiling at the time of the fetch; it is not
// live-updated once copied into a cart line.
type Product struct {
	ID           string   `json:"id"`
	SKU          string   `json:"sku"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Brand        string   `json:"brand,omitempty"`
	Price        int64    `json:"price"` // Price in cents
	ComparePrice int64    `json:"compare_price,omitempty"`
	Stock        int      `json:"stock"`
	IsActive     bool     `json:"is_active"`
	Images       []Image  `json:"images,omitempty"`
	Rating       Rating   `json:"rating"`
	Tags         []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Image is a product image reference
type Image struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

// Rating is an aggregated review summary
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// PrimaryImage returns the primary image URL, or the first one available
func (p *Product) PrimaryImage() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

// InStock reports whether any quantity is purchasable
func (p *Product) InStock() bool {
	return p.IsActive && p.Stock > 0
}

// Filters narrows a product listing
type Filters struct {
	Query    string
	Category string
	Brand    string
	MinPrice int64
	MaxPrice int64
	SortBy   string
	Page     int
	Limit    int
}

// Pagination represents pagination information
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Page is one page of a product listing
type Page struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}
