package shopapi

import (
	"slices"
	"strings"
	"time"
)

// Tag is the closed set of product families the shop sells.
type Tag string

const (
	TagCrochet    Tag = "crochet"
	TagEmbroidery Tag = "embroidery"
)

// Tags lists every valid tag in display order.
var Tags = []Tag{TagCrochet, TagEmbroidery}

// ParseTag normalises s and reports whether it names a known tag.
func ParseTag(s string) (Tag, bool) {
	t := Tag(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Tags, t) {
		return "", false
	}
	return t, true
}

type ReviewType string

const (
	ReviewChat ReviewType = "chat"
	ReviewText ReviewType = "text"
)

type Platform string

const (
	PlatformWhatsApp  Platform = "whatsapp"
	PlatformInstagram Platform = "instagram"
)

// Product is the canonical product schema. The API has shipped a plural
// "tags" field in the past; only the singular "tag" is read.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Tag         Tag      `json:"tag"`
	Image       string   `json:"image,omitempty"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
}

// Gallery returns the product's images, falling back to the primary image.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		out := make([]string, len(p.Images))
		copy(out, p.Images)
		return out
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

// Cover is the image shown on product cards.
func (p Product) Cover() string {
	if len(p.Images) > 0 && p.Images[0] != "" {
		return p.Images[0]
	}
	return p.Image
}

// OriginalPrice is the pre-discount price, rounded to whole units.
// Without a discount it equals Price.
func (p Product) OriginalPrice() float64 {
	if p.Discount == nil || *p.Discount <= 0 || *p.Discount >= 100 {
		return p.Price
	}
	orig := p.Price / (1 - *p.Discount/100)
	return float64(int64(orig + 0.5))
}

// ProductRef is the minimal shape returned by the typeahead endpoint.
type ProductRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type ProductPage struct {
	Products   []Product `json:"products"`
	TotalPages int       `json:"totalPages"`
	Total      int       `json:"total,omitempty"`
	Page       int       `json:"page,omitempty"`
}

type Category struct {
	Name  string `json:"category"`
	Image string `json:"image"`
	Count int    `json:"count"`
}

type Review struct {
	ID         string     `json:"_id"`
	Type       ReviewType `json:"type"`
	Platform   Platform   `json:"platform,omitempty"`
	AuthorName string     `json:"authorName,omitempty"`
	Rating     int        `json:"rating,omitempty"`
	Message    string     `json:"message"`
	ImageURL   string     `json:"imageUrl,omitempty"`
	ProductID  string     `json:"productId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type ReviewPage struct {
	Reviews    []Review `json:"reviews"`
	TotalPages int      `json:"totalPages"`
	Total      int      `json:"total,omitempty"`
}

// ReviewUpdate is the JSON body of PUT /api/reviews/:id.
type ReviewUpdate struct {
	Type       ReviewType `json:"type"`
	Platform   Platform   `json:"platform,omitempty"`
	AuthorName string     `json:"authorName,omitempty"`
	Rating     *int       `json:"rating,omitempty"`
	Message    string     `json:"message"`
	ProductID  string     `json:"productId,omitempty"`
}
