package admin

import (
	"strconv"
	"strings"

	"storefront/internal/shopapi"
)

// ReviewForm is the review editor's field state. Field order is the order
// failures are reported in.
type ReviewForm struct {
	Message    string `json:"message" validate:"notblank"`
	Type       string `json:"type" validate:"required,oneof=chat text"`
	Rating     string `json:"rating,omitempty" validate:"required_if=Type text,omitempty,oneof=1 2 3 4 5"`
	Platform   string `json:"platform,omitempty" validate:"required_if=Type chat,omitempty,oneof=whatsapp instagram"`
	AuthorName string `json:"authorName,omitempty"`
	ProductID  string `json:"productId,omitempty"`
}

var reviewMessages = map[string]string{
	"type":     "Review type must be chat or text",
	"platform": "Please select a platform for chat reviews",
	"rating":   "Please provide a rating for text reviews",
	"message":  "Please fill in the message field",
}

func FormFromReview(r shopapi.Review) ReviewForm {
	f := ReviewForm{
		Type:       string(r.Type),
		Platform:   string(r.Platform),
		AuthorName: r.AuthorName,
		Message:    r.Message,
		ProductID:  r.ProductID,
	}
	if r.Rating > 0 {
		f.Rating = strconv.Itoa(r.Rating)
	}
	return f
}

func (f *ReviewForm) normalize() {
	f.Type = strings.ToLower(strings.TrimSpace(f.Type))
	f.Platform = strings.ToLower(strings.TrimSpace(f.Platform))
	f.AuthorName = strings.TrimSpace(f.AuthorName)
	f.Rating = strings.TrimSpace(f.Rating)
	f.Message = strings.TrimSpace(f.Message)
	f.ProductID = strings.TrimSpace(f.ProductID)
	// Fields of the other review type are ignored.
	switch shopapi.ReviewType(f.Type) {
	case shopapi.ReviewChat:
		f.Rating = ""
	case shopapi.ReviewText:
		f.Platform = ""
	}
}

func (f ReviewForm) Validate() error {
	f.normalize()
	return check(f, reviewMessages)
}

// Screenshot validates an optional chat screenshot.
func (f ReviewForm) Screenshot(u *Upload) (*shopapi.File, error) {
	if u == nil || len(u.Data) == 0 {
		return nil, nil
	}
	if len(u.Data) > MaxImageBytes {
		return nil, fieldError("image", "File size must be less than 10MB")
	}
	ct, ok := detectImage(u.Data)
	if !ok {
		return nil, fieldError("image", "Please select a valid image file")
	}
	return &shopapi.File{Field: "image", Name: u.Name, ContentType: ct, Data: u.Data}, nil
}

// NewReview converts a validated form for create.
func (f ReviewForm) NewReview(shot *shopapi.File) shopapi.NewReview {
	f.normalize()
	rating, _ := strconv.Atoi(f.Rating)
	return shopapi.NewReview{
		Type:       shopapi.ReviewType(f.Type),
		Platform:   shopapi.Platform(f.Platform),
		AuthorName: f.AuthorName,
		Rating:     rating,
		Message:    f.Message,
		ProductID:  f.ProductID,
		Screenshot: shot,
	}
}

// Update converts a validated form for the JSON update body.
func (f ReviewForm) Update() shopapi.ReviewUpdate {
	f.normalize()
	u := shopapi.ReviewUpdate{
		Type:       shopapi.ReviewType(f.Type),
		Platform:   shopapi.Platform(f.Platform),
		AuthorName: f.AuthorName,
		Message:    f.Message,
		ProductID:  f.ProductID,
	}
	if rating, err := strconv.Atoi(f.Rating); err == nil && rating > 0 {
		u.Rating = &rating
	}
	return u
}
