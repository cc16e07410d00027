package admin

import (
	"encoding/json"
	"strconv"
	"strings"

	"storefront/internal/shopapi"
)

// ProductForm is the product editor's field state. Price stays a string
// until validated so the form can be echoed back unchanged.
type ProductForm struct {
	Name        string `json:"name" validate:"notblank"`
	Price       string `json:"price" validate:"notblank,price"`
	Category    string `json:"category" validate:"notblank"`
	Tag         string `json:"tag" validate:"required,oneof=crochet embroidery"`
	Description string `json:"description,omitempty"`
}

var productMessages = map[string]string{
	"name":           "Product name is required",
	"price.notblank": "Price is required",
	"price.price":    "Price must be a valid non-negative number",
	"category":       "Category is required",
	"tag":            "Tag must be crochet or embroidery",
}

// FormFromProduct prefills the editor for an existing product.
func FormFromProduct(p shopapi.Product) ProductForm {
	return ProductForm{
		Name:        p.Name,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Category:    p.Category,
		Tag:         string(p.Tag),
		Description: p.Description,
	}
}

func (f *ProductForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Price = strings.TrimSpace(f.Price)
	f.Category = strings.TrimSpace(f.Category)
	f.Tag = strings.ToLower(strings.TrimSpace(f.Tag))
	f.Description = strings.TrimSpace(f.Description)
}

// Validate checks the fields and, for creates, that at least one image is
// selected.
func (f ProductForm) Validate(images *ImageSet, creating bool) error {
	f.normalize()
	if err := check(f, productMessages); err != nil {
		return err
	}
	if creating && (images == nil || images.Len() == 0) {
		return fieldError("images", "Please upload at least one image")
	}
	if images != nil && images.Len() > MaxImages {
		return fieldError("images", "Maximum 5 images allowed per product")
	}
	return nil
}

// Multipart assembles the request body. New files go under "images" and,
// on edit, the retained URLs go under "existingImages" as a JSON array.
func (f ProductForm) Multipart(images *ImageSet, editing bool) (*shopapi.Form, error) {
	f.normalize()
	form := &shopapi.Form{}
	form.Set("name", f.Name)
	form.Set("price", f.Price)
	form.Set("category", f.Category)
	form.Set("tag", f.Tag)
	form.SetIf("description", f.Description)
	if images == nil {
		return form, nil
	}
	for _, file := range images.Files("images") {
		form.AddFile(file)
	}
	if editing {
		retained := make([]string, 0)
		for _, u := range images.Existing() {
			if strings.HasPrefix(u, "http") {
				retained = append(retained, u)
			}
		}
		b, err := json.Marshal(retained)
		if err != nil {
			return nil, err
		}
		form.Set("existingImages", string(b))
	}
	return form, nil
}
