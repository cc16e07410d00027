package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"storefront/internal/shopapi"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func png(name string) Upload {
	return Upload{Name: name, Data: append([]byte{}, pngHeader...)}
}

type fakeProductAPI struct {
	mu        sync.Mutex
	lists     int
	creates   int
	updates   int
	deletes   int
	page      shopapi.ProductPage
	writeErr  error
	deleteErr error
	lastForm  *shopapi.Form
	lastToken string
}

func (f *fakeProductAPI) ListProducts(_ context.Context, _ shopapi.ProductQuery, _ ...shopapi.CallOption) (shopapi.ProductPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	return f.page, nil
}

func (f *fakeProductAPI) CreateProduct(_ context.Context, token string, form *shopapi.Form) (shopapi.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	f.lastForm, f.lastToken = form, token
	return shopapi.Product{ID: "new"}, f.writeErr
}

func (f *fakeProductAPI) UpdateProduct(_ context.Context, token, _ string, form *shopapi.Form) (shopapi.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	f.lastForm, f.lastToken = form, token
	return shopapi.Product{}, f.writeErr
}

func (f *fakeProductAPI) DeleteProduct(context.Context, string, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	return f.deleteErr
}

func validForm() ProductForm {
	return ProductForm{Name: "Tulip", Price: "450", Category: "Bouquet", Tag: "crochet"}
}

func TestImageSetRejectsLargeFile(t *testing.T) {
	big := Upload{Name: "big.png", Data: append(append([]byte{}, pngHeader...), make([]byte, 12<<20)...)}
	s := NewImageSet(nil)
	errs := s.Add(png("a.png"), big, png("b.png"))
	if len(errs) != 1 || errs[0].Name != "big.png" || !strings.Contains(errs[0].Reason, "10MB") {
		t.Fatalf("errs = %+v", errs)
	}
	if s.Len() != 2 {
		t.Fatalf("kept %d files, want 2", s.Len())
	}
	if got := s.Added()[0].ContentType; got != "image/png" {
		t.Fatalf("content type = %q", got)
	}
}

func TestImageSetRejectsNonImage(t *testing.T) {
	s := NewImageSet(nil)
	errs := s.Add(Upload{Name: "notes.txt", Data: []byte("hello there")})
	if len(errs) != 1 || s.Len() != 0 {
		t.Fatalf("errs = %+v len = %d", errs, s.Len())
	}
}

func TestImageSetCapIncludesExisting(t *testing.T) {
	s := NewImageSet([]string{"https://x/1.jpg", "https://x/2.jpg", "https://x/3.jpg"})
	errs := s.Add(png("a.png"), png("b.png"), png("c.png"))
	if s.Len() != MaxImages || len(errs) != 1 || errs[0].Name != "c.png" {
		t.Fatalf("len = %d errs = %+v", s.Len(), errs)
	}

	s.RemoveExisting("https://x/2.jpg")
	if errs := s.Add(png("c.png")); len(errs) != 0 || s.Len() != MaxImages {
		t.Fatalf("after remove: len = %d errs = %+v", s.Len(), errs)
	}
}

func TestImageSetRemoveAdded(t *testing.T) {
	s := NewImageSet([]string{"https://x/1.jpg"})
	s.Add(png("a.png"), png("b.png"), png("c.png"))

	if !s.RemoveAdded(1) {
		t.Fatal("RemoveAdded(1) = false")
	}
	if s.RemoveAdded(5) || s.RemoveAdded(-1) {
		t.Fatal("out of range index removed a file")
	}
	var names []string
	for _, f := range s.Files("images") {
		names = append(names, f.Name)
	}
	if len(names) != 2 || names[0] != "a.png" || names[1] != "c.png" {
		t.Fatalf("files = %v, want [a.png c.png]", names)
	}
	if s.Len() != 3 || len(s.Existing()) != 1 {
		t.Fatalf("len = %d existing = %v", s.Len(), s.Existing())
	}
}

func TestCreateWithEmptyNameSendsNothing(t *testing.T) {
	api := &fakeProductAPI{}
	e := NewProductEditor(api, "tok", shopapi.ProductQuery{Page: 1, Limit: 6})
	_ = e.OpenCreate()
	f := validForm()
	f.Name = "  "
	e.SetForm(f)
	e.Images().Add(png("a.png"))

	err := e.Submit(context.Background())
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Message != "Product name is required" {
		t.Fatalf("err = %v", err)
	}
	if api.creates != 0 {
		t.Fatal("request sent for invalid form")
	}
	if v := e.View(); v.Modal.State != StateModal || v.Modal.Error != "Product name is required" {
		t.Fatalf("view = %+v", v.Modal)
	}
}

func TestCreateRequiresImage(t *testing.T) {
	api := &fakeProductAPI{}
	e := NewProductEditor(api, "tok", shopapi.ProductQuery{Page: 1})
	_ = e.OpenCreate()
	e.SetForm(validForm())
	err := e.Submit(context.Background())
	if !IsValidation(err) || !strings.Contains(err.Error(), "at least one image") {
		t.Fatalf("err = %v", err)
	}
}

func TestProductFormMessages(t *testing.T) {
	tests := []struct {
		mutate func(*ProductForm)
		want   string
	}{
		{func(f *ProductForm) { f.Price = "" }, "Price is required"},
		{func(f *ProductForm) { f.Price = "-3" }, "Price must be a valid non-negative number"},
		{func(f *ProductForm) { f.Price = "abc" }, "Price must be a valid non-negative number"},
		{func(f *ProductForm) { f.Price = "Inf" }, "Price must be a valid non-negative number"},
		{func(f *ProductForm) { f.Price = "+Infinity" }, "Price must be a valid non-negative number"},
		{func(f *ProductForm) { f.Price = "NaN" }, "Price must be a valid non-negative number"},
		{func(f *ProductForm) { f.Category = "" }, "Category is required"},
		{func(f *ProductForm) { f.Tag = "knitting" }, "Tag must be crochet or embroidery"},
	}
	for _, tt := range tests {
		f := validForm()
		tt.mutate(&f)
		err := f.Validate(NewImageSet([]string{"https://x/1.jpg"}), false)
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Message != tt.want {
			t.Errorf("got %v, want %q", err, tt.want)
		}
	}
	if err := validForm().Validate(NewImageSet([]string{"https://x/1.jpg"}), false); err != nil {
		t.Fatalf("valid form: %v", err)
	}
}

func TestSubmitSuccessRefetchesAndCloses(t *testing.T) {
	api := &fakeProductAPI{page: shopapi.ProductPage{Products: []shopapi.Product{{ID: "new"}}, TotalPages: 1}}
	e := NewProductEditor(api, "tok", shopapi.ProductQuery{Page: 1})
	_ = e.OpenCreate()
	e.SetForm(validForm())
	e.Images().Add(png("a.png"))

	if err := e.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if api.creates != 1 || api.lists != 1 || api.lastToken != "tok" {
		t.Fatalf("creates=%d lists=%d token=%q", api.creates, api.lists, api.lastToken)
	}
	v := e.View()
	if v.Modal.State != StateIdle || v.Modal.Notice != "Product added successfully!" || len(v.Products) != 1 {
		t.Fatalf("view = %+v", v)
	}
	if len(api.lastForm.Files()) != 1 {
		t.Fatalf("files = %d", len(api.lastForm.Files()))
	}
}

func TestSubmitFailureKeepsModalOpen(t *testing.T) {
	api := &fakeProductAPI{writeErr: &shopapi.APIError{Status: 400, Message: "Duplicate product name"}}
	e := NewProductEditor(api, "tok", shopapi.ProductQuery{Page: 1})
	_ = e.OpenCreate()
	e.SetForm(validForm())
	e.Images().Add(png("a.png"))

	if err := e.Submit(context.Background()); err == nil {
		t.Fatal("Submit succeeded")
	}
	v := e.View()
	if v.Modal.State != StateModal || v.Modal.Error != "Duplicate product name" || v.Form == nil || v.Form.Name != "Tulip" {
		t.Fatalf("view = %+v", v)
	}
	if api.lists != 0 {
		t.Fatal("failed submit refetched")
	}
}

func TestEditSendsExistingImages(t *testing.T) {
	api := &fakeProductAPI{}
	e := NewProductEditor(api, "tok", shopapi.ProductQuery{Page: 1})
	p := shopapi.Product{ID: "p1", Name: "Doll", Price: 39, Category: "Dolls", Tag: shopapi.TagCrochet,
		Images: []string{"https://cdn/1.jpg", "https://cdn/2.jpg"}}
	_ = e.OpenEdit(p)
	e.Images().RemoveExisting("https://cdn/1.jpg")
	e.Images().Add(png("new.png"))

	if err := e.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	raw, ok := api.lastForm.Value("existingImages")
	if !ok {
		t.Fatal("existingImages missing")
	}
	var kept []string
	if err := json.Unmarshal([]byte(raw), &kept); err != nil || len(kept) != 1 || kept[0] != "https://cdn/2.jpg" {
		t.Fatalf("existingImages = %s (%v)", raw, err)
	}
	if api.updates != 1 || len(api.lastForm.Files()) != 1 {
		t.Fatalf("updates=%d files=%d", api.updates, len(api.lastForm.Files()))
	}
}

func TestSubmitWithoutModal(t *testing.T) {
	e := NewProductEditor(&fakeProductAPI{}, "tok", shopapi.ProductQuery{Page: 1})
	if err := e.Submit(context.Background()); !errors.Is(err, ErrNoModal) {
		t.Fatalf("err = %v", err)
	}
}

func TestDelete(t *testing.T) {
	api := &fakeProductAPI{page: shopapi.ProductPage{Products: []shopapi.Product{{ID: "a"}, {ID: "b"}}, TotalPages: 1}}
	e := NewProductEditor(api, "tok", shopapi.ProductQuery{Page: 1})
	_ = e.Load(context.Background())

	if err := e.Delete(context.Background(), "a", false); !errors.Is(err, ErrNotConfirmed) || api.deletes != 0 {
		t.Fatalf("unconfirmed delete: %v, %d calls", err, api.deletes)
	}
	if err := e.Delete(context.Background(), "a", true); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if v := e.View(); len(v.Products) != 1 || v.Products[0].ID != "b" || api.lists != 1 {
		t.Fatalf("after delete: %+v lists=%d", v.Products, api.lists)
	}

	api.deleteErr = shopapi.ErrNetwork
	if err := e.Delete(context.Background(), "b", true); err == nil {
		t.Fatal("failing delete succeeded")
	}
	if v := e.View(); len(v.Products) != 1 || v.Modal.Notice != "Server error" {
		t.Fatalf("after failed delete: %+v", v)
	}
}

func TestPreviewsKeepOrder(t *testing.T) {
	var uploads []Upload
	for i := range 8 {
		u := png(string(rune('a'+i)) + ".png")
		u.ContentType = "image/png"
		u.Data = append(u.Data, bytes.Repeat([]byte{byte(i)}, i*1000)...)
		uploads = append(uploads, u)
	}
	previews, err := Previews(context.Background(), uploads)
	if err != nil {
		t.Fatalf("Previews: %v", err)
	}
	for i, p := range previews {
		if p.Name != uploads[i].Name || !strings.HasPrefix(p.URL, "data:image/png;base64,") {
			t.Fatalf("preview %d = %s", i, p.Name)
		}
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]shopapi.Product{
		{Category: "Dolls", Tag: shopapi.TagCrochet},
		{Category: " Dolls ", Tag: shopapi.TagEmbroidery},
		{Category: "Coasters", Tag: shopapi.TagCrochet},
	})
	if stats != (DashboardStats{TotalProducts: 3, TotalCategories: 2, TotalTags: 2}) {
		t.Fatalf("stats = %+v", stats)
	}
}
