package admin

import (
	"context"
	"errors"
	"sync"

	"storefront/internal/catalog"
	"storefront/internal/shopapi"
)

// ProductAPI is the part of the shop API the product editor calls.
type ProductAPI interface {
	ListProducts(ctx context.Context, q shopapi.ProductQuery, opts ...shopapi.CallOption) (shopapi.ProductPage, error)
	CreateProduct(ctx context.Context, token string, form *shopapi.Form) (shopapi.Product, error)
	UpdateProduct(ctx context.Context, token, id string, form *shopapi.Form) (shopapi.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
}

// ProductEditor drives the product table: the current page, the create and
// edit modal, and deletes.
type ProductEditor struct {
	api   ProductAPI
	token string

	mu         sync.Mutex
	modal      modal
	query      shopapi.ProductQuery
	products   []shopapi.Product
	totalPages int
	loadErr    string
	form       ProductForm
	images     *ImageSet
}

func NewProductEditor(api ProductAPI, token string, q shopapi.ProductQuery) *ProductEditor {
	return &ProductEditor{api: api, token: token, query: q, modal: modal{state: StateIdle}, images: NewImageSet(nil)}
}

// Load fetches the current page. A 401 is returned as is so the caller can
// end the session.
func (e *ProductEditor) Load(ctx context.Context) error {
	e.mu.Lock()
	q := e.query
	e.mu.Unlock()

	page, err := e.api.ListProducts(ctx, q, shopapi.WithToken(e.token))

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.loadErr = "Failed to fetch products"
		if errors.Is(err, shopapi.ErrUnauthorized) {
			e.loadErr = "Unauthorized – please log in again"
		}
		return err
	}
	e.loadErr = ""
	e.products = page.Products
	e.totalPages = page.TotalPages
	return nil
}

func (e *ProductEditor) OpenCreate() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.modal.open(ModeCreate, ""); err != nil {
		return err
	}
	e.form = ProductForm{}
	e.images = NewImageSet(nil)
	return nil
}

// OpenEdit prefills the modal from a product. The product does not need to
// be on the current page.
func (e *ProductEditor) OpenEdit(p shopapi.Product) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.modal.open(ModeEdit, p.ID); err != nil {
		return err
	}
	e.form = FormFromProduct(p)
	e.images = NewImageSet(p.Gallery())
	return nil
}

// SetForm replaces the modal's field values.
func (e *ProductEditor) SetForm(f ProductForm) {
	e.mu.Lock()
	e.form = f
	e.mu.Unlock()
}

// Images is the gallery being edited in the open modal.
func (e *ProductEditor) Images() *ImageSet {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.images
}

func (e *ProductEditor) Close() {
	e.mu.Lock()
	e.modal.close()
	e.mu.Unlock()
}

// Submit validates and sends the open modal. Validation failures never
// reach the network. On success the current page is fetched again and the
// modal closes; on failure it stays open with the error.
func (e *ProductEditor) Submit(ctx context.Context) error {
	e.mu.Lock()
	creating := e.modal.mode == ModeCreate
	if err := e.modal.beginSubmit(); err != nil {
		e.mu.Unlock()
		return err
	}
	form, images, id := e.form, e.images, e.modal.targetID
	if err := form.Validate(images, creating); err != nil {
		e.modal.fail(err, "")
		e.mu.Unlock()
		return err
	}
	e.mu.Unlock()

	body, err := form.Multipart(images, !creating)
	if err == nil {
		if creating {
			_, err = e.api.CreateProduct(ctx, e.token, body)
		} else {
			_, err = e.api.UpdateProduct(ctx, e.token, id, body)
		}
	}
	if err != nil {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.modal.fail(err, "Failed to save product")
	}

	if err := e.Load(ctx); err != nil && errors.Is(err, shopapi.ErrUnauthorized) {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.modal.close()
	if creating {
		e.modal.notice = "Product added successfully!"
	} else {
		e.modal.notice = "Product updated successfully!"
	}
	return nil
}

// Delete removes a product after confirmation. The local list drops the
// product without a refetch; a failure leaves it untouched.
func (e *ProductEditor) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	err := e.api.DeleteProduct(ctx, e.token, id)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.modal.notice = deleteNotice(err, "product")
		return err
	}
	kept := e.products[:0:0]
	for _, p := range e.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	e.products = kept
	e.modal.notice = ""
	return nil
}

type ProductTableView struct {
	Modal      ModalView         `json:"modal"`
	Products   []shopapi.Product `json:"products"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	Categories []string          `json:"categories"`
	Error      string            `json:"error,omitempty"`
	Form       *ProductForm      `json:"form,omitempty"`
	Existing   []string          `json:"existingImages,omitempty"`
}

// View snapshots the table. The form is included while a modal is open so a
// failed submit can be shown again.
func (e *ProductEditor) View() ProductTableView {
	e.mu.Lock()
	defer e.mu.Unlock()
	v := ProductTableView{
		Modal:      e.modal.view(),
		Products:   append([]shopapi.Product{}, e.products...),
		Page:       max(e.query.Page, 1),
		TotalPages: e.totalPages,
		Categories: catalog.DistinctCategories(e.products),
		Error:      e.loadErr,
	}
	if e.modal.state != StateIdle {
		f := e.form
		v.Form = &f
		v.Existing = e.images.Existing()
	}
	return v
}
