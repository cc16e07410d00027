package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"storefront/internal/admin"
	"storefront/internal/pagination"
	"storefront/internal/params"
	"storefront/internal/shopapi"
)

type productTableResponse struct {
	admin.ProductTableView
	Pagination pagination.View `json:"pagination"`
}

// productSubmitResponse echoes the editor after a create or update. On
// failure it carries previews of the files that were accepted so the form
// can be shown again as submitted.
type productSubmitResponse struct {
	admin.ProductTableView
	Rejected []admin.FileError `json:"rejected,omitempty"`
	Previews []admin.Preview   `json:"previews,omitempty"`
}

func (app *application) adminProductQuery(r *http.Request) shopapi.ProductQuery {
	q := r.URL.Query()
	return params.ParseProductQuery(q, params.ParsePagination(q, app.config.PageLimit))
}

// AdminListProducts godoc
//
//	@Summary		Product table
//	@Tags			admin-products
//	@Produce		json
//	@Param			page	query	int	false	"Page number"
//	@Success		200	{object}	productTableResponse
//	@Failure		303	{string}	string	"redirect to /admin/login"
//	@Security		SessionCookie
//	@Router			/admin/products [get]
func (app *application) adminListProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := getSessionFromContext(r).Token
	pq := app.adminProductQuery(r)

	editor := admin.NewProductEditor(app.api, token, pq)
	err := editor.Load(ctx)
	if err == nil {
		pager := pagination.Resume(pq.Page, func(page int) {
			pq.Page = page
			editor = admin.NewProductEditor(app.api, token, pq)
			err = editor.Load(ctx)
		})
		pager.SetTotalPages(editor.View().TotalPages)
		if err == nil {
			app.jsonResponse(w, http.StatusOK, productTableResponse{
				ProductTableView: editor.View(),
				Pagination:       pager.View(),
			})
			return
		}
	}
	app.adminAPIError(w, r, err, editor.View().Error, nil)
}

func productFormFromRequest(r *http.Request) admin.ProductForm {
	return admin.ProductForm{
		Name:        r.FormValue("name"),
		Price:       r.FormValue("price"),
		Category:    r.FormValue("category"),
		Tag:         r.FormValue("tag"),
		Description: r.FormValue("description"),
	}
}

// AdminCreateProduct godoc
//
//	@Summary		Create product
//	@Description	Multipart form. Up to five images under "images", 10MB each.
//	@Tags			admin-products
//	@Accept			mpfd
//	@Produce		json
//	@Param			name		formData	string	true	"Product name"
//	@Param			price		formData	string	true	"Price"
//	@Param			category	formData	string	true	"Category"
//	@Param			tag		formData	string	true	"crochet or embroidery"
//	@Param			images		formData	file	true	"Product images"
//	@Success		201	{object}	productSubmitResponse
//	@Failure		400	{object}	error
//	@Security		SessionCookie
//	@Router			/admin/products [post]
func (app *application) adminCreateProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	uploads, err := readUploads(r, "images")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	editor := admin.NewProductEditor(app.api, getSessionFromContext(r).Token, app.adminProductQuery(r))
	if err := editor.OpenCreate(); err != nil {
		app.internalServerError(w, r, err)
		return
	}
	editor.SetForm(productFormFromRequest(r))
	rejected := editor.Images().Add(uploads...)

	app.submitProduct(w, r, editor, rejected, http.StatusCreated)
}

// AdminUpdateProduct godoc
//
//	@Summary		Update product
//	@Tags			admin-products
//	@Accept			mpfd
//	@Produce		json
//	@Param			productID	path	string	true	"Product ID"
//	@Param			existingImages	formData	string	false	"JSON array of image URLs to keep"
//	@Success		200	{object}	productSubmitResponse
//	@Failure		400	{object}	error
//	@Security		SessionCookie
//	@Router			/admin/products/{productID} [put]
func (app *application) adminUpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "productID"))
	if err := parseMultipart(w, r); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	uploads, err := readUploads(r, "images")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var keep []string
	_, keepGiven := r.MultipartForm.Value["existingImages"]
	if keepGiven {
		if err := json.Unmarshal([]byte(r.FormValue("existingImages")), &keep); err != nil {
			app.badRequestResponse(w, r, errors.New("existingImages must be a JSON array of image URLs"))
			return
		}
	}

	product, err := app.api.GetProduct(r.Context(), id)
	if err != nil {
		app.adminAPIError(w, r, err, "Failed to load product", nil)
		return
	}

	editor := admin.NewProductEditor(app.api, getSessionFromContext(r).Token, app.adminProductQuery(r))
	if err := editor.OpenEdit(product); err != nil {
		app.internalServerError(w, r, err)
		return
	}
	editor.SetForm(productFormFromRequest(r))

	images := editor.Images()
	if keepGiven {
		for _, u := range images.Existing() {
			if !slices.Contains(keep, u) {
				images.RemoveExisting(u)
			}
		}
	}
	rejected := images.Add(uploads...)

	app.submitProduct(w, r, editor, rejected, http.StatusOK)
}

func (app *application) submitProduct(w http.ResponseWriter, r *http.Request, editor *admin.ProductEditor, rejected []admin.FileError, status int) {
	err := editor.Submit(r.Context())
	resp := productSubmitResponse{ProductTableView: editor.View(), Rejected: rejected}
	if err == nil {
		app.jsonResponse(w, status, resp)
		return
	}

	if previews, perr := admin.Previews(r.Context(), editor.Images().Added()); perr == nil {
		resp.Previews = previews
	}
	switch {
	case admin.IsValidation(err):
		writeJSONErrorWith(w, http.StatusBadRequest, resp.Modal.Error, resp)
	case errors.Is(err, admin.ErrBusy), errors.Is(err, admin.ErrNoModal):
		app.internalServerError(w, r, err)
	default:
		app.adminAPIError(w, r, err, resp.Modal.Error, resp)
	}
}

// AdminDeleteProduct godoc
//
//	@Summary		Delete product
//	@Tags			admin-products
//	@Produce		json
//	@Param			productID	path	string	true	"Product ID"
//	@Param			confirm		query	bool	true	"Must be true"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	error
//	@Security		SessionCookie
//	@Router			/admin/products/{productID} [delete]
func (app *application) adminDeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "productID"))
	confirmed := r.URL.Query().Get("confirm") == "true"

	editor := admin.NewProductEditor(app.api, getSessionFromContext(r).Token, shopapi.ProductQuery{})
	err := editor.Delete(r.Context(), id, confirmed)
	switch {
	case err == nil:
		app.jsonResponse(w, http.StatusOK, map[string]string{"deleted": id})
	case errors.Is(err, admin.ErrNotConfirmed):
		writeJSONError(w, http.StatusBadRequest, "Are you sure you want to delete this product? Repeat with confirm=true")
	default:
		app.adminAPIError(w, r, err, editor.View().Modal.Notice, nil)
	}
}
