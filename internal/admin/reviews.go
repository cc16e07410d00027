package admin

import (
	"context"
	"errors"
	"sync"

	"storefront/internal/shopapi"
)

type ReviewAPI interface {
	ListReviews(ctx context.Context, q shopapi.ReviewQuery, opts ...shopapi.CallOption) (shopapi.ReviewPage, error)
	CreateReview(ctx context.Context, token string, r shopapi.NewReview) (shopapi.Review, error)
	UpdateReview(ctx context.Context, token, id string, u shopapi.ReviewUpdate) (shopapi.Review, error)
	DeleteReview(ctx context.Context, token, id string) error
}

// ReviewEditor drives the review table. Creates may carry a chat
// screenshot; updates are JSON only.
type ReviewEditor struct {
	api   ReviewAPI
	token string

	mu         sync.Mutex
	modal      modal
	query      shopapi.ReviewQuery
	reviews    []shopapi.Review
	totalPages int
	loadErr    string
	form       ReviewForm
	screenshot *Upload
}

func NewReviewEditor(api ReviewAPI, token string, q shopapi.ReviewQuery) *ReviewEditor {
	return &ReviewEditor{api: api, token: token, query: q, modal: modal{state: StateIdle}}
}

func (e *ReviewEditor) Load(ctx context.Context) error {
	e.mu.Lock()
	q := e.query
	e.mu.Unlock()

	page, err := e.api.ListReviews(ctx, q, shopapi.WithToken(e.token))

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.loadErr = "Failed to fetch reviews"
		if errors.Is(err, shopapi.ErrUnauthorized) {
			e.loadErr = "Unauthorized – please log in again"
		}
		return err
	}
	e.loadErr = ""
	e.reviews = page.Reviews
	e.totalPages = page.TotalPages
	return nil
}

func (e *ReviewEditor) OpenCreate() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.modal.open(ModeCreate, ""); err != nil {
		return err
	}
	e.form = ReviewForm{Type: string(shopapi.ReviewText)}
	e.screenshot = nil
	return nil
}

func (e *ReviewEditor) OpenEdit(r shopapi.Review) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.modal.open(ModeEdit, r.ID); err != nil {
		return err
	}
	e.form = FormFromReview(r)
	e.screenshot = nil
	return nil
}

func (e *ReviewEditor) SetForm(f ReviewForm) {
	e.mu.Lock()
	e.form = f
	e.mu.Unlock()
}

// SetScreenshot attaches a chat screenshot to a create.
func (e *ReviewEditor) SetScreenshot(u *Upload) {
	e.mu.Lock()
	e.screenshot = u
	e.mu.Unlock()
}

func (e *ReviewEditor) Close() {
	e.mu.Lock()
	e.modal.close()
	e.mu.Unlock()
}

func (e *ReviewEditor) Submit(ctx context.Context) error {
	e.mu.Lock()
	creating := e.modal.mode == ModeCreate
	if err := e.modal.beginSubmit(); err != nil {
		e.mu.Unlock()
		return err
	}
	form, upload, id := e.form, e.screenshot, e.modal.targetID
	err := form.Validate()
	var shot *shopapi.File
	if err == nil && creating {
		shot, err = form.Screenshot(upload)
	}
	if err != nil {
		e.modal.fail(err, "")
		e.mu.Unlock()
		return err
	}
	e.mu.Unlock()

	if creating {
		_, err = e.api.CreateReview(ctx, e.token, form.NewReview(shot))
	} else {
		_, err = e.api.UpdateReview(ctx, e.token, id, form.Update())
	}
	if err != nil {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.modal.fail(err, "Failed to save review")
	}

	if err := e.Load(ctx); err != nil && errors.Is(err, shopapi.ErrUnauthorized) {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.modal.close()
	if creating {
		e.modal.notice = "Review added successfully!"
	} else {
		e.modal.notice = "Review updated successfully!"
	}
	return nil
}

func (e *ReviewEditor) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	err := e.api.DeleteReview(ctx, e.token, id)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.modal.notice = deleteNotice(err, "review")
		return err
	}
	kept := e.reviews[:0:0]
	for _, r := range e.reviews {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	e.reviews = kept
	e.modal.notice = ""
	return nil
}

type ReviewTableView struct {
	Modal      ModalView        `json:"modal"`
	Reviews    []shopapi.Review `json:"reviews"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Error      string           `json:"error,omitempty"`
	Form       *ReviewForm      `json:"form,omitempty"`
}

func (e *ReviewEditor) View() ReviewTableView {
	e.mu.Lock()
	defer e.mu.Unlock()
	v := ReviewTableView{
		Modal:      e.modal.view(),
		Reviews:    append([]shopapi.Review{}, e.reviews...),
		Page:       max(e.query.Page, 1),
		TotalPages: e.totalPages,
		Error:      e.loadErr,
	}
	if e.modal.state != StateIdle {
		f := e.form
		v.Form = &f
	}
	return v
}
