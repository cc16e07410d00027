package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storefront/internal/shopapi"
)

// API is the read side of the shop API used by the storefront pages.
type API interface {
	ProductLister
	GetProduct(ctx context.Context, id string) (shopapi.Product, error)
	SearchProducts(ctx context.Context, q string) ([]shopapi.ProductRef, error)
	ListCategories(ctx context.Context) ([]shopapi.Category, error)
	CategoryProducts(ctx context.Context, category string) ([]shopapi.Product, error)
	ListReviews(ctx context.Context, q shopapi.ReviewQuery, opts ...shopapi.CallOption) (shopapi.ReviewPage, error)
	ProductReviews(ctx context.Context, productID string) ([]shopapi.Review, error)
}

const (
	homeProducts = 8
	homeReviews  = 10
)

type Service struct {
	api    API
	logger *zap.SugaredLogger
}

func NewService(api API, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{api: api, logger: logger}
}

// Products loads one listing page with fallback and empty-state rules
// applied, then narrows it by the in-memory filter.
func (s *Service) Products(ctx context.Context, q shopapi.ProductQuery, f Filter) (Result, error) {
	res, err := NewLoader(s.api).Load(ctx, q)
	if err != nil {
		return Result{}, err
	}
	if res.Err != nil {
		s.logger.Warnw("product listing failed, using bundled catalog", "error", res.Err)
	}
	if f.Active() {
		res.Products = f.Apply(res.Products)
		if len(res.Products) == 0 && res.Empty == EmptyNone {
			if normalize(f.Query) != "" {
				res.Empty = EmptySearch
			} else {
				res.Empty = EmptyCategory
			}
		}
	}
	return res, nil
}

// Categories returns the API category list, or the bundled list when the
// API fails or has none.
func (s *Service) Categories(ctx context.Context) ([]shopapi.Category, bool) {
	cats, err := s.api.ListCategories(ctx)
	if err != nil {
		s.logger.Warnw("category listing failed, using bundled categories", "error", err)
		return StaticCategories(), true
	}
	if len(cats) == 0 {
		return StaticCategories(), true
	}
	return cats, false
}

type Home struct {
	Featured   []shopapi.Product  `json:"featured"`
	Categories []shopapi.Category `json:"categories"`
	Reviews    []shopapi.Review   `json:"reviews"`
	Fallback   bool               `json:"fallback"`
}

// Home fetches the three home sections concurrently. A failing section
// degrades to fallback data and never fails the page.
func (s *Service) Home(ctx context.Context) (Home, error) {
	var (
		home     Home
		products Result
		catsFB   bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := NewLoader(s.api).Load(gctx, shopapi.ProductQuery{Page: 1, Limit: homeProducts})
		products = res
		return err
	})
	g.Go(func() error {
		home.Categories, catsFB = s.Categories(gctx)
		return nil
	})
	g.Go(func() error {
		page, err := s.api.ListReviews(gctx, shopapi.ReviewQuery{Page: 1, Limit: homeReviews})
		if err != nil {
			s.logger.Warnw("home reviews failed", "error", err)
			home.Reviews = []shopapi.Review{}
			return nil
		}
		home.Reviews = page.Reviews
		return nil
	})
	if err := g.Wait(); err != nil {
		return Home{}, err
	}
	home.Featured = products.Products
	home.Fallback = products.Fallback || catsFB
	return home, nil
}

type Detail struct {
	Product       shopapi.Product   `json:"product"`
	Related       []shopapi.Product `json:"related"`
	Reviews       []shopapi.Review  `json:"reviews"`
	AverageRating float64           `json:"averageRating"`
	Fallback      bool              `json:"fallback"`
}

// Detail loads a product with its related products and reviews. A product
// the API cannot serve is looked up in the bundled catalog; ErrNotFound is
// returned when neither knows it.
func (s *Service) Detail(ctx context.Context, id string) (Detail, error) {
	p, err := s.api.GetProduct(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return Detail{}, ctx.Err()
		}
		static, ok := StaticProduct(id)
		if !ok {
			if errors.Is(err, shopapi.ErrNotFound) {
				return Detail{}, shopapi.ErrNotFound
			}
			return Detail{}, err
		}
		s.logger.Warnw("product lookup failed, using bundled product", "id", id, "error", err)
		related := (Filter{Category: static.Category}).Apply(StaticProducts())
		return Detail{Product: static, Related: Related(related, id), Reviews: []shopapi.Review{}, Fallback: true}, nil
	}

	d := Detail{Product: p, Related: []shopapi.Product{}, Reviews: []shopapi.Review{}}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if p.Category == "" {
			return nil
		}
		same, err := s.api.CategoryProducts(gctx, p.Category)
		if err != nil {
			s.logger.Warnw("related products failed", "id", id, "error", err)
			return nil
		}
		d.Related = Related(same, p.ID)
		return nil
	})
	g.Go(func() error {
		reviews, err := s.api.ProductReviews(gctx, p.ID)
		if err != nil {
			s.logger.Warnw("product reviews failed", "id", id, "error", err)
			return nil
		}
		d.Reviews = reviews
		d.AverageRating = shopapi.AverageRating(reviews)
		return nil
	})
	_ = g.Wait()
	return d, ctx.Err()
}

type CategoryPage struct {
	Category shopapi.Category  `json:"category"`
	Known    bool              `json:"known"`
	Products []shopapi.Product `json:"products"`
	Empty    EmptyKind         `json:"empty,omitempty"`
	Fallback bool              `json:"fallback"`
}

// CategoryPage lists a category's products together with its header info.
func (s *Service) CategoryPage(ctx context.Context, name string) (CategoryPage, error) {
	page := CategoryPage{Category: shopapi.Category{Name: name}, Products: []shopapi.Product{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := s.api.CategoryProducts(gctx, name)
		if err != nil {
			s.logger.Warnw("category products failed, using bundled catalog", "category", name, "error", err)
			page.Products = (Filter{Category: name}).Apply(StaticProducts())
			page.Fallback = true
			return nil
		}
		page.Products = products
		return nil
	})
	var cats []shopapi.Category
	g.Go(func() error {
		cats, _ = s.Categories(gctx)
		return nil
	})
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return CategoryPage{}, err
	}

	if c, ok := FindCategory(cats, name); ok {
		page.Category = c
		page.Known = true
	}
	if len(page.Products) == 0 {
		page.Empty = EmptyCategory
	}
	return page, nil
}

// Search backs the typeahead. Failures yield an empty list.
func (s *Service) Search(ctx context.Context, q string) []shopapi.ProductRef {
	refs, err := s.api.SearchProducts(ctx, q)
	if err != nil {
		s.logger.Warnw("product search failed", "q", q, "error", err)
		return []shopapi.ProductRef{}
	}
	return refs
}

// Reviews loads one page of reviews. Failures surface to the caller, the
// reviews page has no bundled fallback.
func (s *Service) Reviews(ctx context.Context, q shopapi.ReviewQuery) (shopapi.ReviewPage, error) {
	return s.api.ListReviews(ctx, q)
}
