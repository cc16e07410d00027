package catalog

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"storefront/internal/shopapi"
)

type fakeAPI struct {
	mu         sync.Mutex
	calls      int
	pages      map[int]shopapi.ProductPage
	listErr    error
	block      chan struct{}
	product    map[string]shopapi.Product
	byCategory map[string][]shopapi.Product
	categories []shopapi.Category
	catErr     error
	reviews    []shopapi.Review
}

func (f *fakeAPI) ListProducts(ctx context.Context, q shopapi.ProductQuery, _ ...shopapi.CallOption) (shopapi.ProductPage, error) {
	f.mu.Lock()
	f.calls++
	block := f.block
	f.mu.Unlock()
	if block != nil && q.Page == 1 {
		select {
		case <-block:
		case <-ctx.Done():
			return shopapi.ProductPage{}, ctx.Err()
		}
	}
	if f.listErr != nil {
		return shopapi.ProductPage{}, f.listErr
	}
	return f.pages[q.Page], nil
}

func (f *fakeAPI) GetProduct(_ context.Context, id string) (shopapi.Product, error) {
	if p, ok := f.product[id]; ok {
		return p, nil
	}
	return shopapi.Product{}, &shopapi.APIError{Status: 404}
}

func (f *fakeAPI) SearchProducts(_ context.Context, q string) ([]shopapi.ProductRef, error) {
	return []shopapi.ProductRef{{ID: "p1", Name: q}}, nil
}

func (f *fakeAPI) ListCategories(context.Context) ([]shopapi.Category, error) {
	return f.categories, f.catErr
}

func (f *fakeAPI) CategoryProducts(_ context.Context, category string) ([]shopapi.Product, error) {
	return f.byCategory[category], nil
}

func (f *fakeAPI) ListReviews(context.Context, shopapi.ReviewQuery, ...shopapi.CallOption) (shopapi.ReviewPage, error) {
	return shopapi.ReviewPage{Reviews: f.reviews, TotalPages: 1}, nil
}

func (f *fakeAPI) ProductReviews(context.Context, string) ([]shopapi.Review, error) {
	return f.reviews, nil
}

func sample() []shopapi.Product {
	return []shopapi.Product{
		{ID: "1", Name: "Rose Bouquet", Category: "Bouquet", Tag: shopapi.TagCrochet},
		{ID: "2", Name: "Hoop Rose", Category: "Hoop Art", Tag: shopapi.TagEmbroidery},
		{ID: "3", Name: "Daisy Keychain", Category: " keychains ", Tag: "Crochet "},
		{ID: "4", Name: "Name Frame", Category: "Name Frames", Tag: shopapi.TagEmbroidery},
	}
}

func ids(products []shopapi.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterTab(t *testing.T) {
	src := sample()
	got := Filter{Tab: TabCrochet}.Apply(src)
	if want := []string{"1", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("crochet = %v, want %v", ids(got), want)
	}
	if got := (Filter{Tab: TabAll}).Apply(src); len(got) != len(src) {
		t.Fatalf("all tab dropped products: %v", ids(got))
	}
}

func TestFilterSearchIsSubset(t *testing.T) {
	src := sample()
	got := Filter{Query: "ROSE"}.Apply(src)
	if want := []string{"1", "2"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("search = %v, want %v", ids(got), want)
	}
	narrower := Filter{Query: "ROSE", Tab: TabEmbroidery}.Apply(src)
	if want := []string{"2"}; !reflect.DeepEqual(ids(narrower), want) {
		t.Fatalf("search+tab = %v, want %v", ids(narrower), want)
	}
}

func TestFilterCategoryTrimmedCaseInsensitive(t *testing.T) {
	got := Filter{Category: "KEYCHAINS"}.Apply(sample())
	if want := []string{"3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("category = %v, want %v", ids(got), want)
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	src := sample()
	before := ids(src)
	Filter{Tab: TabEmbroidery, Query: "o"}.Apply(src)
	if !reflect.DeepEqual(ids(src), before) {
		t.Fatal("source reordered")
	}
}

func TestResolveFallbackOnError(t *testing.T) {
	res := Resolve(shopapi.ProductQuery{Page: 1, Tag: "crochet"}, shopapi.ProductPage{}, shopapi.ErrNetwork)
	if !res.Fallback || res.Err == nil || len(res.Products) == 0 {
		t.Fatalf("got %+v", res)
	}
	for _, p := range res.Products {
		if p.Tag != shopapi.TagCrochet {
			t.Fatalf("fallback for crochet tab contains %s", p.Tag)
		}
	}
}

func TestResolveEmptyStates(t *testing.T) {
	res := Resolve(shopapi.ProductQuery{Page: 1}, shopapi.ProductPage{}, nil)
	if !res.Fallback || len(res.Products) != len(StaticProducts()) {
		t.Fatalf("empty unfiltered catalog should fall back: %+v", res)
	}
	res = Resolve(shopapi.ProductQuery{Page: 1, Search: "zebra"}, shopapi.ProductPage{}, nil)
	if res.Empty != EmptySearch || res.Fallback {
		t.Fatalf("search: %+v", res)
	}
	res = Resolve(shopapi.ProductQuery{Page: 1, Category: "Dolls"}, shopapi.ProductPage{}, nil)
	if res.Empty != EmptyCategory {
		t.Fatalf("category: %+v", res)
	}
}

func TestResolvePagePastTheEnd(t *testing.T) {
	res := Resolve(shopapi.ProductQuery{Page: 9}, shopapi.ProductPage{Products: []shopapi.Product{}, TotalPages: 5}, nil)
	if res.Fallback || res.Empty != EmptyNone || res.TotalPages != 5 {
		t.Fatalf("got %+v", res)
	}
}

func TestLoaderRefetchIsIdempotent(t *testing.T) {
	api := &fakeAPI{pages: map[int]shopapi.ProductPage{1: {Products: sample(), TotalPages: 2}}}
	l := NewLoader(api)
	first, err := l.Load(context.Background(), shopapi.ProductQuery{Page: 1, Limit: 6})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := l.Load(context.Background(), shopapi.ProductQuery{Page: 1, Limit: 6})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("refetch differs:\n%+v\n%+v", first, second)
	}
}

func TestLoaderLatestRequestWins(t *testing.T) {
	api := &fakeAPI{
		block: make(chan struct{}),
		pages: map[int]shopapi.ProductPage{
			1: {Products: sample()[:1], TotalPages: 2},
			2: {Products: sample()[1:], TotalPages: 2},
		},
	}
	l := NewLoader(api)

	slow := make(chan error, 1)
	go func() {
		_, err := l.Load(context.Background(), shopapi.ProductQuery{Page: 1})
		slow <- err
	}()
	// Wait for the slow load to be in flight.
	deadline := time.Now().Add(time.Second)
	for {
		if _, loading := l.Current(); loading {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("first load never started")
		}
		time.Sleep(time.Millisecond)
	}

	res, err := l.Load(context.Background(), shopapi.ProductQuery{Page: 2})
	if err != nil {
		t.Fatalf("Load page 2: %v", err)
	}
	if err := <-slow; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("stale load err = %v, want ErrSuperseded", err)
	}
	current, loading := l.Current()
	if loading || !reflect.DeepEqual(ids(current.Products), ids(res.Products)) || res.Query.Page != 2 {
		t.Fatalf("committed %v, want page 2 %v", ids(current.Products), ids(res.Products))
	}
}

func TestRelatedExcludesSelfAndCaps(t *testing.T) {
	var same []shopapi.Product
	for i := range 9 {
		same = append(same, shopapi.Product{ID: string(rune('a' + i))})
	}
	got := Related(same, "b")
	if len(got) != MaxRelated {
		t.Fatalf("len = %d, want %d", len(got), MaxRelated)
	}
	for _, p := range got {
		if p.ID == "b" {
			t.Fatal("related contains self")
		}
	}
}

func TestDeriveCategories(t *testing.T) {
	cats := DeriveCategories(append(sample(), shopapi.Product{ID: "5", Category: "bouquet"}))
	got, ok := FindCategory(cats, "Bouquet")
	if !ok || got.Count != 2 {
		t.Fatalf("bouquet = %+v, %v", got, ok)
	}
	if cats[0].Name != "Bouquet" {
		t.Fatalf("not sorted: %+v", cats)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hoop Art – Initial":  "hoop-art-initial",
		"Item 1":              "item-1",
		"  Crème Brûlée Bag ": "creme-brulee-bag",
		"":                    "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDetailFallsBackToBundledProduct(t *testing.T) {
	api := &fakeAPI{}
	d, err := NewService(api, nil).Detail(context.Background(), "p3")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if !d.Fallback || d.Product.Name != "Keychain – Daisy" {
		t.Fatalf("got %+v", d)
	}

	_, err = NewService(api, nil).Detail(context.Background(), "nope")
	if !errors.Is(err, shopapi.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDetailRelatedAndRating(t *testing.T) {
	self := shopapi.Product{ID: "1", Name: "Rose Bouquet", Category: "Bouquet"}
	api := &fakeAPI{
		product:    map[string]shopapi.Product{"1": self},
		byCategory: map[string][]shopapi.Product{"Bouquet": {self, {ID: "9", Category: "Bouquet"}}},
		reviews:    []shopapi.Review{{Rating: 5}, {Rating: 4}, {Type: shopapi.ReviewChat}},
	}
	d, err := NewService(api, nil).Detail(context.Background(), "1")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if !reflect.DeepEqual(ids(d.Related), []string{"9"}) || d.AverageRating != 4.5 {
		t.Fatalf("related %v rating %v", ids(d.Related), d.AverageRating)
	}
}

func TestCategoriesFallback(t *testing.T) {
	cats, fb := NewService(&fakeAPI{catErr: shopapi.ErrNetwork}, nil).Categories(context.Background())
	if !fb || len(cats) != len(StaticCategories()) {
		t.Fatalf("got %d categories, fallback=%v", len(cats), fb)
	}
}

func TestCategoryPageMatchesInfo(t *testing.T) {
	api := &fakeAPI{
		byCategory: map[string][]shopapi.Product{"dolls": {{ID: "d1"}}},
		categories: []shopapi.Category{{Name: "Dolls", Image: "/doll.jpg", Count: 1}},
	}
	page, err := NewService(api, nil).CategoryPage(context.Background(), "dolls")
	if err != nil {
		t.Fatalf("CategoryPage: %v", err)
	}
	if !page.Known || page.Category.Image != "/doll.jpg" || len(page.Products) != 1 {
		t.Fatalf("got %+v", page)
	}
}

func TestHomeDegradesOnFailure(t *testing.T) {
	api := &fakeAPI{listErr: shopapi.ErrNetwork, catErr: shopapi.ErrNetwork}
	home, err := NewService(api, nil).Home(context.Background())
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if !home.Fallback || len(home.Featured) == 0 || len(home.Categories) == 0 {
		t.Fatalf("got %+v", home)
	}
}
