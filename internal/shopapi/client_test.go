package shopapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Retries: 2, RetryWait: time.Millisecond}), srv
}

func writeBody(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestListProductsSendsQuery(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		products := make([]map[string]any, 6)
		for i := range products {
			products[i] = map[string]any{"_id": string(rune('a' + i)), "name": "Item", "price": 10, "category": " Dolls ", "tag": "Crochet"}
		}
		writeBody(w, http.StatusOK, map[string]any{"products": products, "totalPages": 5})
	})

	minPrice := 100.0
	page, err := c.ListProducts(context.Background(), ProductQuery{Page: 1, Limit: 6, Tag: "crochet", MinPrice: &minPrice})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(page.Products) != 6 || page.TotalPages != 5 {
		t.Fatalf("got %d products / %d pages, want 6 / 5", len(page.Products), page.TotalPages)
	}
	if page.Products[0].Tag != TagCrochet || page.Products[0].Category != "Dolls" {
		t.Fatalf("product not normalised: %+v", page.Products[0])
	}
	for _, want := range []string{"page=1", "limit=6", "tag=crochet", "minPrice=100"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
	if strings.Contains(gotQuery, "search=") || strings.Contains(gotQuery, "maxPrice") {
		t.Errorf("query %q carries unset params", gotQuery)
	}
}

func TestListProductsMissingKeyIsDecodeError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, map[string]any{"items": []any{}})
	})
	_, err := c.ListProducts(context.Background(), ProductQuery{Page: 1})
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("err = %v, want DecodeError", err)
	}
	if errors.Is(err, ErrNetwork) {
		t.Fatal("decode failure reported as network failure")
	}
}

func TestGetRetriesGatewayErrors(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeBody(w, http.StatusOK, []Category{{Name: "Dolls", Count: 5}})
	})
	cats, err := c.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 1 || calls.Load() != 3 {
		t.Fatalf("got %d categories after %d calls", len(cats), calls.Load())
	}
}

func TestWritesAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeBody(w, http.StatusServiceUnavailable, map[string]string{"message": "busy"})
	})
	err := c.DeleteProduct(context.Background(), "tok", "p1")
	if calls.Load() != 1 {
		t.Fatalf("delete attempted %d times, want 1", calls.Load())
	}
	if got := Message(err, "fallback"); got != "busy" {
		t.Fatalf("Message = %q, want server message", got)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		writeBody(w, http.StatusUnauthorized, map[string]string{"error": "expired"})
	})
	_, err := c.ListReviews(context.Background(), ReviewQuery{Page: 1}, WithToken("tok"))
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestFallbackURLOnNetworkFailure(t *testing.T) {
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, map[string]any{"_id": "p2", "name": "Bouquet", "price": 1200})
	}))
	defer fallback.Close()

	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	c := NewClient(Config{BaseURL: deadURL, FallbackURL: fallback.URL})
	p, err := c.GetProduct(context.Background(), "p2")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if p.Name != "Bouquet" {
		t.Fatalf("got %+v", p)
	}
}

func TestNetworkFailureWithoutFallback(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	c := NewClient(Config{BaseURL: deadURL})
	_, err := c.GetProduct(context.Background(), "p2")
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
}

func TestSearchBlankQuerySkipsRequest(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeBody(w, http.StatusOK, []ProductRef{{ID: "p1", Name: "Doll"}})
	})
	refs, err := c.SearchProducts(context.Background(), "   ")
	if err != nil || len(refs) != 0 {
		t.Fatalf("blank search = %v, %v", refs, err)
	}
	refs, err = c.SearchProducts(context.Background(), "doll")
	if err != nil || len(refs) != 1 {
		t.Fatalf("search = %v, %v", refs, err)
	}
	if calls.Load() != 1 {
		t.Fatalf("server called %d times, want 1", calls.Load())
	}
}

func TestCreateProductMultipart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/addProduct" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			t.Fatalf("content type %q: %v", r.Header.Get("Content-Type"), err)
		}
		mr := multipart.NewReader(r.Body, params["boundary"])
		fields := map[string]string{}
		var files int
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("next part: %v", err)
			}
			if part.FileName() != "" {
				files++
				if part.Header.Get("Content-Type") != "image/png" {
					t.Errorf("file content type = %q", part.Header.Get("Content-Type"))
				}
				continue
			}
			b, _ := io.ReadAll(part)
			fields[part.FormName()] = string(b)
		}
		if fields["name"] != "Tulip" || fields["tag"] != "crochet" || files != 1 {
			t.Errorf("fields %v files %d", fields, files)
		}
		writeBody(w, http.StatusCreated, map[string]any{"product": map[string]any{"_id": "new1", "name": "Tulip"}})
	})

	form := &Form{}
	form.Set("name", "Tulip")
	form.Set("tag", "crochet")
	form.SetIf("description", " ")
	form.AddFile(File{Field: "images", Name: "a.png", ContentType: "image/png", Data: []byte("png")})
	p, err := c.CreateProduct(context.Background(), "tok", form)
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if p.ID != "new1" {
		t.Fatalf("created = %+v", p)
	}
	if _, ok := form.Value("description"); ok {
		t.Fatal("blank description should not be set")
	}
}

func TestCreateReviewEncoding(t *testing.T) {
	var contentTypes, authors []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentTypes = append(contentTypes, r.Header.Get("Content-Type"))
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Errorf("parse form: %v", err)
			}
			authors = append(authors, r.FormValue("authorName"))
		}
		writeBody(w, http.StatusCreated, map[string]any{"_id": "r1", "type": "text", "message": "lovely"})
	})

	if _, err := c.CreateReview(context.Background(), "tok", NewReview{Type: ReviewText, Rating: 5, AuthorName: "Asha", Message: "lovely"}); err != nil {
		t.Fatalf("text review: %v", err)
	}
	shot := &File{Name: "chat.jpg", ContentType: "image/jpeg", Data: []byte("jpg")}
	if _, err := c.CreateReview(context.Background(), "tok", NewReview{Type: ReviewChat, Platform: PlatformWhatsApp, AuthorName: "Mina", Message: "hi", Screenshot: shot}); err != nil {
		t.Fatalf("chat review: %v", err)
	}
	if contentTypes[0] != "application/json" || !strings.HasPrefix(contentTypes[1], "multipart/form-data") {
		t.Fatalf("content types = %v", contentTypes)
	}
	if len(authors) != 1 || authors[0] != "Mina" {
		t.Fatalf("multipart authorName = %v, want [Mina]", authors)
	}
}

func TestLoginWithoutToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, map[string]string{})
	})
	if _, err := c.Login(context.Background(), Credentials{Username: "a", Password: "b"}); !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
}

func TestCanceledContextIsNotNetworkError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ListCategories(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestOriginalPrice(t *testing.T) {
	d := 20.0
	p := Product{Price: 800, Discount: &d}
	if got := p.OriginalPrice(); got != 1000 {
		t.Fatalf("OriginalPrice = %v, want 1000", got)
	}
	if got := (Product{Price: 800}).OriginalPrice(); got != 800 {
		t.Fatalf("OriginalPrice without discount = %v", got)
	}
}
