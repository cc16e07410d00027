package pagination

import (
	"reflect"
	"testing"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		page, total int
		want        []int
	}{
		{1, 1, []int{1}},
		{1, 5, []int{1, 2, 3, 4, 5}},
		{2, 3, []int{1, 2, 3}},
		{1, 12, []int{1, 2, 3, 4, 5}},
		{3, 12, []int{1, 2, 3, 4, 5}},
		{7, 12, []int{5, 6, 7, 8, 9}},
		{10, 12, []int{8, 9, 10, 11, 12}},
		{12, 12, []int{8, 9, 10, 11, 12}},
		{1, 0, nil},
	}
	for _, tt := range tests {
		if got := Window(tt.page, tt.total); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Window(%d, %d) = %v, want %v", tt.page, tt.total, got, tt.want)
		}
	}
}

func render(v View) []any {
	var out []any
	for _, it := range v.Items {
		if it.Ellipsis {
			out = append(out, "…")
			continue
		}
		out = append(out, it.Page)
	}
	return out
}

func TestBuildEllipsis(t *testing.T) {
	got := render(Build(7, 12))
	want := []any{1, "…", 5, 6, 7, 8, 9, "…", 12}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build(7, 12) = %v, want %v", got, want)
	}

	// Window 2..6 touches the first page, so no gap is shown before it.
	got = render(Build(4, 8))
	want = []any{1, 2, 3, 4, 5, 6, "…", 8}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build(4, 8) = %v, want %v", got, want)
	}
}

func TestBuildHiddenForSinglePage(t *testing.T) {
	for _, total := range []int{0, 1} {
		if v := Build(1, total); v.Visible || len(v.Items) != 0 {
			t.Errorf("Build(1, %d) = %+v, want hidden", total, v)
		}
	}
}

func TestBuildMarksCurrent(t *testing.T) {
	v := Build(1, 5)
	if !v.Items[0].Current || v.HasPrev || !v.HasNext {
		t.Fatalf("Build(1, 5) = %+v", v)
	}
	for _, it := range v.Items[1:] {
		if it.Current {
			t.Fatalf("more than one current page: %+v", v.Items)
		}
	}
}

func TestControllerClampsAndNotifies(t *testing.T) {
	var fetched []int
	c := NewController(3, func(p int) { fetched = append(fetched, p) })

	if c.Prev() {
		t.Fatal("Prev on page 1 should not move")
	}
	c.Next()
	c.Next()
	if c.Next() {
		t.Fatal("Next on last page should not move")
	}
	c.GoTo(99)
	c.GoTo(-4)
	if c.Page() != 1 {
		t.Fatalf("page = %d, want 1", c.Page())
	}
	if want := []int{2, 3, 1}; !reflect.DeepEqual(fetched, want) {
		t.Fatalf("fetches = %v, want %v", fetched, want)
	}
}

func TestControllerShrinkingTotal(t *testing.T) {
	var fetched []int
	c := NewController(10, func(p int) { fetched = append(fetched, p) })
	c.GoTo(8)
	c.SetTotalPages(4)
	if c.Page() != 4 {
		t.Fatalf("page = %d, want 4", c.Page())
	}
	if want := []int{8, 4}; !reflect.DeepEqual(fetched, want) {
		t.Fatalf("fetches = %v, want %v", fetched, want)
	}
}

func TestResumeRefetchesOutOfRangePage(t *testing.T) {
	var fetched []int
	c := Resume(9, func(p int) { fetched = append(fetched, p) })
	c.SetTotalPages(12)
	if len(fetched) != 0 || c.Page() != 9 {
		t.Fatalf("in-range page refetched: %v", fetched)
	}
	c = Resume(9, func(p int) { fetched = append(fetched, p) })
	c.SetTotalPages(5)
	if c.Page() != 5 || !reflect.DeepEqual(fetched, []int{5}) {
		t.Fatalf("page = %d fetches = %v", c.Page(), fetched)
	}
}
