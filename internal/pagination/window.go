package pagination

// Item is one slot of the pagination bar: a page number or an ellipsis.
type Item struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// View is the rendered state of the pagination bar. Visible is false when
// there is at most one page.
type View struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Visible    bool   `json:"visible"`
	HasPrev    bool   `json:"hasPrev"`
	HasNext    bool   `json:"hasNext"`
	Items      []Item `json:"items,omitempty"`
}

// Window returns the numbered pages to show for page out of total. It
// always has min(total, MaxButtons) entries, shifted toward the ends near
// the boundaries.
func Window(page, total int) []int {
	if total <= 0 {
		return nil
	}
	page = clamp(page, total)

	var start, end int
	switch {
	case total <= MaxButtons:
		start, end = 1, total
	case page <= 3:
		start, end = 1, MaxButtons
	case page >= total-2:
		start, end = total-MaxButtons+1, total
	default:
		start, end = page-2, page+2
	}

	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}

// Build lays out the full bar. The first and last page stay reachable: when
// the window skips them they are added with an ellipsis for the gap.
func Build(page, total int) View {
	total = max(total, 0)
	page = clamp(page, total)
	v := View{
		Page:       page,
		TotalPages: total,
		Visible:    total > 1,
		HasPrev:    page > 1,
		HasNext:    page < total,
	}
	if !v.Visible {
		return v
	}

	window := Window(page, total)
	first, last := window[0], window[len(window)-1]
	if first > 1 {
		v.Items = append(v.Items, Item{Page: 1})
		if first > 2 {
			v.Items = append(v.Items, Item{Ellipsis: true})
		}
	}
	for _, p := range window {
		v.Items = append(v.Items, Item{Page: p, Current: p == page})
	}
	if last < total {
		if last < total-1 {
			v.Items = append(v.Items, Item{Ellipsis: true})
		}
		v.Items = append(v.Items, Item{Page: total})
	}
	return v
}
