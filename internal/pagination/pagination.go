// Package pagination tracks the current page of a listing and computes the
// numbered buttons shown for it.
package pagination

import "sync"

// MaxButtons is the number of numbered page buttons shown at once.
const MaxButtons = 5

// Controller holds the current page. Every change of page invokes the
// change callback, which re-fetches the listing.
type Controller struct {
	mu         sync.Mutex
	page       int
	totalPages int
	onChange   func(page int)
}

func NewController(totalPages int, onChange func(page int)) *Controller {
	return &Controller{page: 1, totalPages: max(totalPages, 0), onChange: onChange}
}

// Resume starts a controller at a requested page before the page count is
// known. The first SetTotalPages pulls it into range.
func Resume(page int, onChange func(page int)) *Controller {
	page = max(page, 1)
	return &Controller{page: page, totalPages: page, onChange: onChange}
}

func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

// SetTotalPages records a new page count and pulls the current page back
// into range. Shrinking below the current page triggers a change.
func (c *Controller) SetTotalPages(n int) {
	c.mu.Lock()
	c.totalPages = max(n, 0)
	page := clamp(c.page, c.totalPages)
	changed := page != c.page
	c.page = page
	c.mu.Unlock()
	if changed {
		c.notify(page)
	}
}

func (c *Controller) Next() bool { return c.move(func(p int) int { return p + 1 }) }

func (c *Controller) Prev() bool { return c.move(func(p int) int { return p - 1 }) }

// GoTo jumps to page n, clamped to [1, totalPages]. It reports whether the
// page changed.
func (c *Controller) GoTo(n int) bool { return c.move(func(int) int { return n }) }

func (c *Controller) move(step func(int) int) bool {
	c.mu.Lock()
	page := clamp(step(c.page), c.totalPages)
	if page == c.page {
		c.mu.Unlock()
		return false
	}
	c.page = page
	c.mu.Unlock()
	c.notify(page)
	return true
}

func (c *Controller) notify(page int) {
	if c.onChange != nil {
		c.onChange(page)
	}
}

// View is what the page renders below a listing.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Build(c.page, c.totalPages)
}

func clamp(page, total int) int {
	if total < 1 {
		return 1
	}
	return min(max(page, 1), total)
}
