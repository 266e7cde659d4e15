// Package listing holds the pure list helpers shared by the list views:
// text filtering, fixed-size pagination and the visible page-number window.
package listing

import "strings"

// DefaultPageSize is the number of items shown per page.
const DefaultPageSize = 10

// DefaultMaxVisible is the number of numbered page links shown around the current page.
const DefaultMaxVisible = 5

// Filter keeps items where any field contains query, case-insensitively.
// An empty (or blank) query returns items unchanged.
func Filter[T any](items []T, query string, fields ...func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(it)), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Page is one page of a paginated slice.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// StartIndex is the 1-based position of the first item on the page, 0 when empty.
func (p Page[T]) StartIndex() int {
	if len(p.Items) == 0 {
		return 0
	}
	return (p.Number-1)*p.Size + 1
}

// EndIndex is the 1-based position of the last item on the page, 0 when empty.
func (p Page[T]) EndIndex() int {
	if len(p.Items) == 0 {
		return 0
	}
	return p.StartIndex() + len(p.Items) - 1
}

// Paginate slices items into the requested page. The last page holds the
// remainder; pages past the end are empty; a page below 1 is treated as 1.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	p := Page[T]{
		Number:     page,
		Size:       size,
		TotalItems: total,
		TotalPages: (total + size - 1) / size,
	}
	start := (page - 1) * size
	if start >= total {
		p.Items = []T{}
		return p
	}
	end := min(start+size, total)
	p.Items = items[start:end]
	return p
}

// Link is one entry in the page-number window. Ellipsis entries have Number 0.
type Link struct {
	Number   int
	Ellipsis bool
	Current  bool
}

// Window returns the page links to render: every page when total fits in
// maxVisible, otherwise a run of maxVisible pages around current with the
// first and last page and ellipses for the gaps.
func Window(current, total, maxVisible int) []Link {
	if total <= 0 {
		return nil
	}
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	current = max(1, min(current, total))

	if total <= maxVisible {
		return span(1, total, current, nil)
	}

	start := max(1, current-maxVisible/2)
	end := min(total, start+maxVisible-1)
	if end-start+1 < maxVisible {
		start = max(1, end-maxVisible+1)
	}

	var links []Link
	if start > 1 {
		links = append(links, Link{Number: 1, Current: current == 1})
		if start > 2 {
			links = append(links, Link{Ellipsis: true})
		}
	}
	links = span(start, end, current, links)
	if end < total {
		if end < total-1 {
			links = append(links, Link{Ellipsis: true})
		}
		links = append(links, Link{Number: total, Current: current == total})
	}
	return links
}

func span(from, to, current int, links []Link) []Link {
	for i := from; i <= to; i++ {
		links = append(links, Link{Number: i, Current: i == current})
	}
	return links
}
