// Package query filters and paginates the sorted note listing produced by
// the index.
package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/work-notes/internal/codec"
	"github.com/MKhiriev/work-notes/models"
)

// DefaultPageSize is used when an Engine is created with a non-positive size.
const DefaultPageSize = 50

// Filters are the optional list filters. Empty fields are inactive.
type Filters struct {
	Search string
	From   string
	To     string
}

// BodyLoader returns the body of the named note. It is called only while a
// search is active, and only for notes whose key does not already match.
type BodyLoader func(ctx context.Context, name string) (string, error)

// Engine applies, in order, the date filter, the substring filter and
// pagination. It holds no state besides its page size, so one Engine can
// serve concurrent requests.
type Engine struct {
	PageSize int
}

// NewEngine returns an Engine with the given page size.
func NewEngine(pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{PageSize: pageSize}
}

// Run filters notes and returns the requested page. notes must already be
// sorted; the relative order is preserved.
func (e *Engine) Run(ctx context.Context, notes []models.NoteMeta, filters Filters, page int, loadBody BodyLoader) (models.Page, error) {
	filtered := FilterByDate(notes, filters.From, filters.To)

	filtered, err := FilterBySubstring(ctx, filtered, filters.Search, loadBody)
	if err != nil {
		return models.Page{}, err
	}

	return Paginate(filtered, page, e.pageSize()), nil
}

func (e *Engine) pageSize() int {
	if e.PageSize <= 0 {
		return DefaultPageSize
	}
	return e.PageSize
}

// FilterByDate keeps notes inside [from, to]. A bound that is empty or not a
// valid date is ignored. A single date is kept when from <= date <= to; a
// range is kept when it overlaps the interval. Undated notes are dropped
// while any bound is active. When from is after to nothing matches.
func FilterByDate(notes []models.NoteMeta, from, to string) []models.NoteMeta {
	from, to = cleanBound(from), cleanBound(to)
	if from == "" && to == "" {
		return notes
	}
	if from != "" && to != "" && from > to {
		return []models.NoteMeta{}
	}

	out := make([]models.NoteMeta, 0, len(notes))
	for _, n := range notes {
		if inRange(n.Key, from, to) {
			out = append(out, n)
		}
	}
	return out
}

func cleanBound(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || codec.ValidateDate(s) != nil {
		return ""
	}
	return s
}

// inRange compares ISO date strings lexicographically, which is the same as
// comparing them chronologically.
func inRange(k models.NoteKey, from, to string) bool {
	if !k.IsDated() {
		return false
	}

	start, end := k.Date, k.Date
	if k.Kind == models.DateRange {
		start, end = k.From, k.To
	}

	if to != "" && start > to {
		return false
	}
	if from != "" && end < from {
		return false
	}
	return true
}

// FilterBySubstring keeps notes whose key string or body contains search,
// ignoring case. An empty search returns notes unchanged and reads nothing.
func FilterBySubstring(ctx context.Context, notes []models.NoteMeta, search string, loadBody BodyLoader) ([]models.NoteMeta, error) {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return notes, nil
	}

	out := make([]models.NoteMeta, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(codec.KeyString(n.Key)), needle) {
			out = append(out, n)
			continue
		}
		if loadBody == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := loadBody(ctx, n.Name)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", n.Name, err)
		}
		if strings.Contains(strings.ToLower(body), needle) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Paginate returns the page-th slice of size items. page is clamped into
// [1, totalPages], and forced to 1 when there are no items.
func Paginate(notes []models.NoteMeta, page, size int) models.Page {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(notes)
	totalPages := (total + size - 1) / size

	switch {
	case totalPages == 0:
		page = 1
	case page < 1:
		page = 1
	case page > totalPages:
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]models.NoteMeta, end-start)
	copy(items, notes[start:end])

	return models.Page{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		PageSize:    size,
	}
}
