package models

// SaveRequest is the raw input of a note write as it arrives from a form or
// the JSON API. Dates are YYYY-MM-DD strings; empty means "not supplied".
type SaveRequest struct {
	// Date is the single date of the note.
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`

	// From and To describe an inclusive date range. To requires From.
	From string `json:"from_date" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to_date" validate:"omitempty,datetime=2006-01-02"`

	// Text is free text used in the filename; it is sanitized before use.
	Text string `json:"filename"`

	// Body is the note content, stored verbatim.
	Body string `json:"notes"`
}

// QueryParams are the list filters accepted from the presentation layer.
// Malformed dates are tolerated here and dropped by the query engine.
type QueryParams struct {
	Search string `json:"q"`
	From   string `json:"from"`
	To     string `json:"to"`
	Page   int    `json:"page"`
}

// HasFilters reports whether any filter besides the page number is set.
func (q QueryParams) HasFilters() bool {
	return q.Search != "" || q.From != "" || q.To != ""
}
