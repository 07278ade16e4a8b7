package models

// SaveStatus is the outcome class of a write operation.
type SaveStatus string

const (
	StatusOK    SaveStatus = "ok"
	StatusError SaveStatus = "error"
)

// SaveResult is the explicit result of a write, handed to the presentation
// layer as plain data.
type SaveResult struct {
	Status  SaveStatus `json:"status"`
	Message string     `json:"message"`

	// Name is the stored filename. Empty when the write did not happen.
	Name string `json:"name,omitempty"`

	// Overwritten is true when a note with the same name already existed.
	Overwritten bool `json:"overwritten,omitempty"`
}

// Page is one page of query results.
type Page struct {
	Items       []NoteMeta `json:"items"`
	CurrentPage int        `json:"current_page"`
	TotalPages  int        `json:"total_pages"`
	TotalCount  int        `json:"total_count"`
	PageSize    int        `json:"page_size"`
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// AppInfo describes the running server.
type AppInfo struct {
	Version string `json:"version"`
	Variant string `json:"variant"`
}
