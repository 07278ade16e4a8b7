package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/work-notes/models"
)

func TestParseTemplates_AllPagesRender(t *testing.T) {
	templates, err := ParseTemplates()
	require.NoError(t, err)

	note := models.Note{NoteMeta: models.NoteMeta{Name: "2025-01-15.txt"}, Body: "<b>standup</b>"}
	for _, content := range []string{"index", "new", "view", "edit", "error"} {
		t.Run(content, func(t *testing.T) {
			rr := httptest.NewRecorder()
			err := templates.RenderPage(rr, http.StatusOK, viewData{ContentTemplate: content, Note: note, Version: "1.2.3"})

			require.NoError(t, err)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), "<title>")
			assert.Contains(t, rr.Body.String(), "1.2.3")
			assert.NotContains(t, rr.Body.String(), "<b>standup</b>", "bodies are escaped")
		})
	}
}

func TestRenderPage_UnknownTemplate(t *testing.T) {
	templates, err := ParseTemplates()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = templates.RenderPage(rr, http.StatusOK, viewData{ContentTemplate: "missing"})

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRenderPage_StrictHidesRangeInputs(t *testing.T) {
	templates, err := ParseTemplates()
	require.NoError(t, err)

	strict := httptest.NewRecorder()
	require.NoError(t, templates.RenderPage(strict, http.StatusOK, viewData{ContentTemplate: "new", Strict: true, Today: "2025-01-15"}))
	assert.NotContains(t, strict.Body.String(), `name="from_date"`)
	assert.Contains(t, strict.Body.String(), `value="2025-01-15"`)

	free := httptest.NewRecorder()
	require.NoError(t, templates.RenderPage(free, http.StatusOK, viewData{ContentTemplate: "new"}))
	assert.Contains(t, free.Body.String(), `name="from_date"`)
	assert.Contains(t, free.Body.String(), `name="filename"`)
}

func TestPageURL(t *testing.T) {
	tests := []struct {
		name  string
		query models.QueryParams
		page  int
		want  string
	}{
		{name: "first page without filters", page: 1, want: "/"},
		{name: "second page", page: 2, want: "/?page=2"},
		{name: "filters kept", query: models.QueryParams{Search: "retro notes", From: "2025-01-01"}, page: 3, want: "/?from=2025-01-01&page=3&q=retro+notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pageURL(tt.query, tt.page))
		})
	}
}

func TestFlashFromQuery(t *testing.T) {
	assert.Nil(t, flashFromQuery(url.Values{}))
	assert.Equal(t, &flash{OK: true, Message: "Saved 2025-01-15.txt"}, flashFromQuery(url.Values{"saved": {"2025-01-15.txt"}}))
	assert.Equal(t, &flash{OK: true, Message: "Saved a.txt (replaced the existing note)"}, flashFromQuery(url.Values{"saved": {"a.txt"}, "replaced": {"1"}}))
	assert.Equal(t, &flash{OK: true, Message: "Deleted a.txt"}, flashFromQuery(url.Values{"deleted": {"a.txt"}}))
}
