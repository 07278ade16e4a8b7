package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/work-notes/models"
)

func dated(date string) models.NoteMeta {
	return models.NoteMeta{Name: date + ".txt", Key: models.NoteKey{Kind: models.SingleDate, Date: date}}
}

func ranged(from, to string) models.NoteMeta {
	return models.NoteMeta{
		Name: from + "_to_" + to + ".txt",
		Key:  models.NoteKey{Kind: models.DateRange, From: from, To: to},
	}
}

func text(t string) models.NoteMeta {
	return models.NoteMeta{Name: t + ".txt", Key: models.NoteKey{Kind: models.FreeText, Text: t}}
}

func names(notes []models.NoteMeta) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Name
	}
	return out
}

// bodies returns a loader over a fixed map and counts the reads.
func bodies(m map[string]string, reads *int) BodyLoader {
	return func(_ context.Context, name string) (string, error) {
		*reads++
		return m[name], nil
	}
}

func manyNotes(n int) []models.NoteMeta {
	out := make([]models.NoteMeta, n)
	for i := range out {
		out[i] = text(fmt.Sprintf("note-%03d", i))
	}
	return out
}

func TestEngine_Pagination(t *testing.T) {
	notes := manyNotes(120)
	e := NewEngine(50)

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantStart int
		wantEnd   int
	}{
		{name: "first page", page: 1, wantPage: 1, wantStart: 0, wantEnd: 50},
		{name: "middle page", page: 2, wantPage: 2, wantStart: 50, wantEnd: 100},
		{name: "last partial page", page: 3, wantPage: 3, wantStart: 100, wantEnd: 120},
		{name: "past the end clamps to last", page: 4, wantPage: 3, wantStart: 100, wantEnd: 120},
		{name: "zero clamps to first", page: 0, wantPage: 1, wantStart: 0, wantEnd: 50},
		{name: "negative clamps to first", page: -7, wantPage: 1, wantStart: 0, wantEnd: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := e.Run(context.Background(), notes, Filters{}, tt.page, nil)
			require.NoError(t, err)

			assert.Equal(t, 3, p.TotalPages)
			assert.Equal(t, 120, p.TotalCount)
			assert.Equal(t, 50, p.PageSize)
			assert.Equal(t, tt.wantPage, p.CurrentPage)
			assert.Equal(t, notes[tt.wantStart:tt.wantEnd], p.Items)
		})
	}
}

func TestEngine_EmptyState(t *testing.T) {
	p, err := NewEngine(50).Run(context.Background(), nil, Filters{}, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 0, p.TotalCount)
	assert.Equal(t, 1, p.CurrentPage)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestEngine_FilterComposition(t *testing.T) {
	target := dated("2025-03-10")
	notes := []models.NoteMeta{dated("2025-03-20"), target, dated("2025-02-10"), text("retro-ideas")}
	content := map[string]string{
		"2025-03-20.txt": "planning",
		"2025-03-10.txt": "retro meeting",
		"2025-02-10.txt": "retro meeting",
	}

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{
			name:    "all filters match",
			filters: Filters{Search: "retro", From: "2025-03-01", To: "2025-03-31"},
			want:    []string{"2025-03-10.txt"},
		},
		{
			name:    "search misses",
			filters: Filters{Search: "standup", From: "2025-03-01", To: "2025-03-31"},
			want:    []string{},
		},
		{
			name:    "range ends before the note",
			filters: Filters{Search: "retro", From: "2025-03-01", To: "2025-02-28"},
			want:    []string{},
		},
		{
			name:    "upper bound only",
			filters: Filters{Search: "retro", To: "2025-02-28"},
			want:    []string{"2025-02-10.txt"},
		},
		{
			name:    "search without dates also matches free text keys",
			filters: Filters{Search: "RETRO"},
			want:    []string{"2025-03-10.txt", "2025-02-10.txt", "retro-ideas.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reads int
			p, err := NewEngine(50).Run(context.Background(), notes, tt.filters, 1, bodies(content, &reads))
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(p.Items))
		})
	}
}

func TestEngine_NoBodyReadsWithoutSearch(t *testing.T) {
	var reads int
	_, err := NewEngine(10).Run(context.Background(), manyNotes(30), Filters{From: "2025-01-01"}, 1, bodies(nil, &reads))
	require.NoError(t, err)
	assert.Zero(t, reads)
}

func TestEngine_KeyMatchSkipsBodyRead(t *testing.T) {
	var reads int
	notes := []models.NoteMeta{text("retro"), text("other")}

	p, err := NewEngine(10).Run(context.Background(), notes, Filters{Search: "retro"}, 1, bodies(nil, &reads))
	require.NoError(t, err)

	assert.Equal(t, []string{"retro.txt"}, names(p.Items))
	assert.Equal(t, 1, reads, "only the note whose key did not match is read")
}

func TestEngine_Deterministic(t *testing.T) {
	notes := manyNotes(75)
	content := map[string]string{"note-010.txt": "needle", "note-070.txt": "Needle"}
	e := NewEngine(50)

	var reads int
	first, err := e.Run(context.Background(), notes, Filters{Search: "needle"}, 1, bodies(content, &reads))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Run(context.Background(), notes, Filters{Search: "needle"}, 1, bodies(content, &reads))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []string{"note-010.txt", "note-070.txt"}, names(first.Items))
}

func TestEngine_BodyLoaderError(t *testing.T) {
	boom := errors.New("disk failure")
	loader := func(context.Context, string) (string, error) { return "", boom }

	_, err := NewEngine(50).Run(context.Background(), []models.NoteMeta{text("a")}, Filters{Search: "zzz"}, 1, loader)
	assert.ErrorIs(t, err, boom)
}

func TestEngine_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var reads int
	_, err := NewEngine(50).Run(ctx, []models.NoteMeta{text("a")}, Filters{Search: "zzz"}, 1, bodies(nil, &reads))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, reads)
}

func TestFilterByDate(t *testing.T) {
	notes := []models.NoteMeta{
		dated("2025-01-15"),
		ranged("2025-01-10", "2025-01-20"),
		ranged("2024-12-25", "2025-01-02"),
		text("groceries"),
		dated("2025-02-01"),
	}

	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{
			name: "no bounds is a no-op",
			want: names(notes),
		},
		{
			name: "malformed bounds are ignored",
			from: "yesterday", to: "2025-13-01",
			want: names(notes),
		},
		{
			name: "inclusive single day",
			from: "2025-01-15", to: "2025-01-15",
			want: []string{"2025-01-15.txt", "2025-01-10_to_2025-01-20.txt"},
		},
		{
			name: "range overlapping the lower bound",
			from: "2025-01-01",
			want: []string{"2025-01-15.txt", "2025-01-10_to_2025-01-20.txt", "2024-12-25_to_2025-01-02.txt", "2025-02-01.txt"},
		},
		{
			name: "upper bound only drops later notes and free text",
			to:   "2025-01-05",
			want: []string{"2024-12-25_to_2025-01-02.txt"},
		},
		{
			name: "malformed lower bound with valid upper bound",
			from: "garbage", to: "2025-01-31",
			want: []string{"2025-01-15.txt", "2025-01-10_to_2025-01-20.txt", "2024-12-25_to_2025-01-02.txt"},
		},
		{
			name: "inverted bounds match nothing",
			from: "2025-02-01", to: "2025-01-01",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(FilterByDate(notes, tt.from, tt.to)))
		})
	}
}

func TestPaginate_DefaultSize(t *testing.T) {
	p := Paginate(manyNotes(51), 2, 0)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 2, p.TotalPages)
	assert.Len(t, p.Items, 1)
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPaginate_DoesNotAliasInput(t *testing.T) {
	notes := manyNotes(3)
	p := Paginate(notes, 1, 10)
	p.Items[0].Name = "changed"
	assert.Equal(t, "note-000.txt", notes[0].Name)
}
