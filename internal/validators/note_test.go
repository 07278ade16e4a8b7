package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/work-notes/internal/codec"
	"github.com/MKhiriev/work-notes/models"
)

func newTestValidator(t *testing.T) Validator {
	t.Helper()
	v, err := NewNoteValidator()
	require.NoError(t, err)
	return v
}

func TestNoteValidator_SaveRequest(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		req     models.SaveRequest
		wantErr error
		message string
	}{
		{name: "empty request", req: models.SaveRequest{}},
		{name: "single date", req: models.SaveRequest{Date: "2025-01-15", Body: "x"}},
		{name: "range", req: models.SaveRequest{From: "2025-01-01", To: "2025-01-07"}},
		{name: "same day range", req: models.SaveRequest{From: "2025-01-01", To: "2025-01-01"}},
		{name: "from only", req: models.SaveRequest{From: "2025-01-01"}},
		{name: "padded date", req: models.SaveRequest{Date: " 2025-01-15 "}},
		{name: "free text", req: models.SaveRequest{Text: "../../etc/passwd"}},
		{
			name:    "impossible date",
			req:     models.SaveRequest{Date: "2025-13-40"},
			wantErr: codec.ErrInvalidDate,
			message: "date",
		},
		{
			name:    "not a date",
			req:     models.SaveRequest{From: "notadate"},
			wantErr: codec.ErrInvalidDate,
			message: "from_date",
		},
		{
			name:    "missing range start wins over invalid date",
			req:     models.SaveRequest{Date: "garbage", To: "2025-01-01"},
			wantErr: codec.ErrMissingRangeStart,
		},
		{
			name:    "inverted range",
			req:     models.SaveRequest{From: "2025-02-01", To: "2025-01-01"},
			wantErr: codec.ErrInvertedRange,
		},
		{
			name:    "invalid date wins over inverted range",
			req:     models.SaveRequest{From: "2025-02-01", To: "2025-01-32"},
			wantErr: codec.ErrInvalidDate,
			message: "to_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestNoteValidator_SaveRequestPointer(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate(context.Background(), &models.SaveRequest{Date: "2025-02-30"})
	assert.ErrorIs(t, err, codec.ErrInvalidDate)
}

func TestNoteValidator_NoteName(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	for _, name := range []string{"2025-01-15.txt", "groceries.TXT", "a_to_b.txt"} {
		assert.NoError(t, v.Validate(ctx, name, FieldNoteName), name)
	}
	for _, name := range []string{"", "..", "notes.md", "dir/a.txt", `dir\a.txt`, "a\x00.txt"} {
		assert.ErrorIs(t, v.Validate(ctx, name, FieldNoteName), ErrInvalidNoteName, name)
	}
}

func TestNoteValidator_Unsupported(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "a.txt"), ErrUnknownField)
}
