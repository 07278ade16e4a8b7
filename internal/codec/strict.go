package codec

import (
	"time"

	"github.com/MKhiriev/work-notes/models"
)

// StrictCodec implements the one-note-per-date edition.
type StrictCodec struct{}

// NewStrictCodec returns a [StrictCodec].
func NewStrictCodec() *StrictCodec {
	return &StrictCodec{}
}

func (c *StrictCodec) Variant() string {
	return VariantStrict
}

// BuildKey accepts only a date (or nothing, meaning today).
func (c *StrictCodec) BuildKey(req models.SaveRequest, today time.Time) (models.NoteKey, error) {
	req = trimRequest(req)
	if err := validateInput(req); err != nil {
		return models.NoteKey{}, err
	}
	if req.From != "" || req.To != "" || Sanitize(req.Text) != "" {
		return models.NoteKey{}, ErrUnsupportedKey
	}
	if req.Date == "" {
		return models.NoteKey{Kind: models.Untitled, Date: Today(today)}, nil
	}
	return models.NoteKey{Kind: models.SingleDate, Date: req.Date}, nil
}

// Decode matches exactly "YYYY-MM-DD.txt" with a valid calendar date.
func (c *StrictCodec) Decode(name string) (models.NoteKey, bool) {
	m := strictName.FindStringSubmatch(name)
	if m == nil {
		return models.NoteKey{}, false
	}
	if ValidateDate(m[1]) != nil {
		return models.NoteKey{}, false
	}
	return models.NoteKey{Kind: models.SingleDate, Date: m[1]}, true
}
