package codec

import (
	"time"

	"github.com/MKhiriev/work-notes/models"
)

// FreeTextCodec implements the edition with free-text names and ranges.
type FreeTextCodec struct{}

// NewFreeTextCodec returns a [FreeTextCodec].
func NewFreeTextCodec() *FreeTextCodec {
	return &FreeTextCodec{}
}

func (c *FreeTextCodec) Variant() string {
	return VariantFreeText
}

// BuildKey picks the key shape in priority order: range, single date, free
// text, untitled. A single date is ignored when a full range is present.
func (c *FreeTextCodec) BuildKey(req models.SaveRequest, today time.Time) (models.NoteKey, error) {
	req = trimRequest(req)
	if err := validateInput(req); err != nil {
		return models.NoteKey{}, err
	}

	text := Sanitize(req.Text)
	switch {
	case req.From != "" && req.To != "":
		return models.NoteKey{Kind: models.DateRange, From: req.From, To: req.To, Text: text}, nil
	case req.Date != "":
		return models.NoteKey{Kind: models.SingleDate, Date: req.Date, Text: text}, nil
	case text != "":
		return models.NoteKey{Kind: models.FreeText, Text: text}, nil
	default:
		return models.NoteKey{Kind: models.Untitled, Date: Today(today)}, nil
	}
}

// Decode never rejects a name with the note suffix: anything that is not a
// dated or ranged name is kept as opaque free text.
func (c *FreeTextCodec) Decode(name string) (models.NoteKey, bool) {
	if !HasSuffix(name) {
		return models.NoteKey{}, false
	}
	stem := name[:len(name)-len(Suffix)]

	if m := rangeName.FindStringSubmatch(stem); m != nil && ValidateDate(m[1]) == nil && ValidateDate(m[2]) == nil {
		return models.NoteKey{Kind: models.DateRange, From: m[1], To: m[2], Text: m[3]}, true
	}
	if m := datedName.FindStringSubmatch(stem); m != nil && ValidateDate(m[1]) == nil {
		return models.NoteKey{Kind: models.SingleDate, Date: m[1], Text: m[2]}, true
	}
	return models.NoteKey{Kind: models.FreeText, Text: stem}, true
}
