package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/MKhiriev/work-notes/internal/codec"
	"github.com/MKhiriev/work-notes/models"
)

// Field names accepted by [NoteValidator.Validate] to scope validation of
// plain values.
const (
	// FieldNoteName validates a stored note name (a string).
	FieldNoteName = "name"
)

// NoteValidator validates note input with go-playground/validator and maps
// rule failures onto the codec's error taxonomy, so callers see the same
// errors whether a request is rejected here or by the codec.
type NoteValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewNoteValidator builds a [NoteValidator] with English messages. Field
// names in messages are taken from json tags ("from_date", not "From").
func NewNoteValidator() (Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &NoteValidator{validate: validate, trans: trans}, nil
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SaveRequest:
		return v.validateSaveRequest(value)
	case *models.SaveRequest:
		return v.validateSaveRequest(*value)
	case string:
		if !hasField(fields, FieldNoteName) {
			return ErrUnknownField
		}
		return validateNoteName(value)
	default:
		return ErrUnsupportedType
	}
}

// validateSaveRequest reports, in order: a To date without a From date, the
// first malformed date, then a To date before the From date.
func (v *NoteValidator) validateSaveRequest(req models.SaveRequest) error {
	req.Date = strings.TrimSpace(req.Date)
	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)

	if req.To != "" && req.From == "" {
		return codec.ErrMissingRangeStart
	}

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return fmt.Errorf("error validating note: %w", err)
		}
		fe := fieldErrs[0]
		if fe.Tag() == "datetime" {
			return fmt.Errorf("%w: %s", codec.ErrInvalidDate, fe.Translate(v.trans))
		}
		return fmt.Errorf("%w: %s", ErrInvalidField, fe.Translate(v.trans))
	}

	if req.From != "" && req.To != "" && req.To < req.From {
		return codec.ErrInvertedRange
	}
	return nil
}

func validateNoteName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return ErrInvalidNoteName
	}
	if !codec.HasSuffix(name) {
		return ErrInvalidNoteName
	}
	return nil
}

func hasField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
