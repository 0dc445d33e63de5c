package validators

import (
	"context"

	"github.com/MKhiriev/go-name-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the backend-assigned identifier of a name entry.
	FieldID = "id"

	// FieldText targets the name text. Validating it runs the full
	// sanitize/deny-list/allow-list/length pipeline.
	FieldText = "texto"
)

// NameValidator implements [Validator] for the name models:
// NameEntry and NameRequest, in value and pointer form.
type NameValidator struct {
}

// NewNameValidator constructs a new NameValidator and returns it as the
// Validator interface.
func NewNameValidator() Validator {
	return &NameValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Default fields: NameEntry validates FieldText only (ids are optional for
// entries that were not persisted yet); NameRequest validates FieldText.
// Returns ErrUnsupportedType for any other type.
func (v *NameValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NameEntry:
		return v.validateNameEntry(ctx, value, fields...)
	case *models.NameEntry:
		return v.validateNameEntry(ctx, *value, fields...)

	case models.NameRequest:
		return v.validateNameRequest(ctx, value, fields...)
	case *models.NameRequest:
		return v.validateNameRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NameValidator) validateNameEntry(_ context.Context, entry models.NameEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if entry.ID.IsZero() {
				return ErrInvalidID
			}
		case FieldText:
			if _, err := Check(entry.Text); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NameValidator) validateNameRequest(_ context.Context, request models.NameRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if _, err := Check(request.Text); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
