package service

import (
	"context"

	"github.com/MKhiriev/go-name-keeper/internal/validators"
	"github.com/MKhiriev/go-name-keeper/models"
)

// NamesValidationService re-runs the name pipeline on every write. The inner
// service only ever sees sanitized text.
type NamesValidationService struct {
	inner     NamesService
	validator validators.Validator
}

func NewNamesValidationService() NamesServiceWrapper {
	return &NamesValidationService{
		validator: validators.NewNameValidator(),
	}
}

func (v *NamesValidationService) List(ctx context.Context) ([]models.NameEntry, error) {
	return v.inner.List(ctx)
}

func (v *NamesValidationService) Create(ctx context.Context, request models.NameRequest) (models.NameEntry, error) {
	sanitized, err := v.sanitize(ctx, request)
	if err != nil {
		return models.NameEntry{}, err
	}

	return v.inner.Create(ctx, sanitized)
}

func (v *NamesValidationService) Update(ctx context.Context, id models.EntryID, request models.NameRequest) (models.NameEntry, error) {
	if err := v.validator.Validate(ctx, models.NameEntry{ID: id}, validators.FieldID); err != nil {
		return models.NameEntry{}, err
	}

	sanitized, err := v.sanitize(ctx, request)
	if err != nil {
		return models.NameEntry{}, err
	}

	return v.inner.Update(ctx, id, sanitized)
}

func (v *NamesValidationService) Delete(ctx context.Context, id models.EntryID) error {
	if err := v.validator.Validate(ctx, models.NameEntry{ID: id}, validators.FieldID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, id)
}

func (v *NamesValidationService) Wrap(wrapped NamesService) NamesService {
	v.inner = wrapped
	return v
}

// sanitize validates the raw text and returns a request carrying the
// canonical form. Validation errors are returned unwrapped.
func (v *NamesValidationService) sanitize(ctx context.Context, request models.NameRequest) (models.NameRequest, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldText); err != nil {
		return models.NameRequest{}, err
	}

	return models.NameRequest{Text: validators.Sanitize(request.Text)}, nil
}
