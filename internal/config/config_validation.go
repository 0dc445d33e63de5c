// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	structValidatorOnce sync.Once
	structValidator     *validator.Validate
)

func getStructValidator() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}

// validate checks that the final merged [StructuredConfig] satisfies the
// server's requirements before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := getStructValidator().Struct(cfg); err != nil {
		return describeValidationError(err)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := getStructValidator().Struct(cfg); err != nil {
		kind := ErrInvalidAppConfigs
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && strings.HasPrefix(ve[0].StructNamespace(), "ClientConfig.Adapter.") {
			kind = ErrInvalidAdapterConfigs
		}
		return fmt.Errorf("%w: %w", kind, describeValidationError(err))
	}
	return nil
}

// describeValidationError turns validator.ValidationErrors into one error per
// failed field, joined.
func describeValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	errs := make([]error, 0, len(ve))
	for _, fe := range ve {
		errs = append(errs, fmt.Errorf("%w: %s fails %q (value %v)",
			ErrInvalidField, fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.Join(errs...)
}
