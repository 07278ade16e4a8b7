// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks the merged [StructuredConfig] against its `validate` tags.
// Each failing field is reported under the error of its group (App, Storage,
// Server, Auth or Client).
func (cfg *StructuredConfig) validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating config: %w", err)
	}

	var joined error
	for _, fe := range fieldErrs {
		joined = errors.Join(joined, fmt.Errorf("%w: %s failed on '%s'", groupError(fe.StructNamespace()), fe.StructNamespace(), fe.Tag()))
	}
	return joined
}

// groupError maps "StructuredConfig.App.Variant" to ErrInvalidAppConfigs.
func groupError(namespace string) error {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return ErrInvalidConfig
	}

	switch parts[1] {
	case "App":
		return ErrInvalidAppConfigs
	case "Storage":
		return ErrInvalidStorageConfigs
	case "Server":
		return ErrInvalidServerConfigs
	case "Auth":
		return ErrInvalidAuthConfigs
	case "Client":
		return ErrInvalidClientConfigs
	}
	return ErrInvalidConfig
}
