/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"bennypowers.dev/tessera/convert"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
			return identPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			_, err := convert.ParsePlatform(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks struct constraints and the cross-field rules.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			fe := ves[0]
			if fe.Tag() == "platform" {
				return fmt.Errorf("%w: %s: %w %q", ErrInvalidConfig, fieldName(fe), convert.ErrUnknownPlatform, fe.Value())
			}
			return fmt.Errorf("%w: %s failed validation for tag '%s'", ErrInvalidConfig, fieldName(fe), fe.Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(c.Platforms))
	for i, p := range c.Platforms {
		key := p.Platform + "/" + p.Dir
		if seen[key] {
			return fmt.Errorf("%w: platforms[%d]: duplicate output %q", ErrInvalidConfig, i, key)
		}
		seen[key] = true
	}

	return nil
}

// fieldName renders a validator namespace like Config.Platforms[0].Platform
// as platforms[0].platform.
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToLower(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, ".")
}
