package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/overlay/internal/breakpoint"
	"github.com/alexisbeaulieu97/overlay/internal/keepopen"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/trigger"
	"github.com/alexisbeaulieu97/overlay/internal/ui/components"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	anchorIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("anchor_id", func(fl validator.FieldLevel) bool {
			return anchorIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("placement", func(fl validator.FieldLevel) bool {
			_, err := placement.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("trigger_kind", func(fl validator.FieldLevel) bool {
			_, err := trigger.ParseKind(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("keep_open_kind", func(fl validator.FieldLevel) bool {
			_, err := keepopen.ParseKind(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("breakpoint", func(fl validator.FieldLevel) bool {
			_, err := breakpoint.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return components.IsHexColour(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig performs schema and cross-field validation on the
// configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return overlayerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Anchors))
	for i, anchor := range cfg.Anchors {
		if first, exists := seen[anchor.ID]; exists {
			return overlayerrors.NewValidationError(
				fieldForAnchor(i, "id"),
				fmt.Sprintf("duplicate anchor id %q (first declared at anchors[%d])", anchor.ID, first),
				nil,
			)
		}
		seen[anchor.ID] = i
	}

	if from, until := cfg.Defaults.DisplayFrom, cfg.Defaults.DisplayUntil; from != nil && until != nil {
		return overlayerrors.NewValidationError("defaults", "display_from and display_until are mutually exclusive", nil)
	}
	for i, anchor := range cfg.Anchors {
		if anchor.DisplayFrom != nil && anchor.DisplayUntil != nil {
			return overlayerrors.NewValidationError(fieldForAnchor(i, "display_from"), "display_from and display_until are mutually exclusive", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return overlayerrors.NewValidationError(field, msg, err)
	}

	return overlayerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Anchors[0].ShowDelay into anchors[0].show_delay.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "Behavior" {
			continue
		}
		lowered = append(lowered, snakeCase(part))
	}
	return strings.Join(lowered, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && isLowerOrDigit(s[i-1]) {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fieldForAnchor(index int, field string) string {
	return fmt.Sprintf("anchors[%d].%s", index, field)
}

func isLowerOrDigit(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
