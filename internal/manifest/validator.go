package manifest

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	extendyerrors "github.com/alexisbeaulieu97/extendy/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	pluginNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the manifest package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("plugin_name", func(fl validator.FieldLevel) bool {
			return pluginNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-entry validation on the manifest.
func Validate(m *Manifest) error {
	if m == nil {
		return extendyerrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(m); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(m.Plugins))
	for i, ref := range m.Plugins {
		if first, exists := seen[ref.Name]; exists {
			return extendyerrors.NewValidationError(
				fieldForPlugin(i, "name"),
				fmt.Sprintf("duplicate plugin %q (first listed at plugins[%d])", ref.Name, first),
				nil,
			)
		}
		seen[ref.Name] = i
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return extendyerrors.NewValidationError(field, msg, err)
	}

	return extendyerrors.NewValidationError("manifest", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForPlugin(index int, field string) string {
	return fmt.Sprintf("plugins[%d].%s", index, field)
}
