package config

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"embedcode/internal/logging"
)

const configValidationCode = "CONFIG_VALIDATION_FAILED"

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.CodeRoot, validation.Required, validation.By(existingDir)),
		validation.Field(&c.DocumentationRoot, validation.Required, validation.By(existingDir)),
		validation.Field(&c.CodeIncludes, validation.Required),
		validation.Field(&c.DocIncludes, validation.Required),
		validation.Field(&c.FragmentsDir, validation.Required),
		validation.Field(&c.Separator, validation.Required),
	)
	if err == nil {
		_, err = logging.ParseFormat(c.Log.Format)
	}
	if err == nil {
		_, err = logging.ParseLevel(c.Log.Level)
	}
	return wrapValidationError(err)
}

func existingDir(value any) error {
	path, _ := value.(string)
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return validation.NewError("config.path_missing", fmt.Sprintf("the path %s does not exist", path))
	}
	if !info.IsDir() {
		return validation.NewError("config.path_not_dir", fmt.Sprintf("%s is a file, a directory was expected", path))
	}
	return nil
}

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "configuration validation failed: "+err.Error()).
		WithTextCode(configValidationCode)
}
