package main

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	validationFailedCode = "EMBEDCODE_VALIDATION_FAILED"
	executionFailedCode  = "EMBEDCODE_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error()).
		WithTextCode(validationFailedCode)
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, err.Error()).
		WithTextCode(executionFailedCode)
}
