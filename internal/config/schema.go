package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema []byte

const schemaResource = "config.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaResource, bytes.NewReader(configSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaResource)
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a decoded YAML configuration against the schema.
func validateDocument(doc any) error {
	if doc == nil {
		return nil
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("configuration is not a plain mapping: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	var instance any
	if err := decoder.Decode(&instance); err != nil {
		return err
	}

	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("invalid configuration schema: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return errors.New(describeIssues(validationErr))
		}
		return err
	}
	return nil
}

func describeIssues(err *jsonschema.ValidationError) string {
	var parts []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			}
			parts = append(parts, fmt.Sprintf("%s: %s", location, strings.TrimSpace(node.Message)))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return strings.Join(parts, "; ")
}
