package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "schema://wellcheck-catalog.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Parse decodes a YAML catalog document, validates it and builds its
// indices. The returned catalog is immutable.
func Parse(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog YAML: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validateCatalog(&c); err != nil {
		return nil, err
	}
	c.index()
	return &c, nil
}

// validateDocument checks the untyped document against documentSchema.
func validateDocument(raw any) error {
	schema, err := documentSchemaCompiled()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	// yaml.v3 yields Go ints and nested maps; round-trip through JSON so the
	// validator sees the same value shapes it would for a JSON document.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("normalize catalog document: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("normalize catalog document: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

func documentSchemaCompiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
