package scene

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "scene.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// Validate checks raw scene YAML against the embedded JSON schema
func Validate(raw []byte) error {
	sch, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	// Normalize YAML scalars to the JSON value model the validator expects
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
