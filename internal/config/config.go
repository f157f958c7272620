// Package config loads an optional JSON document describing additional
// host globals to register beyond the built-in IO/JSON/Symbol/WASI set, and
// generates the JSON Schema describing that document. Loading checks only
// that every global has a name and a factory; it does not validate the
// document against the schema.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/surma/jsxx-go/internal/translator"
)

// GlobalConfig is one entry of a --config document's "globals" array. Its
// fields mirror translator.Global field-for-field; it exists as a distinct
// type so the JSON Schema it generates documents exactly what a config
// author may write, independent of the translator's internal struct.
type GlobalConfig struct {
	Name              string   `json:"name" jsonschema:"required,description=Identifier the generated code binds the object to"`
	AdditionalHeaders []string `json:"additional_headers,omitempty" jsonschema:"description=Runtime include paths this global requires"`
	Init              string   `json:"init,omitempty" jsonschema:"description=Optional statement emitted before globals are materialized"`
	Factory           string   `json:"factory" jsonschema:"required,description=Expression whose value initializes the global"`
}

// document is the top-level shape of a --config file.
type document struct {
	Globals []GlobalConfig `json:"globals"`
}

// LoadGlobals reads and validates a --config file, returning the globals it
// describes in file order.
func LoadGlobals(path string) ([]translator.Global, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	out := make([]translator.Global, 0, len(doc.Globals))
	for _, g := range doc.Globals {
		if g.Name == "" || g.Factory == "" {
			return nil, fmt.Errorf("config %q: every global needs a name and a factory", path)
		}
		out = append(out, translator.Global{
			Name:              g.Name,
			AdditionalHeaders: g.AdditionalHeaders,
			Init:              g.Init,
			Factory:           g.Factory,
		})
	}
	return out, nil
}

// Schema returns the pretty-printed JSON Schema for a --config document,
// for the --print-schema flag.
func Schema() (string, error) {
	schema := jsonschema.Reflect(&document{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}
