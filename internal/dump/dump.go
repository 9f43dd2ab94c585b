// Package dump serializes a token sequence for inspection, as JSON or YAML.
package dump

import (
	"encoding/json"
	"fmt"

	"github.com/tomdoesdev/lexkit/internal/token"
	"gopkg.in/yaml.v3"
)

// Format represents the supported output formats
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// record is the serialized shape of one token.
type record struct {
	Kind   string `json:"kind" yaml:"kind"`
	Value  string `json:"value" yaml:"value"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	From   int    `json:"from" yaml:"from"`
	To     int    `json:"to" yaml:"to"`
}

// Dumper converts token sequences to the specified format
type Dumper struct {
	format Format
}

// New creates a new dumper with JSON as default format
func New() *Dumper {
	return &Dumper{format: FormatJSON}
}

// NewWithFormat creates a new dumper with the specified format
func NewWithFormat(format Format) *Dumper {
	return &Dumper{format: format}
}

// SetFormat sets the output format
func (d *Dumper) SetFormat(format Format) {
	d.format = format
}

// Dump converts the token sequence to the configured format.
func (d *Dumper) Dump(tokens []token.Token) (string, error) {
	records := make([]record, 0, len(tokens))
	for _, tok := range tokens {
		records = append(records, record{
			Kind:   tok.Kind.String(),
			Value:  tok.Value,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
			From:   tok.From,
			To:     tok.To,
		})
	}

	switch d.format {
	case FormatJSON:
		return toJSON(records)
	case FormatYAML:
		return toYAML(records)
	default:
		return "", fmt.Errorf("unsupported output format: %s", d.format)
	}
}

func toJSON(records []record) (string, error) {
	jsonBytes, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling to JSON: %v", err)
	}
	return string(jsonBytes), nil
}

func toYAML(records []record) (string, error) {
	yamlBytes, err := yaml.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("error marshaling to YAML: %v", err)
	}
	return string(yamlBytes), nil
}
