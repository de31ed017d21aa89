package output

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Formatter renders a report in one output format
type Formatter interface {
	Name() string
	Format(r *Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(r *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(r *Report) ([]byte, error) { return f.F(r) }

var formatters = map[string]Formatter{
	"console": ConsoleFormatter{},
	"json":    JSONFormatter{},
	"yaml":    YAMLFormatter{},
	"csv":     CSVSummarizer{},
	"html":    HTMLFormatter{},
}

// GetFormatterByName returns the formatter registered under name
func GetFormatterByName(name string) (Formatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s (available: %v)", name, FormatterNames())
	}
	return f, nil
}

// FormatterNames lists the registered formats
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// JSONFormatter renders the rounded report as indented JSON
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(r *Report) ([]byte, error) {
	data, err := json.MarshalIndent(r.Rounded(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// YAMLFormatter renders the same document as the JSON formatter in block YAML
type YAMLFormatter struct{}

func (YAMLFormatter) Name() string { return "yaml" }

func (YAMLFormatter) Format(r *Report) ([]byte, error) {
	data, err := json.Marshal(r.Rounded())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	// JSON is valid YAML; decoding into a node keeps key order
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to convert report to YAML: %w", err)
	}
	blockStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return out, nil
}

func blockStyle(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" {
		// keep strings that would otherwise read back as numbers or bools
		n.Style = yaml.DoubleQuotedStyle
		var probe interface{}
		if err := yaml.Unmarshal([]byte(n.Value), &probe); err == nil {
			if s, ok := probe.(string); ok && s == n.Value {
				n.Style = 0
			}
		}
	} else {
		n.Style = 0
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}
