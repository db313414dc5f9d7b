// Package loader reads menu item definitions from JSON, NDJSON, YAML or TOML
// documents, or from plain text with one title per line.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Record is one item as written in a file. Order is optional; records
// without one are ordered by their position in the file.
type Record struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Order *int   `json:"order,omitempty" yaml:"order,omitempty" toml:"order,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Body  string `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
}

// document is the wrapped form: a top level "items" list. TOML can only
// express a list of tables this way.
type document struct {
	Items []Record `json:"items" yaml:"items" toml:"items"`
}

var (
	tomlSection  = regexp.MustCompile(`^\s*\[{1,2}[a-zA-Z_][a-zA-Z0-9_.-]*\]{1,2}\s*$`)
	tomlKeyValue = regexp.MustCompile(`^\s*[a-zA-Z_][a-zA-Z0-9_.-]*\s*=\s*.+$`)
)

// LoadItems parses input, auto-detecting the format, and normalizes the
// result. Supported:
//   - a JSON array of records, or an object with an "items" array
//   - newline-delimited JSON, one record per line
//   - YAML: a list, an "items" mapping, or one record per document
//   - TOML with [[items]] tables
//   - plain text, one title per non-empty line
func LoadItems(input string) ([]Record, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	var (
		records []Record
		err     error
	)
	lines := strings.Split(input, "\n")
	switch {
	case strings.HasPrefix(input, "---") || strings.Contains(input, "\n---"):
		records, err = loadMultiDocYAML(input)
	case len(lines) > 1 && isLikelyNDJSON(lines):
		records, err = loadNDJSON(lines)
	case isLikelyTOML(lines):
		records, err = loadTOML(input)
	case strings.HasPrefix(input, "[") || strings.HasPrefix(input, "{"):
		records, err = loadJSON(input)
	case isLikelyYAML(lines):
		records, err = loadYAML(input)
	default:
		records = loadLines(lines)
	}
	if err != nil {
		return nil, err
	}
	return Normalize(records)
}

// LoadFile reads path and parses it. A known extension selects the format;
// anything else is auto-detected.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	input := strings.TrimSpace(string(data))
	if input == "" {
		return nil, fmt.Errorf("%s: empty input", path)
	}

	var records []Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		records, err = loadJSON(input)
	case ".ndjson", ".jsonl":
		records, err = loadNDJSON(strings.Split(input, "\n"))
	case ".yaml", ".yml":
		records, err = loadMultiDocYAML(input)
	case ".toml":
		records, err = loadTOML(input)
	case ".txt":
		records = loadLines(strings.Split(input, "\n"))
	default:
		return LoadItems(input)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Normalize(records)
}

// Normalize fills in missing identities and orders and rejects records that
// cannot be told apart.
func Normalize(records []Record) ([]Record, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no items found in input")
	}
	out := make([]Record, len(records))
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if r.ID == "" && r.Title == "" {
			return nil, fmt.Errorf("item %d: needs an id or a title", i)
		}
		if r.ID == "" {
			r.ID = slug(r.Title)
			if r.ID == "" {
				r.ID = "item-" + strconv.Itoa(i)
			}
		}
		if r.Title == "" {
			r.Title = r.ID
		}
		if r.Order == nil {
			order := i
			r.Order = &order
		}
		if j, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %q (first used by item %d)", i, r.ID, j)
		}
		seen[r.ID] = i
		out[i] = r
	}
	return out, nil
}

func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// loadJSON accepts either a bare array or the wrapped form.
func loadJSON(input string) ([]Record, error) {
	if strings.HasPrefix(input, "[") {
		var records []Record
		if err := json.Unmarshal([]byte(input), &records); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return records, nil
	}
	var doc document
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return doc.Items, nil
}

func loadNDJSON(lines []string) ([]Record, error) {
	records := make([]Record, 0, len(lines))
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var r Record
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			return nil, fmt.Errorf("invalid JSON on line %d: %w", n+1, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// loadYAML decodes one YAML document holding a list or the wrapped form.
func loadYAML(input string) ([]Record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(input), &node); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return decodeYAMLNode(&node)
}

// loadMultiDocYAML treats every document as either a list of records, the
// wrapped form, or a single record.
func loadMultiDocYAML(input string) ([]Record, error) {
	decoder := yaml.NewDecoder(strings.NewReader(input))
	var records []Record
	for {
		var node yaml.Node
		if err := decoder.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("invalid multi-document YAML: %w", err)
		}
		got, err := decodeYAMLNode(&node)
		if err != nil {
			return nil, err
		}
		records = append(records, got...)
	}
	return records, nil
}

func decodeYAMLNode(node *yaml.Node) ([]Record, error) {
	root := node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		records := make([]Record, 0, len(root.Content))
		for i, n := range root.Content {
			if n.Kind == yaml.ScalarNode {
				records = append(records, Record{Title: n.Value})
				continue
			}
			var r Record
			if err := n.Decode(&r); err != nil {
				return nil, fmt.Errorf("invalid YAML item %d: %w", i, err)
			}
			records = append(records, r)
		}
		return records, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == "items" {
				var doc document
				if err := root.Decode(&doc); err != nil {
					return nil, fmt.Errorf("invalid YAML items: %w", err)
				}
				return doc.Items, nil
			}
		}
		var r Record
		if err := root.Decode(&r); err != nil {
			return nil, fmt.Errorf("invalid YAML item: %w", err)
		}
		return []Record{r}, nil
	case yaml.ScalarNode:
		return loadLines(strings.Split(root.Value, "\n")), nil
	default:
		return nil, fmt.Errorf("unsupported YAML document")
	}
}

func loadTOML(input string) ([]Record, error) {
	var doc document
	if err := toml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return doc.Items, nil
}

func loadLines(lines []string) []Record {
	var records []Record
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		records = append(records, Record{Title: line})
	}
	return records
}

// isLikelyNDJSON requires a majority of non-empty lines to start with '{'.
func isLikelyNDJSON(lines []string) bool {
	jsonCount, nonEmpty := 0, 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		if strings.HasPrefix(trimmed, "{") {
			jsonCount++
		}
	}
	return nonEmpty > 1 && jsonCount > nonEmpty/2
}

// isLikelyTOML looks for table headers or a majority of key = value lines.
// A JSON array like [1, 2] never matches the header pattern.
func isLikelyTOML(lines []string) bool {
	sections, pairs, nonEmpty := 0, 0, 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmpty++
		if tomlSection.MatchString(line) {
			sections++
		}
		if tomlKeyValue.MatchString(line) {
			pairs++
		}
	}
	return sections > 0 || (nonEmpty > 0 && pairs > nonEmpty/2)
}

// isLikelyYAML is true when the input starts a list or a mapping; anything
// else is read as plain lines.
func isLikelyYAML(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "- ") {
			return true
		}
		key, _, found := strings.Cut(trimmed, ":")
		return found && !strings.Contains(key, " ")
	}
	return false
}
