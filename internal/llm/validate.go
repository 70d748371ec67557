package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema describes the JSON shape a reply is expected to have.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// compiled schemas keyed by their canonical definition, so two schemas that
// share a Name but differ in shape never collide.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ValidateJSON locates the JSON payload in raw, checks it against schema and
// returns the payload. Models often wrap JSON in a markdown fence or a line
// of prose; both are stripped. A nil schema returns raw untouched.
// Failures are reported as *ErrInvalidResponse carrying the original reply.
func ValidateJSON(schema *Schema, raw []byte) ([]byte, error) {
	if schema == nil {
		return raw, nil
	}

	payload := ExtractJSON(string(raw))
	var parsed any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("%s reply failed validation: %w", schema.Name, err),
		}
	}
	return []byte(payload), nil
}

// ExtractJSON returns the span from the first '{' or '[' to the matching
// last '}' or ']'. Text without either opener comes back trimmed.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	closer := byte('}')
	if text[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(text, closer)
	if end < start {
		return text
	}
	return text[start : end+1]
}

func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	// json.Marshal sorts map keys, which makes the bytes a stable cache key.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	key := string(defBytes)
	if cached, ok := schemaCache.Load(key); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, err := jsonschema.UnmarshalJSON(strings.NewReader(key))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	actual, _ := schemaCache.LoadOrStore(key, compiled)
	return actual.(*jsonschema.Schema), nil
}
