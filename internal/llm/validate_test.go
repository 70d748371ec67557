package llm

import (
	"context"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"name":"Alice","age":10,"grade":"A"}`, false},
		{"valid without optional", `{"name":"Bob","age":8}`, false},
		{"missing required", `{"name":"Charlie"}`, true},
		{"wrong type", `{"name":"Dave","age":"ten"}`, true},
		{"invalid enum", `{"name":"Eve","age":9,"grade":"D"}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJSON(testSchema(), []byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateJSON_NilSchema(t *testing.T) {
	out, err := ValidateJSON(nil, []byte(`whatever`))
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
	if string(out) != "whatever" {
		t.Fatalf("nil schema must return the reply untouched, got %q", out)
	}
}

func TestValidateJSON_StripsWrapping(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"fenced", "```json\n{\"name\":\"Ana\",\"age\":7}\n```"},
		{"prose around", "Here you go: {\"name\":\"Ana\",\"age\":7} Hope it helps."},
		{"bare", `  {"name":"Ana","age":7}  `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ValidateJSON(testSchema(), []byte(tt.raw))
			if err != nil {
				t.Fatalf("ValidateJSON() error = %v", err)
			}
			if string(out) != `{"name":"Ana","age":7}` {
				t.Fatalf("payload = %q", out)
			}
		})
	}
}

func TestValidateJSON_InvalidKeepsOriginalContent(t *testing.T) {
	raw := "```json\n{\"name\":\"Ana\"}\n```"
	_, err := ValidateJSON(testSchema(), []byte(raw))
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if string(invErr.Content) != raw {
		t.Fatalf("Content = %q, want the unmodified reply", invErr.Content)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`no json here`, `no json here`},
		{`[1, 2] and {"a":1}`, `[1, 2]`},
		{`{"a":[1]} trailing`, `{"a":[1]}`},
		{`{ unclosed`, `{ unclosed`},
	}
	for _, tt := range tests {
		if got := ExtractJSON(tt.in); got != tt.want {
			t.Errorf("ExtractJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func cachedSchemas() int {
	n := 0
	schemaCache.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

func TestCompiledSchema_KeyedByDefinition(t *testing.T) {
	loose := &Schema{Name: "shared-name", Definition: map[string]any{"type": "object"}}
	strict := &Schema{Name: "shared-name", Definition: map[string]any{
		"type":     "object",
		"required": []any{"id"},
	}}

	if _, err := ValidateJSON(loose, []byte(`{}`)); err != nil {
		t.Fatalf("loose schema rejected {}: %v", err)
	}
	if _, err := ValidateJSON(strict, []byte(`{}`)); err == nil {
		t.Fatal("strict schema accepted {}: cache returned the loose schema")
	}

	before := cachedSchemas()
	again := &Schema{Name: "other-name", Definition: map[string]any{"type": "object"}}
	if _, err := ValidateJSON(again, []byte(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after := cachedSchemas(); after != before {
		t.Fatalf("identical definition compiled twice: %d -> %d cache entries", before, after)
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: `{"name":"Zoe"}`})
	_, err := mock.Generate(context.Background(), Request{Schema: testSchema()})
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
