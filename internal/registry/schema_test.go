package registry

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantValid bool
		wantPath  string
	}{
		{"full registry", testRegistry, true, ""},
		{"minimal registry", `{"components": {}}`, true, ""},
		{"missing components", `{"name": "x"}`, false, ""},
		{"component without files", `{"components": {"a": {"name": "a"}}}`, false, "/components/a"},
		{"file without path", `{"components": {"a": {"name": "a", "files": [{"name": "a.tsx"}]}}}`, false, "/components/a/files/0"},
		{"dependency range not a string", `{"components": {"a": {"name": "a", "files": [], "dependencies": {"react": 18}}}}`, false, "/components/a/dependencies/react"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", result.Valid, tt.wantValid, result.Issues)
			}
			if tt.wantPath == "" {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %s in %v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if _, err := Validate([]byte(`{"components":`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestDecode(t *testing.T) {
	reg, err := Decode([]byte(testRegistry))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	button := reg.Components["button"]
	if button.Dependencies["class-variance-authority"] != "^0.7.1" {
		t.Errorf("Dependencies = %v", button.Dependencies)
	}
	if strings.Join(button.Variants, ",") != "default,ghost" {
		t.Errorf("Variants = %v", button.Variants)
	}
	if reg.Requirements["react"] != "^18.0.0" {
		t.Errorf("Requirements = %v", reg.Requirements)
	}

	_, err = Decode([]byte(`{"components": []}`))
	if !errors.Is(err, ErrInvalidRegistry) {
		t.Errorf("Decode(array components) error = %v, want ErrInvalidRegistry", err)
	}
}

func TestSchemaCompiles(t *testing.T) {
	if _, err := getSchema(); err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
}
