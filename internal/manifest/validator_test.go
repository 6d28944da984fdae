package manifest

import (
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	result, err := Validate([]byte(coreListJSON))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
		t.Fatal("expected valid record")
	}
}

func TestValidate_ReportsIssuePath(t *testing.T) {
	result, err := Validate([]byte(`{"name": "core", "packages": [{"name": "a", "version": 1}]}`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid record")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/packages/0/version" && issue.Keyword == "type" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a type issue at /packages/0/version, got %+v", result.Issues)
	}
}

func TestValidate_UndecodableInput(t *testing.T) {
	if _, err := Validate([]byte(`{"name": `)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}

func TestIsJSON(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`{"a": 1}`, true},
		{"\n\t {}", true},
		{"[]", true},
		{"name: core", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isJSON([]byte(tt.in)); got != tt.want {
			t.Errorf("isJSON(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidationIssueString(t *testing.T) {
	issue := ValidationIssue{Path: "/name", Message: "missing"}
	if issue.String() != "/name: missing" {
		t.Errorf("String() = %q", issue.String())
	}
	if (ValidationIssue{Message: "bad"}).String() != "bad" {
		t.Error("issue without path should render message only")
	}
}
