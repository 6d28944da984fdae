package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
	"go.yaml.in/yaml/v3"
)

// ErrMalformedRecord is returned when a package-list record cannot be
// decoded or does not satisfy the package-list schema.
var ErrMalformedRecord = zerr.New("malformed record")

// ParseList decodes and validates a package-list record. JSON and YAML are
// both accepted.
func ParseList(data []byte) (*PackageList, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		err := fmt.Errorf("%w: %s", ErrMalformedRecord, strings.Join(msgs, "; "))
		return nil, zerr.With(err, "issues", len(result.Issues))
	}

	var list PackageList
	if isJSON(data) {
		err = json.Unmarshal(data, &list)
	} else {
		err = yaml.Unmarshal(data, &list)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	seen := make(map[string]bool, len(list.Packages))
	for _, pkg := range list.Packages {
		if seen[pkg.Name] {
			err := fmt.Errorf("%w: duplicate package %q in list %q", ErrMalformedRecord, pkg.Name, list.Name)
			return nil, zerr.With(err, "list", list.Name)
		}
		seen[pkg.Name] = true
	}

	return &list, nil
}

// MarshalList renders a package list in the cached record format.
func MarshalList(list *PackageList) ([]byte, error) {
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("marshaling package list %s: %w", list.Name, err)
	}
	return data, nil
}
