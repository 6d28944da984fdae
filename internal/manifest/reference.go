package manifest

import "strings"

// Separator splits the list and package segments of a Reference.
const Separator = "/"

// Reference addresses a package as "<list>/<package>".
type Reference string

// NewReference joins a list name and a package name.
func NewReference(list, name string) Reference {
	return Reference(list + Separator + name)
}

// Split returns the list and package segments. ok is false unless the
// reference has exactly one separator with non-empty segments on both sides.
func (r Reference) Split() (list, name string, ok bool) {
	list, name, found := strings.Cut(string(r), Separator)
	if !found || list == "" || name == "" || strings.Contains(name, Separator) {
		return "", "", false
	}
	return list, name, true
}

// Valid reports whether the reference is well-formed.
func (r Reference) Valid() bool {
	_, _, ok := r.Split()
	return ok
}

func (r Reference) String() string { return string(r) }

// ParseReferences converts newline-delimited text into references, trimming
// whitespace and dropping blank lines and duplicates. First-seen order wins.
func ParseReferences(text string) []Reference {
	seen := make(map[Reference]bool)
	var refs []Reference
	for _, line := range strings.Split(text, "\n") {
		ref := Reference(strings.TrimSpace(line))
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	return refs
}

// JoinReferences renders references as newline-delimited text, dropping
// blanks and duplicates.
func JoinReferences(refs []Reference) string {
	seen := make(map[Reference]bool, len(refs))
	lines := make([]string, 0, len(refs))
	for _, ref := range refs {
		ref = Reference(strings.TrimSpace(string(ref)))
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		lines = append(lines, string(ref))
	}
	return strings.Join(lines, "\n")
}
