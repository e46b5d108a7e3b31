package manifest

import "strings"

// File names looked up inside a unit directory.
const (
	DescriptorFile = "SKILL.md"
	PackageFile    = "package.json"
)

// AllowedToolsKey is the only frontmatter key parsed as a list.
const AllowedToolsKey = "allowed-tools"

// FieldKind discriminates the two shapes a frontmatter value can take.
type FieldKind int

const (
	StringKind FieldKind = iota
	ListKind
)

// Field is a frontmatter value: either a single string or an ordered list of
// strings. Construct with StringField or ListField.
type Field struct {
	kind  FieldKind
	value string
	items []string
}

// StringField returns a string-valued Field.
func StringField(s string) Field {
	return Field{kind: StringKind, value: s}
}

// ListField returns a list-valued Field.
func ListField(items ...string) Field {
	return Field{kind: ListKind, items: append([]string(nil), items...)}
}

// Kind reports which variant f holds.
func (f Field) Kind() FieldKind { return f.kind }

// IsList reports whether f is list-valued.
func (f Field) IsList() bool { return f.kind == ListKind }

// String returns the string value. A list is joined with single spaces.
func (f Field) String() string {
	if f.kind == ListKind {
		return strings.Join(f.items, " ")
	}
	return f.value
}

// List returns the list value. A string is returned as a one-element list.
func (f Field) List() []string {
	if f.kind == ListKind {
		return append([]string(nil), f.items...)
	}
	return []string{f.value}
}

// Metadata maps frontmatter keys to their values.
type Metadata map[string]Field

// Get returns the field stored under key.
func (m Metadata) Get(key string) (Field, bool) {
	f, ok := m[key]
	return f, ok
}

// String returns the field under key coerced to a string.
func (m Metadata) String(key string) (string, bool) {
	f, ok := m[key]
	if !ok {
		return "", false
	}
	return f.String(), true
}

// List returns the field under key coerced to a list.
func (m Metadata) List(key string) ([]string, bool) {
	f, ok := m[key]
	if !ok {
		return nil, false
	}
	return f.List(), true
}
