package domain

import (
	"path"
	"strings"
)

// PhotoSet is the ordered collection of stored image paths belonging to one
// entity, serialized in the database as a comma-joined string. The canonical
// empty form is ""; the legacy "/" sentinel is accepted on parse only.
type PhotoSet []string

// ParsePhotoSet splits a stored comma-joined path list. "" and "/" both mean
// an empty set.
func ParsePhotoSet(s string) PhotoSet {
	s = strings.TrimSpace(s)
	if s == "" || s == "/" {
		return nil
	}
	parts := strings.Split(s, ",")
	set := make(PhotoSet, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" && p != "/" {
			set = append(set, p)
		}
	}
	return set
}

// String serializes the set back to its stored form. An empty set is "".
func (s PhotoSet) String() string {
	return strings.Join(s, ",")
}

// Filenames returns the basename of every stored path, in order.
func (s PhotoSet) Filenames() []string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = path.Base(p)
	}
	return names
}

// Empty reports whether the set holds no paths.
func (s PhotoSet) Empty() bool { return len(s) == 0 }
