package repo

import (
	"fmt"
	"strings"
)

// CheckRefFormat reports whether name is a well-formed full ref name,
// following the git-check-ref-format(1) rules: the name must be
// hierarchical (at least two slash-separated components); no component may
// be empty, start with a dot, or end with ".lock"; the name may not
// contain "..", "@{", ASCII control characters, space, or any of
// ~ ^ : ? * [ \, and may not end with "/" or ".".
func CheckRefFormat(name string) error {
	invalid := func() error {
		return fmt.Errorf("invalid ref name %q", name)
	}

	if name == "" || name == "@" {
		return invalid()
	}
	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, ".") {
		return invalid()
	}
	if strings.Contains(name, "..") || strings.Contains(name, "@{") {
		return invalid()
	}

	components := strings.Split(name, "/")
	if len(components) < 2 {
		return invalid()
	}
	for _, c := range components {
		if c == "" {
			return invalid()
		}
		if strings.HasPrefix(c, ".") || strings.HasSuffix(c, ".lock") {
			return invalid()
		}
	}

	for i := 0; i < len(name); i++ {
		b := name[i]
		if b < 0x20 || b == 0x7f {
			return invalid()
		}
		switch b {
		case ' ', '~', '^', ':', '?', '*', '[', '\\':
			return invalid()
		}
	}
	return nil
}

// CheckRefFormat is the method form used through the showref collaborator
// interface.
func (r *Repo) CheckRefFormat(name string) error {
	return CheckRefFormat(name)
}
