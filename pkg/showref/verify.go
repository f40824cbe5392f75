package showref

import (
	"io"
	"strings"
)

// Verify resolves each name exactly and reports it. Only fully qualified
// names ("refs/..." or "HEAD") are eligible. A name that is not eligible
// or does not resolve is fatal (InvalidRefError) unless Options.Quiet is
// set, in which case verification stops at the first miss and reports
// ErrNoMatch without checking later names. An empty name list is
// ErrVerifyUsage.
func Verify(refs RefStore, objects ObjectStore, opts Options, names []string, out io.Writer) error {
	if len(names) == 0 {
		return ErrVerifyUsage
	}

	for _, name := range names {
		if strings.HasPrefix(name, "refs/") || name == "HEAD" {
			if target, err := refs.ResolveRef(name); err == nil {
				if err := showOne(objects, opts, out, name, target); err != nil {
					return err
				}
				continue
			}
		}
		if opts.Quiet {
			return ErrNoMatch
		}
		return &InvalidRefError{Name: name}
	}
	return nil
}
