// Package showref lists, verifies, and filters the named refs of a
// repository. It is read-only: refs and objects are pulled from the
// storage collaborators and never mutated.
package showref

import (
	"fmt"
	"io"

	"github.com/odvcencio/showref/pkg/object"
)

// RefStore enumerates, resolves, and validates named refs.
type RefStore interface {
	// ForEachRef invokes fn once per ref, full name plus target hash, in
	// the store's own enumeration order. A non-empty prefix such as
	// "refs/heads/" scopes the enumeration.
	ForEachRef(prefix string, fn func(name string, target object.Hash) error) error
	// ResolveRef resolves a ref name ("HEAD" or "refs/...") to a hash.
	ResolveRef(name string) (object.Hash, error)
	// CheckRefFormat reports whether name is a well-formed ref name.
	CheckRefFormat(name string) error
}

// ObjectStore answers existence and display questions about objects.
type ObjectStore interface {
	// Has reports whether the object exists.
	Has(h object.Hash) bool
	// UniqueAbbrev returns the display form of h using at least n digits,
	// or the full hash when n <= 0.
	UniqueAbbrev(h object.Hash, n int) string
	// Peel resolves a tag chain to its first non-tag object. ok is false
	// when h does not peel.
	Peel(h object.Hash) (peeled object.Hash, ok bool)
}

// Options is the immutable per-invocation configuration shared by the
// reporting modes.
type Options struct {
	Quiet       bool // suppress stdout, signal via return value only
	HashOnly    bool // print the hash without the ref name
	Abbrev      int  // abbreviation digit count; 0 means full hash
	Dereference bool // additionally print peeled tag targets
	ShowHead    bool // include the HEAD pseudo-ref
	HeadsOnly   bool // restrict enumeration to refs/heads/
	TagsOnly    bool // restrict enumeration to refs/tags/
}

// showOne validates and prints a single resolved ref. The existence check
// runs even under quiet, so corruption is detected regardless of output
// mode.
func showOne(objects ObjectStore, opts Options, out io.Writer, name string, target object.Hash) error {
	if !objects.Has(target) {
		return &BadRefError{Name: name, Target: target}
	}
	if opts.Quiet {
		return nil
	}

	hex := objects.UniqueAbbrev(target, opts.Abbrev)
	if opts.HashOnly {
		fmt.Fprintf(out, "%s\n", hex)
	} else {
		fmt.Fprintf(out, "%s %s\n", hex, name)
	}

	if !opts.Dereference {
		return nil
	}
	if peeled, ok := objects.Peel(target); ok {
		fmt.Fprintf(out, "%s %s^{}\n", objects.UniqueAbbrev(peeled, opts.Abbrev), name)
	}
	return nil
}

// Show enumerates refs, prints those passing the pattern filter, and
// returns ErrNoMatch when nothing matched. The HEAD pseudo-ref is
// considered first when Options.ShowHead is set; enumeration is scoped to
// refs/heads/ and/or refs/tags/ when the corresponding options are set.
func Show(refs RefStore, objects ObjectStore, opts Options, patterns []string, out io.Writer) error {
	found := 0
	emit := func(name string, target object.Hash) error {
		if !Match(name, patterns, opts.ShowHead) {
			return nil
		}
		found++
		return showOne(objects, opts, out, name, target)
	}

	if opts.ShowHead {
		if head, err := refs.ResolveRef("HEAD"); err == nil {
			if err := emit("HEAD", head); err != nil {
				return err
			}
		}
	}
	if opts.HeadsOnly || opts.TagsOnly {
		if opts.HeadsOnly {
			if err := refs.ForEachRef("refs/heads/", emit); err != nil {
				return err
			}
		}
		if opts.TagsOnly {
			if err := refs.ForEachRef("refs/tags/", emit); err != nil {
				return err
			}
		}
	} else {
		if err := refs.ForEachRef("", emit); err != nil {
			return err
		}
	}

	if found == 0 {
		return ErrNoMatch
	}
	return nil
}
