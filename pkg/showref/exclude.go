package showref

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/odvcencio/showref/pkg/object"
)

// lineAction classifies one candidate input line.
type lineAction int

const (
	emitLine lineAction = iota // ref does not exist locally, pass it through
	skipLine                   // filtered silently (pattern mismatch or existing ref)
	warnLine                   // malformed ref name, warn and continue
)

// ExcludeExisting reads candidate ref descriptor lines from in and writes
// back, verbatim, every line naming a ref that does not already exist
// locally. Lines look like "<anything> <refname>" or "<refname>", either
// optionally suffixed with the peeled marker "^{}". When pattern is
// non-empty, only lines whose ref name starts with it are considered; the
// rest are dropped silently. Malformed ref names are warned about on errw
// and skipped. Malformed input never aborts the stream; the filter always
// consumes its whole input.
//
// The set of existing refs is built once, by a full enumeration, before
// the first input line is read. Unlike the fixed 1024-byte line buffer of
// the classic tool, lines of arbitrary length are supported.
func ExcludeExisting(refs RefStore, pattern string, in io.Reader, out, errw io.Writer) error {
	existing := make(map[string]struct{})
	err := refs.ForEachRef("", func(name string, _ object.Hash) error {
		existing[name] = struct{}{}
		return nil
	})
	if err != nil {
		return fmt.Errorf("enumerate existing refs: %w", err)
	}

	reader := bufio.NewReader(in)
	for {
		raw, readErr := reader.ReadString('\n')
		if raw == "" && readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return fmt.Errorf("read candidate refs: %w", readErr)
		}

		line := strings.TrimSuffix(raw, "\n")
		action, token := classifyLine(refs, line, pattern, existing)
		switch action {
		case emitLine:
			fmt.Fprintf(out, "%s\n", line)
		case warnLine:
			fmt.Fprintf(errw, "warning: ref '%s' ignored\n", token)
		}

		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return fmt.Errorf("read candidate refs: %w", readErr)
		}
	}
}

// classifyLine applies the per-line filter steps: strip a trailing peeled
// marker, extract the ref-name token after the last whitespace, apply the
// optional literal prefix pattern, validate the token, and test it against
// the existing-ref set. The returned token is the extracted ref name.
func classifyLine(refs RefStore, line, pattern string, existing map[string]struct{}) (lineAction, string) {
	name := strings.TrimSuffix(line, "^{}")

	i := len(name)
	for i > 0 && !isSpace(name[i-1]) {
		i--
	}
	token := name[i:]

	if pattern != "" && !strings.HasPrefix(token, pattern) {
		return skipLine, token
	}
	if err := refs.CheckRefFormat(token); err != nil {
		return warnLine, token
	}
	if _, ok := existing[token]; ok {
		return skipLine, token
	}
	return emitLine, token
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
