package object

import (
	"strings"
	"testing"
)

func TestPeelNonTagDoesNotPeel(t *testing.T) {
	s := NewStore(t.TempDir())
	h, err := s.WriteBlob(&Blob{Data: []byte("just a blob")})
	if err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}
	if _, ok := s.Peel(h); ok {
		t.Fatalf("Peel(blob) = ok, want not ok")
	}
}

func TestPeelTagToCommit(t *testing.T) {
	s := NewStore(t.TempDir())
	commit, err := s.WriteCommit(&CommitObj{Author: "tester", Timestamp: 1, Message: "m"})
	if err != nil {
		t.Fatalf("WriteCommit: %v", err)
	}
	tag, err := s.WriteTag(&TagObj{TargetHash: commit, Data: []byte("tag v1\n")})
	if err != nil {
		t.Fatalf("WriteTag: %v", err)
	}

	peeled, ok := s.Peel(tag)
	if !ok {
		t.Fatalf("Peel(tag) = not ok")
	}
	if peeled != commit {
		t.Fatalf("Peel(tag) = %s, want %s", peeled, commit)
	}
}

func TestPeelNestedTagChain(t *testing.T) {
	s := NewStore(t.TempDir())
	blob, err := s.WriteBlob(&Blob{Data: []byte("terminal")})
	if err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}
	inner, err := s.WriteTag(&TagObj{TargetHash: blob, Data: []byte("inner\n")})
	if err != nil {
		t.Fatalf("WriteTag inner: %v", err)
	}
	outer, err := s.WriteTag(&TagObj{TargetHash: inner, Data: []byte("outer\n")})
	if err != nil {
		t.Fatalf("WriteTag outer: %v", err)
	}

	peeled, ok := s.Peel(outer)
	if !ok || peeled != blob {
		t.Fatalf("Peel(outer) = %s, %v; want %s, true", peeled, ok, blob)
	}
}

func TestPeelBrokenChainDoesNotPeel(t *testing.T) {
	s := NewStore(t.TempDir())
	missing := Hash("ab" + strings.Repeat("12", 31))
	tag, err := s.WriteTag(&TagObj{TargetHash: missing, Data: []byte("dangling\n")})
	if err != nil {
		t.Fatalf("WriteTag: %v", err)
	}
	if _, ok := s.Peel(tag); ok {
		t.Fatalf("Peel(tag with missing target) = ok, want not ok")
	}
}
