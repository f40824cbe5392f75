package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/odvcencio/showref/pkg/object"
)

func initTestRepo(t *testing.T) *Repo {
	t.Helper()
	r, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return r
}

func writeTestCommit(t *testing.T, r *Repo, message string) object.Hash {
	t.Helper()
	h, err := r.Store.WriteCommit(&object.CommitObj{
		Author:    "tester",
		Timestamp: 1700000000,
		Message:   message,
	})
	if err != nil {
		t.Fatalf("WriteCommit: %v", err)
	}
	return h
}

func TestForEachRefYieldsFullNames(t *testing.T) {
	r := initTestRepo(t)
	main := writeTestCommit(t, r, "main")
	feature := writeTestCommit(t, r, "feature")
	if err := r.UpdateRef("refs/heads/main", main); err != nil {
		t.Fatalf("UpdateRef main: %v", err)
	}
	if err := r.UpdateRef("refs/heads/feature/x", feature); err != nil {
		t.Fatalf("UpdateRef feature/x: %v", err)
	}
	if err := r.UpdateRef("refs/tags/v1", main); err != nil {
		t.Fatalf("UpdateRef v1: %v", err)
	}

	got := make(map[string]object.Hash)
	err := r.ForEachRef("", func(name string, target object.Hash) error {
		got[name] = target
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachRef: %v", err)
	}

	want := map[string]object.Hash{
		"refs/heads/main":      main,
		"refs/heads/feature/x": feature,
		"refs/tags/v1":         main,
	}
	if len(got) != len(want) {
		t.Fatalf("ForEachRef yielded %v, want %v", got, want)
	}
	for name, target := range want {
		if got[name] != target {
			t.Fatalf("ForEachRef[%q] = %s, want %s", name, got[name], target)
		}
	}
}

func TestForEachRefScoped(t *testing.T) {
	r := initTestRepo(t)
	h := writeTestCommit(t, r, "c")
	if err := r.UpdateRef("refs/heads/main", h); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}
	if err := r.UpdateRef("refs/tags/v1", h); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}

	var names []string
	err := r.ForEachRef("refs/tags/", func(name string, _ object.Hash) error {
		names = append(names, name)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachRef scoped: %v", err)
	}
	if len(names) != 1 || names[0] != "refs/tags/v1" {
		t.Fatalf("scoped enumeration = %v, want [refs/tags/v1]", names)
	}
}

func TestForEachRefMissingScopeIsEmpty(t *testing.T) {
	r := initTestRepo(t)
	err := r.ForEachRef("refs/remotes/", func(name string, _ object.Hash) error {
		t.Fatalf("unexpected ref %q", name)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachRef on missing hierarchy: %v", err)
	}
}

func TestForEachRefReportsUnreadableRef(t *testing.T) {
	r := initTestRepo(t)
	h := writeTestCommit(t, r, "c")
	if err := r.UpdateRef("refs/heads/main", h); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}
	// A dangling symlink walks as a ref but fails to read, like a ref
	// deleted between the directory scan and the read.
	broken := filepath.Join(r.GotDir, "refs", "heads", "gone")
	if err := os.Symlink(filepath.Join(r.GotDir, "no-such-target"), broken); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	err := r.ForEachRef("", func(string, object.Hash) error { return nil })
	if err == nil {
		t.Fatalf("ForEachRef with unreadable ref succeeded")
	}
}

func TestForEachRefSkipsLockFiles(t *testing.T) {
	r := initTestRepo(t)
	h := writeTestCommit(t, r, "c")
	if err := r.UpdateRef("refs/heads/main", h); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}
	lock := filepath.Join(r.GotDir, "refs", "heads", "stuck.lock")
	if err := os.WriteFile(lock, []byte(string(h)+"\n"), 0o644); err != nil {
		t.Fatalf("write stale lock: %v", err)
	}

	var names []string
	err := r.ForEachRef("", func(name string, _ object.Hash) error {
		names = append(names, name)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachRef: %v", err)
	}
	if len(names) != 1 || names[0] != "refs/heads/main" {
		t.Fatalf("ForEachRef = %v, want stale lockfile skipped", names)
	}
}

func TestForEachRefStopsOnCallbackError(t *testing.T) {
	r := initTestRepo(t)
	h := writeTestCommit(t, r, "c")
	for _, name := range []string{"refs/heads/a", "refs/heads/b"} {
		if err := r.UpdateRef(name, h); err != nil {
			t.Fatalf("UpdateRef %s: %v", name, err)
		}
	}

	sentinel := errors.New("stop")
	calls := 0
	err := r.ForEachRef("", func(string, object.Hash) error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("ForEachRef = %v, want callback error", err)
	}
	if calls != 1 {
		t.Fatalf("callback ran %d times after error, want 1", calls)
	}
}

func TestResolveRefSymbolicHead(t *testing.T) {
	r := initTestRepo(t)
	h := writeTestCommit(t, r, "c")
	if err := r.UpdateRef("refs/heads/main", h); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}

	got, err := r.ResolveRef("HEAD")
	if err != nil {
		t.Fatalf("ResolveRef(HEAD): %v", err)
	}
	if got != h {
		t.Fatalf("ResolveRef(HEAD) = %s, want %s", got, h)
	}
}

func TestResolveRefDetachedHead(t *testing.T) {
	r := initTestRepo(t)
	h := writeTestCommit(t, r, "c")
	if err := os.WriteFile(filepath.Join(r.GotDir, "HEAD"), []byte(string(h)+"\n"), 0o644); err != nil {
		t.Fatalf("write detached HEAD: %v", err)
	}

	got, err := r.ResolveRef("HEAD")
	if err != nil {
		t.Fatalf("ResolveRef(HEAD): %v", err)
	}
	if got != h {
		t.Fatalf("ResolveRef(HEAD) = %s, want %s", got, h)
	}
}

func TestResolveRefMissing(t *testing.T) {
	r := initTestRepo(t)
	if _, err := r.ResolveRef("refs/heads/nope"); err == nil {
		t.Fatalf("ResolveRef of missing ref succeeded")
	}
}

func TestUpdateRefCASMismatch(t *testing.T) {
	r := initTestRepo(t)
	h1 := writeTestCommit(t, r, "one")
	h2 := writeTestCommit(t, r, "two")
	if err := r.UpdateRef("refs/heads/main", h1); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}

	err := r.UpdateRefCAS("refs/heads/main", h2, "0000")
	if !errors.Is(err, ErrRefCASMismatch) {
		t.Fatalf("UpdateRefCAS = %v, want ErrRefCASMismatch", err)
	}

	got, err := r.ResolveRef("refs/heads/main")
	if err != nil {
		t.Fatalf("ResolveRef: %v", err)
	}
	if got != h1 {
		t.Fatalf("ref moved to %s despite CAS mismatch, want %s", got, h1)
	}
}

func TestOpenFindsRepoFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	r, err := Open(sub)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if r.RootDir != dir {
		t.Fatalf("Open root = %q, want %q", r.RootDir, dir)
	}
}
