package pofile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestParseStringChainsBothStages(t *testing.T) {
	entries, err := ParseString("msgid \"foo\"\nmsgstr \"bar\"\n")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID() != "foo" {
		t.Fatalf("entries = %#v", entries)
	}

	// A lexical error short-circuits before the parser runs.
	_, err = ParseString("bogus\n")
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *SyntaxError", err)
	}
	if serr.Line != 1 || serr.Reason != "unknown keyword 'bogus'" {
		t.Fatalf("err = (%d, %q)", serr.Line, serr.Reason)
	}

	// A grammar error surfaces with the same error shape.
	_, err = ParseString("msgid \"a\"\n")
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *SyntaxError", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ru.po")
	content := "msgid \"\"\nmsgstr \"Language: ru\\n\"\n\nmsgid \"hello\"\nmsgstr \"privet\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if got := entries[1].(*Translation).MsgStr; got != "privet" {
		t.Fatalf("msgstr = %q, want privet", got)
	}
}

func TestParseFileReadErrorPassesThrough(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.po"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}

	var perr *fs.PathError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *fs.PathError", err)
	}
	var serr *SyntaxError
	if errors.As(err, &serr) {
		t.Fatal("read errors must not be reported as syntax errors")
	}
}

func TestMustParseString(t *testing.T) {
	entries := MustParseString("msgid \"a\"\nmsgstr \"b\"\n")
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on malformed input")
		}
		if _, ok := r.(*SyntaxError); !ok {
			t.Fatalf("panic value = %#v, want *SyntaxError", r)
		}
	}()
	MustParseString("msgid\n")
}
