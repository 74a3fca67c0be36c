package main

import (
	"errors"
	"strings"
	"testing"

	po "github.com/epilgrim/gettext/pofile"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		width   int
		want    string
	}{
		{
			name:    "clamps below zero",
			percent: -10,
			width:   4,
			want:    colorRed + "░░░░" + colorReset + "   0%",
		},
		{
			name:    "mid range uses yellow",
			percent: 50,
			width:   4,
			want:    colorYellow + "██░░" + colorReset + "  50%",
		},
		{
			name:    "clamps above hundred",
			percent: 120,
			width:   4,
			want:    colorGreen + "████" + colorReset + " 100%",
		},
	}

	for _, tc := range tests {
		if got := progressBar(tc.percent, tc.width); got != tc.want {
			t.Fatalf("%s: progressBar() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDiagnostic(t *testing.T) {
	serr := &po.SyntaxError{Line: 7, Reason: "expected msgstr"}
	if got := diagnostic("po/ru.po", serr); got != "po/ru.po:7: expected msgstr" {
		t.Fatalf("diagnostic = %q", got)
	}

	plain := errors.New("permission denied")
	if got := diagnostic("po/ru.po", plain); got != "po/ru.po: permission denied" {
		t.Fatalf("diagnostic = %q", got)
	}
}

func TestFormatEntry(t *testing.T) {
	entries, err := po.ParseString("#: app.go:3\n#, fuzzy\nmsgctxt \"menu\"\nmsgid \"Open\"\nmsgstr \"Otkryt\"\n")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}

	got := formatEntry(entries[0])
	for _, want := range []string{
		"msgctxt \"menu\"",
		"msgid   \"Open\"",
		"msgstr  \"Otkryt\"",
		"(fuzzy)",
		"refs: app.go:3",
		"flags: fuzzy",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("formatEntry output missing %q:\n%s", want, got)
		}
	}
}

func TestFormatEntryPlural(t *testing.T) {
	entries, err := po.ParseString("msgid \"one\"\nmsgid_plural \"many\"\nmsgstr[0] \"1\"\nmsgstr[1] \"N\"\n")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}

	got := formatEntry(entries[0])
	for _, want := range []string{
		"plural  \"many\"",
		"msgstr[0] \"1\"",
		"msgstr[1] \"N\"",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("formatEntry output missing %q:\n%s", want, got)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName("po/ru.po"); got != "po/ru.po" {
		t.Fatalf("displayName = %q", got)
	}

	long := strings.Repeat("a/", 20) + "ru.po"
	got := displayName(long)
	if !strings.HasPrefix(got, "…") || !strings.HasSuffix(got, "ru.po") {
		t.Fatalf("displayName = %q", got)
	}
}
