// Package pofile implements parsing of PO/POT translation catalogs
// following the GNU gettext format specification.
//
// The pipeline has two stages: Tokenize scans raw text into a token
// sequence, and Parse assembles the tokens into entries. Both stages are
// pure functions of their input, report the first error they hit as a
// *SyntaxError with a 1-based line number, and keep no state between
// calls, so concurrent callers need no coordination.
package pofile

import "os"

// ParseString parses PO source text into catalog entries, preserving
// source order. Syntax errors from either stage are *SyntaxError values.
func ParseString(text string) ([]Entry, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// ParseFile reads and parses a PO/POT file from disk. Read errors are
// returned verbatim (e.g. *fs.PathError), never as *SyntaxError, so
// callers can tell I/O failures from syntax failures with errors.As.
func ParseFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data))
}

// MustParseString is like ParseString but panics on error. Intended for
// parsing trusted, embedded catalogs at startup.
func MustParseString(text string) []Entry {
	entries, err := ParseString(text)
	if err != nil {
		panic(err)
	}
	return entries
}

// MustParseFile is like ParseFile but panics on error.
func MustParseFile(path string) []Entry {
	entries, err := ParseFile(path)
	if err != nil {
		panic(err)
	}
	return entries
}
