package pofile

import (
	"strconv"
	"strings"
)

// TokenKind identifies the kind of a lexical token.
type TokenKind int

const (
	// TokenEOF terminates every token stream produced by Tokenize.
	TokenEOF TokenKind = iota
	// TokenMsgctxt, TokenMsgid, TokenMsgidPlural and TokenMsgstr are the
	// four statement keywords of the PO format.
	TokenMsgctxt
	TokenMsgid
	TokenMsgidPlural
	TokenMsgstr
	// TokenPluralIndex is a "[N]" plural form index following msgstr.
	TokenPluralIndex
	// TokenString is a double-quoted string literal, escape-decoded.
	TokenString
	// TokenComment is a "#" comment line; Comment carries its subtype.
	TokenComment
)

// String returns the keyword or a symbolic name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenMsgctxt:
		return "msgctxt"
	case TokenMsgid:
		return "msgid"
	case TokenMsgidPlural:
		return "msgid_plural"
	case TokenMsgstr:
		return "msgstr"
	case TokenPluralIndex:
		return "plural form index"
	case TokenString:
		return "string"
	case TokenComment:
		return "comment"
	}
	return "unknown"
}

// CommentKind identifies the subtype of a comment token.
type CommentKind int

const (
	// CommentTranslator is a plain "#" translator comment.
	CommentTranslator CommentKind = iota
	// CommentExtracted is a "#." extracted (automatic) comment.
	CommentExtracted
	// CommentReference is a "#:" source reference comment.
	CommentReference
	// CommentFlag is a "#," flag list comment.
	CommentFlag
	// CommentPreviousMsgID is a "#|" previous-msgid comment.
	CommentPreviousMsgID
)

// Token is a single lexical unit of PO source text.
type Token struct {
	Kind TokenKind
	// Line is the 1-based source line the token starts on. Error
	// messages report it verbatim.
	Line int
	// Text is the decoded string literal or the comment body.
	Text string
	// Index is the plural form index for TokenPluralIndex.
	Index int
	// Comment is the comment subtype for TokenComment.
	Comment CommentKind
	// Obsolete marks tokens scanned from a "#~" line.
	Obsolete bool
}

var keywords = map[string]TokenKind{
	"msgctxt":      TokenMsgctxt,
	"msgid":        TokenMsgid,
	"msgid_plural": TokenMsgidPlural,
	"msgstr":       TokenMsgstr,
}

// Tokenize scans PO source text into a flat token sequence ending with a
// TokenEOF token. It stops at the first lexical error and returns it as a
// *SyntaxError carrying the offending line.
//
// Adjacent string literals are emitted as separate tokens; joining the
// runs is the parser's job, since the merge boundary depends on which
// keyword owns the run.
func Tokenize(text string) ([]Token, error) {
	lines := strings.Split(text, "\n")
	tokens := make([]Token, 0, len(lines))
	for i, raw := range lines {
		if err := scanLine(raw, i+1, false, &tokens); err != nil {
			return nil, err
		}
	}
	tokens = append(tokens, Token{Kind: TokenEOF, Line: len(lines)})
	return tokens, nil
}

// scanLine tokenizes one source line. A leading "#~" marks the remainder
// obsolete and re-scans it as a normal statement.
func scanLine(s string, line int, obsolete bool, tokens *[]Token) error {
	s = strings.TrimSuffix(s, "\r")
	pos := skipBlank(s, 0)
	if pos == len(s) {
		return nil
	}

	if s[pos] == '#' {
		rest := s[pos+1:]
		if strings.HasPrefix(rest, "~") {
			return scanLine(rest[1:], line, true, tokens)
		}
		kind, body := splitComment(rest)
		*tokens = append(*tokens, Token{
			Kind:     TokenComment,
			Line:     line,
			Text:     body,
			Comment:  kind,
			Obsolete: obsolete,
		})
		return nil
	}

	for pos < len(s) {
		switch c := s[pos]; {
		case c == ' ' || c == '\t':
			pos++

		case c == '"':
			text, next, err := scanString(s, pos, line)
			if err != nil {
				return err
			}
			*tokens = append(*tokens, Token{Kind: TokenString, Line: line, Text: text, Obsolete: obsolete})
			pos = next

		case c == '[':
			index, next, err := scanPluralIndex(s, pos, line)
			if err != nil {
				return err
			}
			*tokens = append(*tokens, Token{Kind: TokenPluralIndex, Line: line, Index: index, Obsolete: obsolete})
			pos = next

		case isWordByte(c):
			word := scanWord(s, pos)
			kind, ok := keywords[word]
			if !ok {
				return syntaxErrorf(line, "unknown keyword '%s'", word)
			}
			pos += len(word)
			// Each keyword needs whitespace before its argument; only a
			// plural index bracket may follow msgstr directly.
			if !(kind == TokenMsgstr && pos < len(s) && s[pos] == '[') {
				if pos == len(s) || (s[pos] != ' ' && s[pos] != '\t') {
					return syntaxErrorf(line, "no space after '%s'", word)
				}
			}
			*tokens = append(*tokens, Token{Kind: kind, Line: line, Text: word, Obsolete: obsolete})

		default:
			return syntaxErrorf(line, "unknown keyword '%s'", chunkAt(s, pos))
		}
	}
	return nil
}

// scanString decodes a double-quoted literal starting at s[pos]. Strings
// must terminate on the line they start on; the recognized escapes are
// \" \\ \n \t.
func scanString(s string, pos, line int) (string, int, error) {
	var b strings.Builder
	i := pos + 1
	for i < len(s) {
		switch c := s[i]; c {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			if i+1 == len(s) {
				return "", 0, syntaxErrorf(line, "unterminated string")
			}
			switch e := s[i+1]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				return "", 0, syntaxErrorf(line, `invalid escape sequence '\%c'`, e)
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, syntaxErrorf(line, "unterminated string")
}

// scanPluralIndex reads a "[<digits>]" bracket starting at s[pos].
func scanPluralIndex(s string, pos, line int) (int, int, error) {
	i := pos + 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == pos+1 || i == len(s) || s[i] != ']' {
		return 0, 0, syntaxErrorf(line, "invalid plural form index")
	}
	index, err := strconv.Atoi(s[pos+1 : i])
	if err != nil {
		return 0, 0, syntaxErrorf(line, "invalid plural form index")
	}
	return index, i + 1, nil
}

// splitComment classifies a comment body (the text after "#") by its
// sigil and strips the sigil plus surrounding whitespace.
func splitComment(rest string) (CommentKind, string) {
	if rest == "" {
		return CommentTranslator, ""
	}
	switch rest[0] {
	case '.':
		return CommentExtracted, strings.TrimSpace(rest[1:])
	case ':':
		return CommentReference, strings.TrimSpace(rest[1:])
	case ',':
		return CommentFlag, strings.TrimSpace(rest[1:])
	case '|':
		return CommentPreviousMsgID, strings.TrimSpace(rest[1:])
	}
	// Translator comment: strip at most one leading space.
	return CommentTranslator, strings.TrimPrefix(rest, " ")
}

func skipBlank(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func scanWord(s string, pos int) string {
	i := pos
	for i < len(s) && (isWordByte(s[i]) || s[i] >= '0' && s[i] <= '9') {
		i++
	}
	return s[pos:i]
}

// chunkAt returns the run of non-blank bytes at pos, for error messages.
func chunkAt(s string, pos int) string {
	i := pos
	for i < len(s) && s[i] != ' ' && s[i] != '\t' {
		i++
	}
	return s[pos:i]
}
