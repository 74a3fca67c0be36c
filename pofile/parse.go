package pofile

import "strings"

// Parse consumes a token sequence produced by Tokenize and assembles the
// catalog entries in source order. It stops at the first grammar error
// and returns it as a *SyntaxError.
func Parse(tokens []Token) ([]Entry, error) {
	p := &parser{tokens: tokens}
	var entries []Entry
	for p.peek().Kind != TokenEOF {
		e, err := p.entry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	p.next() // EOF
	if p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		return nil, syntaxErrorf(t.Line, "unexpected %s after end of input", t.Kind)
	}
	return entries, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token { return p.peekAt(0) }

func (p *parser) peekAt(n int) Token {
	if p.pos+n >= len(p.tokens) {
		line := 1
		if len(p.tokens) > 0 {
			line = p.tokens[len(p.tokens)-1].Line
		}
		return Token{Kind: TokenEOF, Line: line}
	}
	return p.tokens[p.pos+n]
}

func (p *parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// entry parses one complete entry: a comment run, an optional msgctxt,
// a msgid, and either a msgstr or a msgid_plural with its msgstr[N]
// forms. Obsolete entries go through the same grammar; their statement
// tokens must all carry the obsolete mark.
func (p *parser) entry() (Entry, error) {
	meta, hadComments, commentLine := p.comments()

	tok := p.peek()
	if tok.Kind == TokenEOF && hadComments {
		return nil, syntaxErrorf(commentLine, "dangling comment")
	}

	hasContext := false
	context := ""
	if tok.Kind == TokenMsgctxt {
		p.next()
		s, ok := p.stringRun(tok.Obsolete)
		if !ok {
			return nil, p.expectedString("msgctxt")
		}
		hasContext, context = true, s
		next := p.peek()
		if next.Kind != TokenMsgid || next.Obsolete != tok.Obsolete {
			return nil, syntaxErrorf(next.Line, "expected msgid")
		}
		tok = next
	}

	if tok.Kind != TokenMsgid {
		return nil, syntaxErrorf(tok.Line, "expected msgid")
	}
	p.next()
	obsolete := tok.Obsolete
	meta.Obsolete = obsolete

	msgid, ok := p.stringRun(obsolete)
	if !ok {
		return nil, p.expectedString("msgid")
	}

	tok = p.peek()
	switch {
	case tok.Kind == TokenMsgstr && tok.Obsolete == obsolete:
		if idx := p.peekAt(1); idx.Kind == TokenPluralIndex {
			return nil, syntaxErrorf(idx.Line, "unexpected 'msgstr[%d]' without msgid_plural", idx.Index)
		}
		p.next()
		msgstr, ok := p.stringRun(obsolete)
		if !ok {
			return nil, p.expectedString("msgstr")
		}
		return &Translation{
			Meta:       meta,
			HasContext: hasContext,
			Context:    context,
			MsgID:      msgid,
			MsgStr:     msgstr,
		}, nil

	case tok.Kind == TokenMsgidPlural && tok.Obsolete == obsolete:
		p.next()
		msgidPlural, ok := p.stringRun(obsolete)
		if !ok {
			return nil, p.expectedString("msgid_plural")
		}
		forms, err := p.pluralForms(obsolete)
		if err != nil {
			return nil, err
		}
		return &PluralTranslation{
			Meta:        meta,
			HasContext:  hasContext,
			Context:     context,
			MsgID:       msgid,
			MsgIDPlural: msgidPlural,
			MsgStr:      forms,
		}, nil
	}

	return nil, syntaxErrorf(tok.Line, "expected msgstr")
}

// pluralForms parses one or more "msgstr[N] <strings>" blocks. Indices
// must be strictly ascending from 0; the error is reported at the line
// of the offending msgstr[N] statement itself.
func (p *parser) pluralForms(obsolete bool) (map[int]string, error) {
	forms := make(map[int]string)
	want := 0
	for {
		tok := p.peek()
		if tok.Kind != TokenMsgstr || tok.Obsolete != obsolete {
			if want == 0 {
				return nil, syntaxErrorf(tok.Line, "expected msgstr")
			}
			return forms, nil
		}
		idx := p.peekAt(1)
		if idx.Kind != TokenPluralIndex || idx.Obsolete != obsolete {
			return nil, syntaxErrorf(tok.Line, "expected plural form index after 'msgstr'")
		}
		if idx.Index != want {
			return nil, syntaxErrorf(idx.Line, "plural form indices must be in order starting at 0")
		}
		p.next()
		p.next()
		s, ok := p.stringRun(obsolete)
		if !ok {
			return nil, syntaxErrorf(p.peek().Line, "expected string after 'msgstr[%d]'", idx.Index)
		}
		forms[idx.Index] = s
		want++
	}
}

// stringRun joins the consecutive string tokens at the cursor in source
// order with no separator. Reports ok=false when the run is empty.
func (p *parser) stringRun(obsolete bool) (string, bool) {
	var b strings.Builder
	n := 0
	for {
		tok := p.peek()
		if tok.Kind != TokenString || tok.Obsolete != obsolete {
			break
		}
		b.WriteString(tok.Text)
		p.next()
		n++
	}
	return b.String(), n > 0
}

// comments consumes the comment run preceding a statement and partitions
// it into the entry metadata by subtype. Returns whether any comment was
// seen and the line of the first one, for dangling-comment reporting.
func (p *parser) comments() (Meta, bool, int) {
	var meta Meta
	had := false
	firstLine := 0
	for {
		tok := p.peek()
		if tok.Kind != TokenComment {
			return meta, had, firstLine
		}
		if !had {
			had, firstLine = true, tok.Line
		}
		p.next()
		switch tok.Comment {
		case CommentTranslator:
			meta.TranslatorComments = append(meta.TranslatorComments, tok.Text)
		case CommentExtracted:
			meta.ExtractedComments = append(meta.ExtractedComments, tok.Text)
		case CommentReference:
			meta.References = append(meta.References, strings.Fields(tok.Text)...)
		case CommentFlag:
			for _, flag := range strings.Split(tok.Text, ",") {
				if flag = strings.TrimSpace(flag); flag != "" {
					meta.Flags = append(meta.Flags, flag)
				}
			}
		case CommentPreviousMsgID:
			if v, ok := strings.CutPrefix(tok.Text, "msgid "); ok {
				meta.PreviousMsgID = decodeQuoted(v)
			}
		}
	}
}

func (p *parser) expectedString(keyword string) *SyntaxError {
	return syntaxErrorf(p.peek().Line, "expected string after '%s'", keyword)
}

// decodeQuoted strips PO-style quoting from a "#| msgid" comment value.
// Previous-msgid bodies are not tokenized, so the few escapes the format
// uses are decoded here.
func decodeQuoted(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
			case 't':
				b.WriteByte('\t')
				i++
			case '\\':
				b.WriteByte('\\')
				i++
			case '"':
				b.WriteByte('"')
				i++
			default:
				b.WriteByte(s[i])
			}
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
