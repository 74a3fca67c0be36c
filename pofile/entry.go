package pofile

import "strings"

// Meta holds the comment metadata shared by singular and plural entries.
type Meta struct {
	// TranslatorComments are lines starting with "# " (translator comments).
	TranslatorComments []string
	// ExtractedComments are lines starting with "#." (extracted/automatic comments).
	ExtractedComments []string
	// References are "file:line" source locations from "#:" lines.
	References []string
	// Flags are format flags from "#," lines (e.g. "fuzzy").
	Flags []string
	// PreviousMsgID stores the previous msgid for fuzzy entries, from "#|" lines.
	PreviousMsgID string
	// Obsolete marks entries prefixed with "#~".
	Obsolete bool
}

// HasFlag checks if a specific flag is present.
func (m *Meta) HasFlag(flag string) bool {
	for _, f := range m.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// IsFuzzy returns true if the entry is marked fuzzy.
func (m *Meta) IsFuzzy() bool {
	return m.HasFlag("fuzzy")
}

// IsObsolete returns true if the entry was commented out with "#~".
func (m *Meta) IsObsolete() bool {
	return m.Obsolete
}

// Translation is a singular message entry (msgid + msgstr).
type Translation struct {
	Meta

	// HasContext is true when the entry carries a msgctxt statement,
	// distinguishing an absent context from msgctxt "".
	HasContext bool
	// Context is the message context (msgctxt).
	Context string
	// MsgID is the untranslated string.
	MsgID string
	// MsgStr is the translated string.
	MsgStr string
}

// PluralTranslation is a plural message entry
// (msgid + msgid_plural + msgstr[N] forms).
type PluralTranslation struct {
	Meta

	HasContext bool
	Context    string
	// MsgID is the untranslated singular string.
	MsgID string
	// MsgIDPlural is the untranslated plural string.
	MsgIDPlural string
	// MsgStr maps plural form index to translated string.
	// Indices are assigned by the parser in ascending order starting at 0.
	MsgStr map[int]string
}

// Entry is a parsed PO entry: either a *Translation or a
// *PluralTranslation. The set of implementations is closed.
type Entry interface {
	// ID returns the entry's msgid.
	ID() string
	// IsTranslated returns true if the entry has a complete,
	// non-fuzzy translation.
	IsTranslated() bool
	IsFuzzy() bool
	IsObsolete() bool

	isEntry()
}

func (*Translation) isEntry()       {}
func (*PluralTranslation) isEntry() {}

// ID returns the entry's msgid.
func (t *Translation) ID() string { return t.MsgID }

// ID returns the entry's singular msgid.
func (p *PluralTranslation) ID() string { return p.MsgID }

// IsTranslated returns true if the entry has a non-empty translation.
func (t *Translation) IsTranslated() bool {
	if t.MsgID == "" {
		return false // header entry
	}
	if t.IsFuzzy() {
		return false
	}
	return t.MsgStr != ""
}

// IsTranslated returns true if every plural form has a non-empty translation.
func (p *PluralTranslation) IsTranslated() bool {
	if p.MsgID == "" || p.IsFuzzy() {
		return false
	}
	for _, v := range p.MsgStr {
		if v == "" {
			return false
		}
	}
	return len(p.MsgStr) > 0
}

// Header returns the catalog's metadata entry (msgid ""), or nil if the
// catalog has none.
func Header(entries []Entry) *Translation {
	for _, e := range entries {
		if t, ok := e.(*Translation); ok && t.MsgID == "" && !t.Obsolete {
			return t
		}
	}
	return nil
}

// HeaderField returns a header field value by name from a header entry's
// msgstr (e.g. "Language", "Project-Id-Version"). Field names are matched
// case-insensitively.
func HeaderField(header *Translation, name string) string {
	if header == nil {
		return ""
	}
	for _, line := range strings.Split(header.MsgStr, "\n") {
		if idx := strings.Index(line, ":"); idx > 0 {
			key := strings.TrimSpace(line[:idx])
			if strings.EqualFold(key, name) {
				return strings.TrimSpace(line[idx+1:])
			}
		}
	}
	return ""
}

// Stats returns translation statistics over the given entries.
// The header entry and obsolete entries are not counted.
func Stats(entries []Entry) (total, translated, fuzzy, untranslated int) {
	for _, e := range entries {
		if e.ID() == "" || e.IsObsolete() {
			continue
		}
		total++
		switch {
		case e.IsFuzzy():
			fuzzy++
		case e.IsTranslated():
			translated++
		default:
			untranslated++
		}
	}
	return
}
