package annotations

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"

	"github.com/toyz/textsig/internal/errors"
)

// ParseAttribute parses the text of one outer attribute, e.g.
// `#[pyo3(signature = (a, /, b = None))]`. loc is where the attribute starts.
func ParseAttribute(text string, loc errors.SourceLocation) (*Attribute, error) {
	attr, err := attributeParser.ParseString(loc.File, text)
	if err != nil {
		return nil, syntaxErrorFrom(err, text, loc)
	}
	return attr, nil
}

// AttributeName extracts the attribute's last path segment without parsing
// its arguments, so unrelated attributes can be skipped cheaply.
func AttributeName(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "#[") {
		return ""
	}
	text = strings.TrimSpace(text[2:])
	if end := strings.IndexAny(text, "(=]"); end >= 0 {
		text = text[:end]
	}
	text = strings.TrimSpace(text)
	if i := strings.LastIndex(text, "::"); i >= 0 {
		text = text[i+2:]
	}
	return text
}

func syntaxErrorFrom(err error, text string, loc errors.SourceLocation) error {
	var perr participle.Error
	if !stderrors.As(err, &perr) {
		return errors.WrapParseError("attribute", err)
	}

	pos := perr.Position()
	offsetLoc := loc
	if pos.Line > 0 {
		offsetLoc.Line = loc.Line + pos.Line - 1
		if pos.Line == 1 {
			offsetLoc.Column = loc.Column + pos.Column - 1
		} else {
			offsetLoc.Column = pos.Column
		}
	}

	token := ""
	if pos.Offset >= 0 && pos.Offset < len(text) {
		if fields := strings.Fields(text[pos.Offset:]); len(fields) > 0 {
			token = fields[0]
		}
	}

	return errors.NewSyntaxErrorWithToken(fmt.Sprintf("invalid attribute: %s", perr.Message()), token, pos.Offset).
		WithLocation(offsetLoc).
		WithSuggestion("check brackets and commas, e.g. #[pyo3(signature = (a, /, b = None, *, c = 5))]")
}

// unquote decodes a Rust string literal token. Raw strings (r"..", r#".."#)
// are taken verbatim; ordinary strings have their escapes resolved.
func unquote(raw string) string {
	if strings.HasPrefix(raw, "r") {
		body := raw[1:]
		hashes := len(body) - len(strings.TrimLeft(body, "#"))
		return body[hashes+1 : len(body)-hashes-1]
	}
	return unescape(raw[1 : len(raw)-1])
}

// unescape resolves Rust string escapes. Sequences Rust would reject are
// kept as written.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}

		i++
		switch c := s[i]; c {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"':
			b.WriteByte(c)
		case 'x':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil && v <= 0x7f {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteString(`\x`)
		case 'u':
			if r, n, ok := unicodeEscape(s[i+1:]); ok {
				b.WriteRune(r)
				i += n
				continue
			}
			b.WriteString(`\u`)
		case '\n', '\r':
			// line continuation: the newline and the next line's leading
			// whitespace are dropped
			for i+1 < len(s) && strings.IndexByte(" \t\r\n", s[i+1]) >= 0 {
				i++
			}
		default:
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unicodeEscape reads the {XXXX} part of a \u{XXXX} escape, returning the
// rune and the number of bytes consumed
func unicodeEscape(s string) (rune, int, bool) {
	if !strings.HasPrefix(s, "{") {
		return 0, 0, false
	}
	end := strings.IndexByte(s, '}')
	if end < 2 {
		return 0, 0, false
	}
	digits := strings.ReplaceAll(s[1:end], "_", "")
	if digits == "" || len(digits) > 6 {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, 0, false
	}
	return rune(v), end + 1, true
}
