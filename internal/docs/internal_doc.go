package docs

import "strings"

// SignatureEndMarker terminates an embedded signature in an internal doc
const SignatureEndMarker = ")\n--\n\n"

// ComposeInternalDoc builds the single doc string the host stores for a
// callable, embedding the text signature as "name(sig)\n--\n\n" ahead of the
// doc. Signatures that do not start with "(" cannot be recovered by the host
// and are left out.
func ComposeInternalDoc(name, signature string, hasSignature bool, doc string, hasDoc bool) (string, bool) {
	if hasSignature && strings.HasPrefix(signature, "(") && strings.HasSuffix(signature, ")") {
		return bareName(name) + signature + "\n--\n\n" + doc, true
	}
	if hasDoc {
		return doc, true
	}
	return "", false
}

// Split holds the two strings recovered from an internal doc
type Split struct {
	Doc           string
	HasDoc        bool
	TextSignature string
	HasSignature  bool
}

// SplitInternalDoc recovers __doc__ and __text_signature__ from an internal
// doc. The signature is only recognized when the doc starts with the bare
// name followed by "(" and the end marker appears before the first blank line.
func SplitInternalDoc(name, internal string) Split {
	sigStart, ok := findSignature(bareName(name), internal)
	if !ok {
		return Split{Doc: internal, HasDoc: internal != ""}
	}

	end, ok := skipSignature(sigStart)
	if !ok {
		return Split{Doc: internal, HasDoc: internal != ""}
	}

	doc := sigStart[end:]
	return Split{
		Doc:           doc,
		HasDoc:        doc != "",
		TextSignature: sigStart[:end-len(SignatureEndMarker)+1],
		HasSignature:  true,
	}
}

func bareName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

func findSignature(name, doc string) (string, bool) {
	if name == "" || !strings.HasPrefix(doc, name) {
		return "", false
	}
	rest := doc[len(name):]
	if !strings.HasPrefix(rest, "(") {
		return "", false
	}
	return rest, true
}

// skipSignature returns the offset just past the end marker
func skipSignature(doc string) (int, bool) {
	for i := 0; i < len(doc); i++ {
		if strings.HasPrefix(doc[i:], SignatureEndMarker) {
			return i + len(SignatureEndMarker), true
		}
		if doc[i] == '\n' && i+1 < len(doc) && doc[i+1] == '\n' {
			return 0, false
		}
	}
	return 0, false
}
