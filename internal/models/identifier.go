package models

import "strings"

// RawIdentifierPrefix marks a Rust raw identifier such as r#type or r#match
const RawIdentifierPrefix = "r#"

// NormalizeIdentifier strips raw-identifier escaping so the name matches what
// the Python runtime sees.
func NormalizeIdentifier(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), RawIdentifierPrefix)
}
