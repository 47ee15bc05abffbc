// Package docs builds __doc__ strings from declaration-time doc fragments.
package docs

import (
	"strings"

	"github.com/toyz/textsig/internal/models"
)

// Aggregate joins doc fragments with newlines in declaration order.
// No fragments means no doc at all, which is different from an empty doc.
func Aggregate(fragments models.DocFragments) (string, bool) {
	if len(fragments) == 0 {
		return "", false
	}
	return strings.Join(fragments, "\n"), true
}
