package configpatch

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// maskedLiteral stands in for a secret value in rendered diffs.
const maskedLiteral = "'********'"

// Diff renders a unified diff between two versions of the file at name.
// It returns an empty string when nothing changed.
func Diff(name string, before string, after string) string {
	if before == after {
		return ""
	}
	return udiff.Unified(name, name, before, after)
}

// Mask replaces every quoted occurrence of secret in content with a fixed literal.
// An empty secret leaves content unchanged.
func Mask(content string, secret string) string {
	if secret == "" {
		return content
	}
	return strings.ReplaceAll(content, Quote(secret), maskedLiteral)
}
