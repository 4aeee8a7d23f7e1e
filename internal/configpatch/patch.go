// Package configpatch writes database credentials into the dashboard's PHP
// configuration file.
package configpatch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conn-castle/propapp-install/internal/messages"
)

// Rewrite modes.
const (
	// ModePlaceholders replaces the quoted template defaults wherever they occur.
	ModePlaceholders = "placeholders"
	// ModeKeys rewrites the values assigned to named keys.
	ModeKeys = "keys"
)

// Quoted defaults shipped in config.example.php.
const (
	PlaceholderHost     = "'localhost'"
	PlaceholderName     = "'property_app'"
	PlaceholderUser     = "'root'"
	PlaceholderPassword = "''"
)

// Values are the credentials written into the file.
type Values struct {
	Host     string
	Name     string
	User     string
	Password string
}

// Keys names the configuration keys that hold each credential in ModeKeys.
// An empty key is left alone.
type Keys struct {
	Host     string
	Name     string
	User     string
	Password string
}

// Apply rewrites content according to mode.
func Apply(content string, mode string, keys Keys, values Values) (string, error) {
	switch mode {
	case ModePlaceholders:
		return ReplacePlaceholders(content, values), nil
	case ModeKeys:
		return ReplaceKeys(content, keys, values)
	default:
		return "", fmt.Errorf(messages.ConfigPatchUnknownModeFmt, mode)
	}
}

// ReplacePlaceholders swaps every quoted placeholder for the matching quoted value.
// All four placeholders are replaced in a single left-to-right pass, so text produced
// by one substitution is never matched by another.
func ReplacePlaceholders(content string, values Values) string {
	replacer := strings.NewReplacer(
		PlaceholderHost, Quote(values.Host),
		PlaceholderName, Quote(values.Name),
		PlaceholderUser, Quote(values.User),
		PlaceholderPassword, Quote(values.Password),
	)
	return replacer.Replace(content)
}

// quotedLiteral matches a PHP single- or double-quoted string literal.
const quotedLiteral = `(?:'(?:[^'\\]|\\.)*'|"(?:[^"\\]|\\.)*")`

// ReplaceKeys rewrites define('KEY', '...') and 'KEY' => '...' assignments.
// Every non-empty key must appear at least once. All assignments are located in the
// original content before any value is written, so inserted values are never matched.
func ReplaceKeys(content string, keys Keys, values Values) (string, error) {
	pairs := []struct {
		key   string
		value string
	}{
		{keys.Host, values.Host},
		{keys.Name, values.Name},
		{keys.User, values.User},
		{keys.Password, values.Password},
	}
	replacements := make(map[string]string, len(pairs))
	var order []string
	for _, pair := range pairs {
		if pair.key == "" {
			continue
		}
		if _, seen := replacements[pair.key]; !seen {
			order = append(order, pair.key)
		}
		replacements[pair.key] = Quote(pair.value)
	}
	if len(order) == 0 {
		return content, nil
	}

	matches := assignmentPattern(order).FindAllStringSubmatchIndex(content, -1)
	found := make(map[string]bool, len(order))
	var b strings.Builder
	last := 0
	for _, m := range matches {
		// Groups 1-2 are the define() prefix and key, 3-4 the array prefix and key.
		prefixEnd, keyStart, keyEnd := m[3], m[4], m[5]
		if m[2] < 0 {
			prefixEnd, keyStart, keyEnd = m[7], m[8], m[9]
		}
		key := content[keyStart:keyEnd]
		found[key] = true
		b.WriteString(content[last:prefixEnd])
		b.WriteString(replacements[key])
		last = m[1]
	}
	for _, key := range order {
		if !found[key] {
			return "", fmt.Errorf(messages.ConfigPatchKeyNotFoundFmt, key)
		}
	}
	b.WriteString(content[last:])
	return b.String(), nil
}

// assignmentPattern matches an assignment to any of keys in either supported form.
func assignmentPattern(keys []string) *regexp.Regexp {
	quoted := make([]string, len(keys))
	for i, key := range keys {
		quoted[i] = regexp.QuoteMeta(key)
	}
	name := `['"](` + strings.Join(quoted, "|") + `)['"]`
	return regexp.MustCompile(
		`(define\(\s*` + name + `\s*,\s*)` + quotedLiteral +
			`|(` + name + `\s*=>\s*)` + quotedLiteral,
	)
}

// Quote renders value as a PHP single-quoted string literal.
func Quote(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}
