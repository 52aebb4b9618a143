package domain

import "strings"

// StackSeparator joins tech-stack entries in the stored string form.
const StackSeparator = " • "

// ParseStack splits a stored stack string into its entries. Both the bullet
// separator and plain commas are accepted, entries are trimmed, and empty
// entries are dropped.
func ParseStack(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '•' || r == ','
	})

	var stack []string
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			stack = append(stack, t)
		}
	}
	return stack
}

// JoinStack serializes a stack list into the stored string form.
func JoinStack(stack []string) string {
	return strings.Join(stack, StackSeparator)
}

// Slugify lowercases a title and replaces runs of non-alphanumeric
// characters with single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
