// Package valuescan prepares declaration values for pattern matching.
package valuescan

import "strings"

// Mask returns value with the contents of quoted strings and url()
// arguments replaced by spaces, and comments blanked entirely. Byte offsets are preserved, so an index
// into the result is an index into value.
func Mask(value string) string {
	b := []byte(value)
	for i := 0; i < len(b); i++ {
		switch c := b[i]; {
		case c == '"' || c == '\'':
			j := i + 1
			for j < len(b) && b[j] != c {
				if b[j] == '\\' && j+1 < len(b) {
					b[j] = ' '
					j++
				}
				b[j] = ' '
				j++
			}
			i = j
		case c == '/' && i+1 < len(b) && b[i+1] == '*':
			j := i
			for j < len(b) {
				if b[j] == '*' && j+1 < len(b) && b[j+1] == '/' && j >= i+2 {
					b[j], b[j+1] = ' ', ' '
					j++
					break
				}
				b[j] = ' '
				j++
			}
			i = j
		case (c == 'u' || c == 'U') && hasURLPrefix(value[i:]) && (i == 0 || !isIdent(value[i-1])):
			j := i + 4
			for j < len(b) && b[j] != ')' {
				b[j] = ' '
				j++
			}
			i = j
		}
	}
	return string(b)
}

func hasURLPrefix(s string) bool {
	return len(s) >= 4 && strings.EqualFold(s[:4], "url(")
}

func isIdent(c byte) bool {
	return c == '-' || c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
