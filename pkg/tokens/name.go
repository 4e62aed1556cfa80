package tokens

import "strings"

// Normalize converts a delimited identifier into its canonical camel-case token form.
// Every hyphen or space followed by a lowercase ASCII letter is collapsed into the
// uppercase letter, then a leading uppercase ASCII letter is lowered:
//
//	Normalize("border radius") // "borderRadius"
//	Normalize("Border Radius") // "border Radius"
//	Normalize("brand-primary") // "brandPrimary"
//	Normalize("Dark")          // "dark"
//
// Delimiters followed by anything else (digits, uppercase letters) are kept.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c == '-' || c == ' ') && i+1 < len(raw) && isLower(raw[i+1]) {
			sb.WriteByte(raw[i+1] - 'a' + 'A')
			i++
			continue
		}
		sb.WriteByte(c)
	}

	out := sb.String()
	if isUpper(out[0]) {
		out = string(out[0]-'A'+'a') + out[1:]
	}

	return out
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
