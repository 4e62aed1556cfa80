package tokens

import (
	"math"
	"strconv"
	"strings"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// Encode converts a literal value into its exported representation.
// COLOR literals become lowercase hex strings (see ColorHex); FLOAT, STRING,
// BOOLEAN and unknown types pass the literal through unchanged. A COLOR
// variable holding a non-color literal passes through as well.
func Encode(t figma.VariableType, v figma.Value) any {
	if t == figma.TypeColor && v.Kind == figma.KindColor {
		return ColorHex(v.Color)
	}
	return v.Interface()
}

// ColorHex formats a 0-1 RGBA color as "#rrggbb", or "#rrggbbaa" when the
// alpha is anything other than exactly 1.
func ColorHex(c figma.Color) string {
	var sb strings.Builder
	sb.Grow(9)
	sb.WriteByte('#')
	writeChannel(&sb, c.R)
	writeChannel(&sb, c.G)
	writeChannel(&sb, c.B)
	if c.A != 1 {
		writeChannel(&sb, c.A)
	}
	return sb.String()
}

// writeChannel writes round(v*255) as two lowercase hex digits, clamped to [0, 255].
func writeChannel(sb *strings.Builder, v float64) {
	n := math.Round(v * 255)
	switch {
	case math.IsNaN(n) || n < 0:
		n = 0
	case n > 255:
		n = 255
	}

	if n < 16 {
		sb.WriteByte('0')
	}
	sb.WriteString(strconv.FormatInt(int64(n), 16))
}
