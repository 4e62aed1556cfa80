package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/kataras/figma-tokens/pkg/tokens"
)

// ToMarkdown renders the token tree as a markdown document with one block of
// CSS custom properties per collection and mode, ready to be pasted into a
// stylesheet. Top-level tokens that live outside the hierarchy are listed in
// a separate table.
func ToMarkdown(tree *tokens.Tree, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Design Tokens - %s\n\n", title))
	sb.WriteString("This document contains the design tokens exported from the Figma file's local variables.\n\n")

	if tree == nil {
		tree = tokens.NewTree()
	}

	var (
		collections, modes, count int
		ungrouped                 []string
	)

	for _, name := range tree.Keys() {
		if tree.Get(name).IsLeaf() {
			ungrouped = append(ungrouped, name)
			continue
		}
		if collections == 0 {
			sb.WriteString("## Collections\n\n")
		}
		collections++

		collection := tree.Get(name)
		sb.WriteString(fmt.Sprintf("### %s\n\n", name))

		for _, modeName := range collection.Keys() {
			mode := collection.Child(modeName)
			if mode.IsLeaf() {
				continue
			}
			modes++

			sb.WriteString(fmt.Sprintf("#### %s\n\n", modeName))
			sb.WriteString("```css\n")
			for i, groupName := range mode.Keys() {
				group := mode.Child(groupName)
				if group.IsLeaf() {
					continue
				}
				if i > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(fmt.Sprintf("/* %s */\n", groupName))
				for _, varName := range group.Keys() {
					tok, ok := group.Child(varName).Token()
					if !ok {
						continue
					}
					count++
					sb.WriteString(fmt.Sprintf("--%s-%s: %s;\n", toKebabCase(groupName), toKebabCase(varName), formatValue(tok.Value)))
				}
			}
			sb.WriteString("```\n\n")
		}
	}

	if len(ungrouped) > 0 {
		sb.WriteString("## Ungrouped Tokens\n\n")
		sb.WriteString("| Token | Type | Value |\n")
		sb.WriteString("|-------|------|-------|\n")
		for _, name := range ungrouped {
			tok, _ := tree.Get(name).Token()
			sb.WriteString(fmt.Sprintf("| %s | %s | `%s` |\n", name, tok.Type, formatValue(tok.Value)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Collections**: %d\n", collections))
	sb.WriteString(fmt.Sprintf("- **Modes**: %d\n", modes))
	sb.WriteString(fmt.Sprintf("- **Tokens**: %d\n", count))
	if len(ungrouped) > 0 {
		sb.WriteString(fmt.Sprintf("- **Ungrouped Tokens**: %d\n", len(ungrouped)))
	}

	return sb.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// toKebabCase converts a token key to kebab-case for CSS custom property names.
// Word boundaries are spaces, underscores and lower-to-upper case changes;
// any other character that is not a letter, digit or hyphen is dropped.
func toKebabCase(s string) string {
	var result strings.Builder
	prev := rune(0)
	for _, r := range s {
		switch {
		case r == ' ' || r == '_':
			r = '-'
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}

		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
			prev = r
		}
	}

	return result.String()
}
