package tokens

import "strings"

// Split decomposes a raw variable name into its path elements.
//
// Slash-delimited names split on every slash ("color/brand/primary" has three
// elements). Otherwise the name splits on its first space into a group and the
// rest of the name ("Border Radius Large" becomes "Border", "Radius Large").
// A name with neither delimiter yields a single element, which has no group.
// The slash form always wins when both delimiters are present.
func Split(rawName string) []string {
	if strings.Contains(rawName, "/") {
		return strings.Split(rawName, "/")
	}
	return strings.SplitN(rawName, " ", 2)
}

// groupAndName returns the normalized group and variable name of a path.
// Elements after the group are joined with a single space before normalizing,
// so a missing remainder yields an empty name.
func groupAndName(path []string) (group, name string) {
	return Normalize(path[0]), Normalize(strings.Join(path[1:], " "))
}
