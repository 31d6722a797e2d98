package directive

import "strings"

// DefaultMarker is the directive name recognised when none is configured.
const DefaultMarker = "frame:wrap"

// Match reports whether comment is a directive with the given marker and
// returns the argument text following it. Only `//` comments match, and the
// marker must be followed by whitespace or the end of the comment.
func Match(comment, marker string) (string, bool) {
	rest, ok := strings.CutPrefix(comment, "//"+marker)
	if !ok {
		return "", false
	}

	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}

	return strings.TrimSpace(rest), true
}
