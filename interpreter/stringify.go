package interpreter

import "github.com/akashmaji946/golox/objects"

// stringify renders a Value the way a print statement does.
// Every Value variant already implements this via its own String
// method (including the correct, non-substring-search number
// formatting in objects.Number.String); this is a named seam so the
// formatting rule has one call site rather than being inlined at
// every print statement.
func stringify(v objects.Value) string {
	return v.String()
}
