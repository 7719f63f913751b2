package session

import "unicode"

// matchCase adjusts target to follow source's casing position by position:
// wherever source still has a character, the target character at that index
// takes its case; once source is exhausted the rest of target is copied
// unchanged.
func matchCase(source, target string) string {
	src := []rune(source)
	out := make([]rune, 0, len(target))
	for i, r := range []rune(target) {
		if i < len(src) {
			if unicode.IsUpper(src[i]) {
				r = unicode.ToUpper(r)
			} else {
				r = unicode.ToLower(r)
			}
		}
		out = append(out, r)
	}
	return string(out)
}
