package spell

import "unicode"

// Token is a candidate word with its inclusive rune-offset range into the
// buffer it was scanned from.
type Token struct {
	Word  string
	Start int
	End   int
}

func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '.', ',', '!', '?', ';', ':', '&':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || r == '’'
}

// Tokenize scans the buffer left to right and returns every candidate word
// in order. A candidate accumulates until a separator (whitespace or
// terminating punctuation); a candidate containing any rune that is neither
// a letter nor an apostrophe is dropped entirely, so words like "apple3"
// are never checked at all. A trailing word is flushed at buffer end.
func Tokenize(buf []rune) []Token {
	var tokens []Token

	start := 0
	length := 0
	proper := true

	flush := func(end int) {
		if length > 0 && proper {
			tokens = append(tokens, Token{
				Word:  string(buf[start : end+1]),
				Start: start,
				End:   end,
			})
		}
		length = 0
		proper = true
	}

	for i, r := range buf {
		if isSeparator(r) {
			flush(i - 1)
			continue
		}
		if length == 0 {
			start = i
		}
		length++
		proper = proper && isWordRune(r)
	}
	flush(len(buf) - 1)

	return tokens
}
