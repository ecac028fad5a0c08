package vectorizer

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it into runs of letters and
// digits. Single-character tokens are dropped, matching the word
// boundary rule the vocabulary was designed around.
func Tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder
	runes := 0

	flush := func() {
		if runes >= 2 {
			tokens = append(tokens, cur.String())
		}
		cur.Reset()
		runes = 0
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
			runes++
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// Terms tokenizes text, removes English stopwords and returns
// unigrams plus bigrams of adjacent surviving tokens. Bigram terms
// are the two tokens joined by a single space.
func Terms(text string) []string {
	tokens := Tokenize(text)

	kept := tokens[:0]
	for _, t := range tokens {
		if !stopwords[t] {
			kept = append(kept, t)
		}
	}

	terms := make([]string, 0, len(kept)*2)
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}
