package index

import (
	"strings"
	"unicode"
)

// stopWords is the fixed English stop-word list excluded from term
// vectors. Tokens of a single character are dropped regardless.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a about above after again against all am an and any are as at
		be because been before being below between both but by
		can cannot could did do does doing down during
		each few for from further had has have having he her here hers
		herself him himself his how i if in into is it its itself
		just me more most my myself no nor not now of off on once only
		or other our ours ourselves out over own
		same she should so some such than that the their theirs them
		themselves then there these they this those through to too
		under until up very was we were what when where which while who
		whom why will with you your yours yourself yourselves
	`) {
		stopWords[w] = struct{}{}
	}
}

// tokenize splits text into lowercase word tokens of two or more
// letters/digits, with stop words excluded. The same tokenizer is used
// at build and query time.
func tokenize(text string) []string {
	lower := strings.ToLower(text)

	var tokens []string
	var current []rune
	flush := func() {
		if len(current) < 2 {
			current = current[:0]
			return
		}
		token := string(current)
		current = current[:0]
		if _, stop := stopWords[token]; stop {
			return
		}
		tokens = append(tokens, token)
	}

	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current = append(current, r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
