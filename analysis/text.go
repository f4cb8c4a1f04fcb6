package analysis

// Stop words excluded from keyword extraction and word-frequency analytics
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "they": true, "will": true, "what": true,
	"when": true, "where": true, "which": true, "their": true, "there": true,
	"about": true, "into": true, "than": true, "then": true, "them": true,
	"these": true, "those": true, "some": true, "such": true, "very": true,
}

// IsStopWord reports whether a lowercased word is a stop word.
func IsStopWord(word string) bool {
	return stopWords[word]
}
