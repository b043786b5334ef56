package keywords

import (
	"regexp"
	"sort"
	"strings"
)

const DefaultTopK = 10

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Extractor ranks corpus terms by frequency after stop-word removal.
// It is deterministic for a given corpus and stop-word set.
type Extractor struct {
	stopWords map[string]struct{}
}

func NewExtractor(stopWords []string) *Extractor {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return &Extractor{stopWords: set}
}

// NewEnglishExtractor uses the built-in English stop-word list.
func NewEnglishExtractor() *Extractor {
	return NewExtractor(EnglishStopWords)
}

// Extract returns up to topK terms, most frequent first. Ties are broken
// alphabetically. topK <= 0 falls back to DefaultTopK.
func (e *Extractor) Extract(texts []string, topK int) []string {
	if topK <= 0 {
		topK = DefaultTopK
	}

	freq := make(map[string]int)
	for _, text := range texts {
		for _, token := range Tokenize(text) {
			if _, stop := e.stopWords[token]; stop {
				continue
			}
			freq[token]++
		}
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > topK {
		terms = terms[:topK]
	}
	return terms
}

// Tokenize lower-cases text and splits it into word tokens of two or more characters.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
