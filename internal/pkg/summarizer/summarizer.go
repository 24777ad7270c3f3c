// Package summarizer implements extractive text summarization for legal
// documents. Sentences are scored by their aggregate cosine similarity to
// every other sentence in the document; the highest scoring sentences make
// up the summary.
package summarizer

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

type Options struct {
	// Sentences is the number of top-ranked sentences kept in the summary.
	Sentences int
	// MaxWords caps the summary length. Zero means no cap.
	MaxWords int
}

func DefaultOptions() Options {
	return Options{
		Sentences: 3,
		MaxWords:  150,
	}
}

// Summarize returns an extractive summary of text. Texts with fewer than
// two sentences are returned unchanged.
func Summarize(text string, opts Options) string {
	if opts.Sentences <= 0 {
		opts.Sentences = DefaultOptions().Sentences
	}

	sentences := SplitSentences(text)
	if len(sentences) < 2 {
		return strings.TrimSpace(text)
	}

	vectors := make([]map[string]float64, len(sentences))
	for i, sentence := range sentences {
		vectors[i] = termVector(sentence)
	}

	// Score each sentence as the sum of its similarities to all sentences,
	// self included.
	scores := make([]float64, len(sentences))
	for i := range vectors {
		for j := range vectors {
			scores[i] += cosine(vectors[i], vectors[j])
		}
	}

	ranked := make([]int, len(sentences))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		if scores[ranked[a]] != scores[ranked[b]] {
			return scores[ranked[a]] > scores[ranked[b]]
		}
		return ranked[a] < ranked[b]
	})

	keep := opts.Sentences
	if keep > len(sentences) {
		keep = len(sentences)
	}

	picked := make([]string, 0, keep)
	for _, idx := range ranked[:keep] {
		picked = append(picked, strings.TrimSpace(sentences[idx]))
	}

	summary := strings.Join(picked, " ")
	if opts.MaxWords > 0 {
		summary = capWords(summary, opts.MaxWords)
	}
	return summary
}

// Abbreviations common in legal text that must not end a sentence.
var abbreviations = map[string]struct{}{
	"no":   {},
	"v":    {},
	"vs":   {},
	"art":  {},
	"sec":  {},
	"cl":   {},
	"e.g":  {},
	"i.e":  {},
	"mr":   {},
	"mrs":  {},
	"dr":   {},
	"hon":  {},
	"govt": {},
}

// SplitSentences segments text on sentence-final punctuation, keeping the
// terminator attached to its sentence.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(strings.TrimSpace(text))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// A terminator only counts when followed by whitespace or the end
		// of the text.
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if r == '.' && endsInAbbreviation(current.String()) {
			continue
		}

		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func endsInAbbreviation(s string) bool {
	s = strings.TrimSuffix(s, ".")
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	word := strings.ToLower(s[idx+1:])
	_, ok := abbreviations[word]
	return ok
}

// termVector builds a term-frequency vector for one sentence, skipping
// stopwords.
func termVector(sentence string) map[string]float64 {
	vector := make(map[string]float64)
	for _, token := range tokenize(sentence) {
		if _, skip := stopwords[token]; skip {
			continue
		}
		vector[token]++
	}
	return vector
}

func tokenize(sentence string) []string {
	return strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func cosine(a, b map[string]float64) float64 {
	var dot float64
	for term, weight := range a {
		dot += weight * b[term]
	}
	if dot == 0 {
		return 0
	}
	return dot / (norm(a) * norm(b))
}

func norm(v map[string]float64) float64 {
	var sum float64
	for _, weight := range v {
		sum += weight * weight
	}
	return math.Sqrt(sum)
}

func capWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return s
	}
	return strings.Join(words[:max], " ")
}
