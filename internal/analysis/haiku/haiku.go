// Package haiku finds 5-7-5 syllable segmentations in short text.
package haiku

import (
	"regexp"
	"strings"

	"github.com/eastrand/modsignal/internal/analysis/patterns"
	"github.com/eastrand/modsignal/internal/core/domain"
)

// Word-count window worth searching. Anything outside cannot plausibly be a
// haiku and is rejected before syllables are counted.
const (
	minWords = 7
	maxWords = 25
)

const totalSyllables = 17

var (
	punctRegex     = regexp.MustCompile(`[^\w\s'-]`)
	hasLetterRegex = regexp.MustCompile(`[a-zA-Z]`)
	nonLetterRegex = regexp.MustCompile(`[^a-z]`)
)

// Detect attempts to segment text into a 5-7-5 syllable haiku.
func Detect(text string) domain.HaikuResult {
	words := splitWords(text)
	if len(words) < 3 {
		return domain.HaikuResult{}
	}

	if len(words) < minWords || len(words) > maxWords {
		return domain.HaikuResult{}
	}

	syllables := make([]int, len(words))

	total := 0
	for i, w := range words {
		syllables[i] = CountSyllables(w)
		total += syllables[i]
	}

	if total != totalSyllables {
		return domain.HaikuResult{}
	}

	// Search every two-cut partition for cumulative sums of exactly 5, 7, 5.
	// The word-count window bounds this at a few hundred checks.
	for i := 1; i < len(words)-1; i++ {
		for j := i + 1; j < len(words); j++ {
			if sum(syllables[:i]) == 5 && sum(syllables[i:j]) == 7 && sum(syllables[j:]) == 5 {
				return domain.HaikuResult{
					Detected: true,
					Lines: []string{
						strings.Join(words[:i], " "),
						strings.Join(words[i:j], " "),
						strings.Join(words[j:], " "),
					},
					Syllables: []int{5, 7, 5},
				}
			}
		}
	}

	// Total of 17 whose distribution cannot align to a 5-7-5 cut.
	return domain.HaikuResult{}
}

// CountSyllables estimates the syllable count of a single word. Exceptions
// short-circuit; otherwise vowel-group transitions are counted with silent-e
// and -ed corrections. Words of one or two letters count as one syllable,
// tokens without letters as zero.
func CountSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || !hasLetterRegex.MatchString(word) {
		return 0
	}

	if n, ok := patterns.SyllableExceptions[word]; ok {
		return n
	}

	word = nonLetterRegex.ReplaceAllString(word, "")
	if word == "" {
		return 0
	}

	if len(word) <= 2 {
		return 1
	}

	count := 0
	prevVowel := false

	for _, ch := range word {
		isVowel := strings.ContainsRune("aeiouy", ch)
		if isVowel && !prevVowel {
			count++
		}

		prevVowel = isVowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}

	if strings.HasSuffix(word, "ed") && len(word) > 2 {
		beforeEd := word[len(word)-3]
		if beforeEd != 't' && beforeEd != 'd' {
			count--
		}
	}

	if count < 1 {
		return 1
	}

	return count
}

// splitWords tokenizes text for syllable counting: punctuation except
// hyphens and apostrophes becomes whitespace, tokens without letters drop.
func splitWords(text string) []string {
	cleaned := punctRegex.ReplaceAllString(text, " ")

	var words []string

	for _, w := range strings.Fields(cleaned) {
		if hasLetterRegex.MatchString(w) {
			words = append(words, w)
		}
	}

	return words
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}

	return total
}
