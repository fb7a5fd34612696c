package naming

import (
	"regexp"
	"strings"
	"unicode"
)

// IntroWindowChars is the number of leading transcript characters searched for
// introduction phrases. Self-introductions reliably occur early; limiting the
// window avoids picking up names mentioned later in the recording.
const IntroWindowChars = 500

// FallbackWindowChars is the leading window used by the positional fallback scan.
const FallbackWindowChars = 200

// FallbackMaxWords is the maximum number of words the fallback scan examines.
const FallbackMaxWords = 15

// minNameLength is the shortest candidate accepted after stripping; anything of
// two or fewer characters ("Hi", "Ok") is rejected.
const minNameLength = 2

// priorityPatterns are evaluated in order against the intro window. The first
// pattern whose candidate survives validation wins; later patterns are not
// tried. The phrase text matches case-insensitively, but only words that are
// capitalized in the source count as name words, so ordinary prose that
// happens to satisfy a phrase ("wanted to come here") never yields a name.
var priorityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)((?:[A-Z][a-z]+\s+)*[A-Z][a-z]+)\s+here\b`),
	regexp.MustCompile(`(?i)my\s+name\s+is\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`(?i)i\s+am\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`(?i)i'm\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`(?i)this\s+is\s+([A-Z][a-z]+)`),
}

var nonWordChars = regexp.MustCompile(`[^\w]`)

// defaultStopwords are words that must never be returned as a name even when
// they match a pattern syntactically: pronouns, connectives, filler, and the
// academic/temporal vocabulary common in student introduction recordings.
// Comparison is case-insensitive; all keys are lowercase.
var defaultStopwords = buildStopwordSet([]string{
	"the", "this", "that", "there", "here", "hello", "hi", "hey", "my", "i", "we", "you",
	"everybody", "everyone", "anyone", "someone", "something", "somewhere", "today",
	"tomorrow", "yesterday", "now", "then", "when", "where", "what", "who", "why", "how",
	"video", "intro", "introduction", "about", "me", "just", "and", "or", "but",
	"senior", "junior", "sophomore", "freshman", "undergrad", "grad", "team", "year",
	"been", "have", "has", "had", "was", "were", "is", "are", "am", "be", "being",
	"in", "on", "at", "to", "for", "from", "with", "by", "of", "as", "an", "a",
	"first", "last", "next", "previous", "current", "new", "old", "good", "bad",
	"little", "big", "many", "much", "some", "any", "all", "each", "every", "both",
	"college", "university", "school", "semester", "class", "course", "shop", "two",
	"raised", "born", "living", "working", "doing", "going", "getting",
})

func buildStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Extractor finds a speaker's first name in a transcript. The stopword set is
// fixed at construction and shared read-only across invocations; Extractor is
// safe for concurrent use.
type Extractor struct {
	stopwords map[string]struct{}
}

// NewExtractor creates an Extractor using the default stopword set plus any
// extra stopwords (case-insensitive). Extras let an operator tune coverage for
// a batch whose vocabulary trips the fallback heuristic.
func NewExtractor(extraStopwords ...string) *Extractor {
	set := make(map[string]struct{}, len(defaultStopwords)+len(extraStopwords))
	for w := range defaultStopwords {
		set[w] = struct{}{}
	}
	for _, w := range extraStopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &Extractor{stopwords: set}
}

// FindFirstName returns the speaker's first name detected in the opening of
// the transcript, or ok=false when no plausible name is found. Absence is a
// valid outcome, not an error. The function is pure and deterministic.
func (e *Extractor) FindFirstName(transcript string) (name string, ok bool) {
	introText := leadingChars(transcript, IntroWindowChars)

	// Priority patterns first: return the first match that validates.
	for _, pattern := range priorityPatterns {
		m := pattern.FindStringSubmatch(introText)
		if m == nil {
			continue
		}
		candidate := capitalizedLead(m[1])
		candidate = nonWordChars.ReplaceAllString(candidate, "")
		if e.isValidName(candidate) {
			return candidate, true
		}
	}

	// Fallback: scan the shorter window for two adjacent capitalized words
	// that look like "First Last" and return the first word of the pair.
	words := strings.Fields(leadingChars(introText, FallbackWindowChars))
	for i, word := range words {
		if i >= FallbackMaxWords {
			break
		}
		clean := nonWordChars.ReplaceAllString(word, "")
		if !e.isValidName(clean) {
			continue
		}
		if i+1 >= len(words) {
			continue
		}
		next := nonWordChars.ReplaceAllString(words[i+1], "")
		if e.isValidName(next) {
			return clean, true
		}
	}

	return "", false
}

// isValidName reports whether a stripped token is a plausible first name:
// non-empty, longer than two characters, uppercase-initial, and not a stopword.
func (e *Extractor) isValidName(token string) bool {
	runes := []rune(token)
	if len(runes) <= minNameLength {
		return false
	}
	if _, stop := e.stopwords[strings.ToLower(token)]; stop {
		return false
	}
	return unicode.IsUpper(runes[0])
}

// leadingChars returns the first n characters of s (by rune, not byte).
func leadingChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// capitalizedLead returns the first word of the trailing run of
// uppercase-initial words in a captured phrase, or "" when the phrase ends in
// a word that is lowercase in the source. Case-insensitive matching means a
// phrase capture can absorb lowercase prose; only the capitalized words
// directly before the cue belong to the name.
func capitalizedLead(phrase string) string {
	words := strings.Fields(phrase)
	start := len(words)
	for start > 0 {
		runes := []rune(words[start-1])
		if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
			break
		}
		start--
	}
	if start == len(words) {
		return ""
	}
	return words[start]
}
