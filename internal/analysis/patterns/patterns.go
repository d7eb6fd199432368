// Package patterns holds the compiled match patterns and lookup tables shared
// by every detector. Everything here is built once at init and read-only
// afterwards, so concurrent analyses need no locking.
package patterns

import (
	"regexp"
	"strings"
)

// Rule is one entry of an ordered pattern cascade. Detectors fold over a
// rule slice and collect the IDs of matching entries.
type Rule struct {
	ID string
	Re *regexp.Regexp
}

// SyllableExceptions maps words whose syllable count the vowel-group
// heuristic gets wrong to their correct count.
var SyllableExceptions = map[string]int{
	"the":         1,
	"every":       3,
	"everything":  4,
	"beautiful":   3,
	"different":   3,
	"interesting": 4,
	"probably":    3,
	"actually":    4,
	"basically":   4,
	"literally":   4,
	"obviously":   4,
	"usually":     4,
	"created":     3,
	"really":      2,
	"area":        3,
	"idea":        3,
	"poem":        2,
	"poet":        2,
	"being":       2,
	"seeing":      2,
	"doing":       2,
	"going":       2,
	"hours":       2,
	"hour":        1,
	"our":         1,
	"fire":        2,
	"hire":        2,
	"tired":       2,
	"wired":       2,
	"higher":      2,
	"lion":        2,
	"quiet":       2,
	"diet":        2,
	"riot":        2,
	"science":     2,
	"violence":    3,
	"seattle":     3,
	"people":      2,
	"little":      2,
	"middle":      2,
	"purple":      2,
	"simple":      2,
	"temple":      2,
	"able":        2,
	"table":       2,
	"cable":       2,
	"fable":       2,
}

// FarewellRules match departure/unsubscribe announcements. Evaluated in
// order; every matching rule contributes to the confidence score.
var FarewellRules = []Rule{
	{ID: "first_person_departure", Re: regexp.MustCompile(`(?i)\b(i('m|am)|i('ve| have)) (unsubscrib(ed|ing)|leav(ing|e)|done with|quit(ting)?)\b`)},
	{ID: "unsubscribed_from_sub", Re: regexp.MustCompile(`(?i)\bunsubscribed?\s+(from\s+)?(this|the) (sub|subreddit)\b`)},
	{ID: "sub_gone_bad", Re: regexp.MustCompile(`(?i)\b(this|the) (sub|subreddit) (is|has) (gone|become|turned) (to\s+)?(shit|trash|garbage|toxic)`)},
	{ID: "dramatic_farewell", Re: regexp.MustCompile(`(?i)\b(goodbye|farewell|adios|so long|peace out),?\s*(r/|this sub|everyone)`)},
	{ID: "used_to_love", Re: regexp.MustCompile(`(?i)\bused to (love|enjoy|like) this (sub|place|subreddit)\b`)},
	{ID: "sub_used_to_be", Re: regexp.MustCompile(`(?i)\b(this|the) sub(reddit)? (used to be|was) (good|great|better)\b`)},
	{ID: "im_out", Re: regexp.MustCompile(`(?i)\b(i('m| am)|time to) (out|leaving|gone|outta here)\b`)},
	{ID: "thats_it_im_done", Re: regexp.MustCompile(`(?i)\bthat's it,?\s*(i'm|i am) (done|out|leaving)\b`)},
	{ID: "cant_take_anymore", Re: regexp.MustCompile(`(?i)\b(can't|cannot) (take|stand|handle) this (sub|subreddit) anymore\b`)},
	{ID: "leaving_then_toxic", Re: regexp.MustCompile(`(?i)\b(leaving|unsubbing|done)\b.*\b(toxic|echo.?chamber|circle.?jerk|hive.?mind)\b`)},
	{ID: "toxic_then_leaving", Re: regexp.MustCompile(`(?i)\b(toxic|echo.?chamber|circle.?jerk)\b.*\b(leaving|unsubbing|done)\b`)},
}

// FarewellNegationRules veto a farewell detection outright: questions about
// unsubscribing, hesitation, or telling others not to leave.
var FarewellNegationRules = []Rule{
	{ID: "asking_how", Re: regexp.MustCompile(`(?i)\bhow (do|can) (i|you) unsubscribe\b`)},
	{ID: "considering", Re: regexp.MustCompile(`(?i)\b(should i|thinking about) (unsubscrib|leav)`)},
	{ID: "telling_others_stay", Re: regexp.MustCompile(`(?i)\bdon't (leave|unsubscribe)\b`)},
	{ID: "asking_why_others", Re: regexp.MustCompile(`(?i)\bwhy (did|are) (you|people) (leaving|unsubscribing)\b`)},
}

// FarewellContextKeywords boost farewell confidence when present as
// case-insensitive substrings.
var FarewellContextKeywords = []string{
	"downhill",
	"used to be",
	"anymore",
	"toxic",
	"echo chamber",
	"circlejerk",
	"hivemind",
	"unsubscribed",
	"unsubscribing",
	"leaving",
	"goodbye",
	"farewell",
	"done with",
	"fed up",
	"last straw",
	"final straw",
}

// PoliticalComplaintRules match echo-chamber/partisan complaints. First
// match wins.
var PoliticalComplaintRules = []Rule{
	{ID: "right_wing_sub", Re: regexp.MustCompile(`(?i)(this|the) (sub|subreddit) (is|has become|turned into) (a|an)? ?(trump|maga|conservative|right.?wing|republican) (sub|subreddit|echo.?chamber)`)},
	{ID: "left_wing_sub", Re: regexp.MustCompile(`(?i)(this|the) (sub|subreddit) (is|has become|turned into) (a|an)? ?(leftist|liberal|progressive|democrat) (sub|subreddit|echo.?chamber)`)},
	{ID: "trump_sub", Re: regexp.MustCompile(`(?i)trump (sub|subreddit)`)},
	{ID: "echo_chamber_politics", Re: regexp.MustCompile(`(?i)(echo.?chamber|circle.?jerk|hive.?mind).*(politics|political|partisan)`)},
	{ID: "politics_echo_chamber", Re: regexp.MustCompile(`(?i)(politics|political|partisan).*(echo.?chamber|circle.?jerk|hive.?mind)`)},
	{ID: "biased_moderation", Re: regexp.MustCompile(`(?i)biased (towards?|against) (the )?(left|right|conservatives?|liberals?|republicans?|democrats?)`)},
	{ID: "everyone_votes_same", Re: regexp.MustCompile(`(?i)all (you )?(people|guys|everyone) (here )?(are|vote) (the same|republican|democrat|trump|liberal)`)},
}

// Markers deciding which way a matched political complaint leans.
var (
	RightLeaningMarkers = regexp.MustCompile(`(?i)trump|maga|conservative|right.?wing|republican`)
	LeftLeaningMarkers  = regexp.MustCompile(`(?i)leftist|liberal|progressive|democrat`)
)

// Crosslink extraction patterns. Bare mentions have no lookaround support
// under RE2, so the detector checks the surrounding runes itself.
var (
	FullRedditURL        = regexp.MustCompile(`(?i)https?://(?:www\.)?(?:old\.)?reddit\.com/r/([a-zA-Z0-9_]+)(?:/comments/([a-z0-9]+))?(?:/[^/\s]*)?(?:/([a-z0-9]+))?`)
	ShortRedditURL       = regexp.MustCompile(`(?i)https?://redd\.it/([a-z0-9]+)`)
	BareSubredditMention = regexp.MustCompile(`(?i)r/[a-zA-Z0-9_]{2,21}`)
)

// Tone fallback keyword sets, checked as case-insensitive substrings.
var (
	HostileKeywords = []string{
		"hate", "awful", "terrible", "worst", "garbage", "trash",
		"stupid", "idiots", "morons", "losers", "pathetic",
		"fuck", "shit", "damn", "hell", "ass",
	}

	FrustratedKeywords = []string{
		"annoying", "frustrated", "tired of", "sick of", "fed up",
		"ridiculous", "absurd", "unbelievable", "seriously",
	}

	DramaticKeywords = []string{
		"never", "always", "everyone", "nobody", "completely",
		"absolutely", "literally", "worst ever", "best ever",
		"!!!", "???", "omg", "wtf",
	}

	PoliteKeywords = []string{
		"please", "thank you", "appreciate", "kind", "helpful",
		"great", "wonderful", "love", "enjoy", "welcome",
	}
)

// farewellQuickKeywords covers every branch of the farewell and negation
// cascades: each rule has at least one alternation group whose every literal
// contains one of these substrings, so a text containing none of them cannot
// match any rule.
var farewellQuickKeywords = []string{
	"unsub",
	"leav",
	"done",
	"quit",
	"goodbye",
	"farewell",
	"adios",
	"so long",
	"peace out",
	"used to",
	"was good",
	"was great",
	"was better",
	"i'm out",
	"i am out",
	"time to",
	"gone",
	"outta here",
	"can't",
	"cannot",
	"shit",
	"trash",
	"garbage",
	"toxic",
}

// CouldBeFarewell is a cheap pre-filter: false means no farewell or negation
// rule can match, so the cascade can be skipped. Performance only; the
// detector result is identical either way.
func CouldBeFarewell(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range farewellQuickKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return false
}
