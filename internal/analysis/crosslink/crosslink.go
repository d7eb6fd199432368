// Package crosslink extracts references to other subreddits from text.
package crosslink

import (
	"strings"

	"github.com/eastrand/modsignal/internal/analysis/patterns"
	"github.com/eastrand/modsignal/internal/core/domain"
)

// SubredditUnknown marks short-form links where only the post id survives.
const SubredditUnknown = "unknown"

// Detect finds subreddit references in text. Three pattern classes run in
// fixed order (full URLs, short URLs, bare r/name mentions), appending to
// one list while deduplicating by canonical URL. excludeSubreddit filters
// matches case-insensitively; it cannot apply to short URLs, where the
// subreddit is unrecoverable.
func Detect(text, excludeSubreddit string) domain.CrosslinkResult {
	var links []domain.CrosslinkMatch

	seen := make(map[string]bool)

	for _, m := range patterns.FullRedditURL.FindAllStringSubmatch(text, -1) {
		fullURL := m[0]
		subreddit := m[1]

		if excluded(subreddit, excludeSubreddit) || seen[fullURL] {
			continue
		}

		seen[fullURL] = true

		links = append(links, domain.CrosslinkMatch{
			Subreddit: subreddit,
			FullURL:   fullURL,
			PostID:    m[2],
			CommentID: m[3],
		})
	}

	for _, m := range patterns.ShortRedditURL.FindAllStringSubmatch(text, -1) {
		fullURL := m[0]
		if seen[fullURL] {
			continue
		}

		seen[fullURL] = true

		links = append(links, domain.CrosslinkMatch{
			Subreddit: SubredditUnknown,
			FullURL:   fullURL,
			PostID:    m[1],
		})
	}

	for _, idx := range patterns.BareSubredditMention.FindAllStringIndex(text, -1) {
		if !standaloneMention(text, idx[0], idx[1]) {
			continue
		}

		subreddit := text[idx[0]+2 : idx[1]]
		fullURL := "https://reddit.com/r/" + subreddit

		if excluded(subreddit, excludeSubreddit) || seen[fullURL] {
			continue
		}

		// A URL match already covering this subreddit wins over the bare
		// mention.
		if hasSubreddit(links, subreddit) {
			continue
		}

		seen[fullURL] = true

		links = append(links, domain.CrosslinkMatch{
			Subreddit: subreddit,
			FullURL:   fullURL,
		})
	}

	return domain.CrosslinkResult{
		Detected: len(links) > 0,
		Links:    links,
	}
}

// standaloneMention verifies the r/name match is not embedded in a URL path
// or a longer word. RE2 has no lookarounds, so the boundary runes are
// checked here instead.
func standaloneMention(text string, start, end int) bool {
	if start > 0 {
		prev := text[start-1]
		if prev == '/' || isWordByte(prev) {
			return false
		}
	}

	if end < len(text) {
		next := text[end]
		if next == '/' || isWordByte(next) {
			return false
		}
	}

	return true
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func excluded(subreddit, excludeSubreddit string) bool {
	return excludeSubreddit != "" && strings.EqualFold(subreddit, excludeSubreddit)
}

func hasSubreddit(links []domain.CrosslinkMatch, subreddit string) bool {
	for _, l := range links {
		if strings.EqualFold(l.Subreddit, subreddit) {
			return true
		}
	}

	return false
}
