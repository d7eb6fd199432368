package crosslink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eastrand/modsignal/internal/core/domain"
)

func TestDetectFullURL(t *testing.T) {
	got := Detect("see https://www.reddit.com/r/golang/comments/abc123/some_title/def456 for details", "")

	require.True(t, got.Detected)
	require.Len(t, got.Links, 1)

	link := got.Links[0]
	assert.Equal(t, "golang", link.Subreddit)
	assert.Equal(t, "abc123", link.PostID)
	assert.Equal(t, "def456", link.CommentID)
}

func TestDetectShortURL(t *testing.T) {
	got := Detect("relevant: https://redd.it/xyz789", "")

	require.Len(t, got.Links, 1)
	assert.Equal(t, SubredditUnknown, got.Links[0].Subreddit)
	assert.Equal(t, "xyz789", got.Links[0].PostID)
}

func TestDetectBareMention(t *testing.T) {
	got := Detect("crossposted from r/AskHistorians yesterday", "")

	require.Len(t, got.Links, 1)
	assert.Equal(t, "AskHistorians", got.Links[0].Subreddit)
	assert.Equal(t, "https://reddit.com/r/AskHistorians", got.Links[0].FullURL)
}

func TestDetectURLWinsOverBareMention(t *testing.T) {
	got := Detect("check r/foo and r/foo again and https://reddit.com/r/foo", "")

	require.Len(t, got.Links, 1)
	assert.Equal(t, "foo", got.Links[0].Subreddit)
	assert.Equal(t, "https://reddit.com/r/foo", got.Links[0].FullURL)
}

func TestDetectEmbeddedMentionIgnored(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"inside_word", "their/our problem"},
		{"inside_path", "https://example.com/r/notasub"},
		{"trailing_word_char", "tl;dr/summary here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text, "")
			assert.False(t, got.Detected)
		})
	}
}

func TestDetectExcludeSubreddit(t *testing.T) {
	got := Detect("from r/Seattle go to r/SeattleWA or https://reddit.com/r/seattle/comments/aa11", "seattle")

	require.Len(t, got.Links, 1)
	assert.Equal(t, "SeattleWA", got.Links[0].Subreddit)
}

func TestDetectExcludeCannotFilterShortURL(t *testing.T) {
	got := Detect("https://redd.it/abc", "seattle")

	require.Len(t, got.Links, 1)
	assert.Equal(t, SubredditUnknown, got.Links[0].Subreddit)
}

func TestDetectOrderAndDedup(t *testing.T) {
	text := "https://reddit.com/r/one https://reddit.com/r/one https://redd.it/p1 r/two"

	got := Detect(text, "")

	require.Len(t, got.Links, 3)
	assert.Equal(t, []domain.CrosslinkMatch{
		{Subreddit: "one", FullURL: "https://reddit.com/r/one"},
		{Subreddit: SubredditUnknown, FullURL: "https://redd.it/p1", PostID: "p1"},
		{Subreddit: "two", FullURL: "https://reddit.com/r/two"},
	}, got.Links)
}

func TestDetectEmptyText(t *testing.T) {
	got := Detect("", "")

	assert.False(t, got.Detected)
	assert.Empty(t, got.Links)
}
