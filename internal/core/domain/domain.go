package domain

// ContentType distinguishes the two analyzable item kinds.
type ContentType string

const (
	ContentTypeComment ContentType = "comment"
	ContentTypePost    ContentType = "post"
)

// ContentItem is one piece of user-generated content entering analysis.
// Items are constructed by the caller and never mutated by the engine.
type ContentItem struct {
	ID        string      `json:"id"`
	Type      ContentType `json:"type"`
	Body      string      `json:"body"`
	Title     string      `json:"title,omitempty"`
	Author    string      `json:"author"`
	Subreddit string      `json:"subreddit"`
}

// Text returns the analyzable text: title and body joined when a title exists.
func (c ContentItem) Text() string {
	if c.Title != "" {
		return c.Title + "\n\n" + c.Body
	}

	return c.Body
}

// HaikuResult reports a 5-7-5 syllable segmentation of the input.
type HaikuResult struct {
	Detected  bool     `json:"detected"`
	Lines     []string `json:"lines,omitempty"`
	Syllables []int    `json:"syllables,omitempty"`
}

// FarewellResult reports an unsubscribe/departure announcement.
type FarewellResult struct {
	Detected        bool     `json:"detected"`
	Confidence      float64  `json:"confidence"`
	MatchedPatterns []string `json:"matched_patterns,omitempty"`
}

// ComplaintType categorizes which direction a political complaint leans.
type ComplaintType string

const (
	ComplaintRightLeaning ComplaintType = "right-leaning"
	ComplaintLeftLeaning  ComplaintType = "left-leaning"
	ComplaintGeneral      ComplaintType = "general"
)

// PoliticalComplaintResult reports an echo-chamber/partisan complaint.
type PoliticalComplaintResult struct {
	Detected       bool          `json:"detected"`
	ComplaintType  ComplaintType `json:"complaint_type,omitempty"`
	MatchedPattern string        `json:"matched_pattern,omitempty"`
}

// CrosslinkMatch is a single reference to another subreddit found in text.
// Subreddit is "unknown" for short-form links where only a post id survives.
type CrosslinkMatch struct {
	Subreddit string `json:"subreddit"`
	FullURL   string `json:"full_url"`
	PostID    string `json:"post_id,omitempty"`
	CommentID string `json:"comment_id,omitempty"`
}

// CrosslinkResult reports all subreddit references found in the input.
type CrosslinkResult struct {
	Detected bool             `json:"detected"`
	Links    []CrosslinkMatch `json:"links,omitempty"`
}

// Tone is the surface emotional register of a piece of text.
type Tone string

const (
	TonePolite     Tone = "polite"
	ToneNeutral    Tone = "neutral"
	ToneFrustrated Tone = "frustrated"
	ToneHostile    Tone = "hostile"
	ToneDramatic   Tone = "dramatic"
)

// Classification is the moderation-facing bucket derived from tone.
type Classification string

const (
	ClassificationFriendly    Classification = "friendly"
	ClassificationNeutral     Classification = "neutral"
	ClassificationAdversarial Classification = "adversarial"
	ClassificationHateful     Classification = "hateful"
)

// ToneResult is the tone classifier output. Always populated: classification
// falls back to a keyword heuristic when no capability is available.
type ToneResult struct {
	Tone           Tone           `json:"tone"`
	Confidence     float64        `json:"confidence"`
	Classification Classification `json:"classification"`
	TriggerPhrase  string         `json:"trigger_phrase,omitempty"`
}

// Detections bundles one result of each detector kind.
type Detections struct {
	Haiku              HaikuResult              `json:"haiku"`
	Farewell           FarewellResult           `json:"farewell"`
	PoliticalComplaint PoliticalComplaintResult `json:"political_complaint"`
	Crosslink          CrosslinkResult          `json:"crosslink"`
	Tone               ToneResult               `json:"tone"`
}

// Event names emitted by the orchestrator.
const (
	EventHaikuDetection       = "haiku_detection"
	EventFarewellAnnouncement = "farewell_announcement"
	EventPoliticalComplaint   = "political_complaint"
	EventHostileCrosslink     = "hostile_crosslink"
)

// AggregatedAnalysis is the orchestrator output for one content item.
type AggregatedAnalysis struct {
	ID               string      `json:"id"`
	Type             ContentType `json:"type"`
	Subreddit        string      `json:"subreddit"`
	Author           string      `json:"author"`
	Detections       Detections  `json:"detections"`
	EventsEmitted    []string    `json:"events_emitted"`
	ProcessingTimeMs int64       `json:"processing_time_ms"`
}

// EventRecord is one aggregated community event from an external source.
// DateStart and DateEnd are calendar dates in YYYY-MM-DD form so that
// lexicographic comparison orders them; SubmittedAt is an ISO-8601 timestamp.
type EventRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	DateStart   string `json:"date_start"`
	DateEnd     string `json:"date_end,omitempty"`
	Location    string `json:"location,omitempty"`
	Source      string `json:"source"`
	SubmittedAt string `json:"submitted_at"`
	Approved    bool   `json:"approved"`
}
