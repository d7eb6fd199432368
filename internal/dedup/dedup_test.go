package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eastrand/modsignal/internal/core/domain"
)

func record(id, title, description, dateStart string) domain.EventRecord {
	return domain.EventRecord{
		ID:          id,
		Title:       title,
		Description: description,
		URL:         "https://example.com/" + id,
		DateStart:   dateStart,
		Source:      "Eventbrite",
		SubmittedAt: "2026-02-01T10:00:00Z",
		Approved:    true,
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"lowercase", "Jazz Night", "jazz night"},
		{"free_prefix", "Free: Jazz Night", "jazz night"},
		{"sold_out_prefix", "SOLD OUT: Jazz Night", "jazz night"},
		{"location_suffix", "Jazz Night - Seattle", "jazz night"},
		{"whitespace_collapse", "Jazz   Night \t Live", "jazz night live"},
		{"fullwidth_folded", "Ｊａｚｚ Night", "jazz night"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.title))
		})
	}
}

func TestDeduplicateExactDuplicates(t *testing.T) {
	m := New(DefaultThreshold)

	got := m.Deduplicate([]domain.EventRecord{
		record("a", "Jazz Night", "", "2026-03-05"),
		record("b", "free: jazz night", "", "2026-03-05"),
		record("c", "Jazz Night", "", "2026-03-06"),
	})

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestDeduplicateFuzzyKeepsLongerDescription(t *testing.T) {
	m := New(DefaultThreshold)

	got := m.Deduplicate([]domain.EventRecord{
		record("a", "Free: Jazz Night", "short", "2026-03-05"),
		record("b", "jazz night!", "a much longer description of the event", "2026-03-05"),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestDeduplicateFuzzyDiscardsShorterDescription(t *testing.T) {
	m := New(DefaultThreshold)

	got := m.Deduplicate([]domain.EventRecord{
		record("a", "Jazz Night", "a detailed description", "2026-03-05"),
		record("b", "Free: Jazz Night!", "", "2026-03-05"),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestDeduplicateDifferentDatesNeverMerge(t *testing.T) {
	m := New(DefaultThreshold)

	got := m.Deduplicate([]domain.EventRecord{
		record("a", "Jazz Night", "", "2026-03-05"),
		record("b", "Jazz Night!", "", "2026-03-06"),
	})

	assert.Len(t, got, 2)
}

func TestDeduplicateUnrelatedTitlesKept(t *testing.T) {
	m := New(DefaultThreshold)

	got := m.Deduplicate([]domain.EventRecord{
		record("a", "Jazz Night", "", "2026-03-05"),
		record("b", "Pottery Workshop for Beginners", "", "2026-03-05"),
		record("c", "Trail Run at Discovery Park", "", "2026-03-05"),
	})

	assert.Len(t, got, 3)
}

func TestDeduplicatePreservesInsertionOrder(t *testing.T) {
	m := New(DefaultThreshold)

	got := m.Deduplicate([]domain.EventRecord{
		record("a", "Jazz Night", "", "2026-03-05"),
		record("b", "Pottery Workshop", "", "2026-03-05"),
		record("c", "Jazz Night!", "with a longer description", "2026-03-05"),
	})

	// The replacement vacates slot 0 and joins at the end.
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestDeduplicateIdempotent(t *testing.T) {
	m := New(DefaultThreshold)

	input := []domain.EventRecord{
		record("a", "Free: Jazz Night", "short", "2026-03-05"),
		record("b", "jazz night", "longer description here", "2026-03-05"),
		record("c", "Pottery Workshop", "", "2026-03-05"),
		record("d", "Jazz Night", "", "2026-03-06"),
		record("e", "Pottery Workshop", "", "2026-03-05"),
	}

	once := m.Deduplicate(input)
	twice := m.Deduplicate(once)

	assert.Equal(t, once, twice)
}

func TestDeduplicateEmptyAndSingle(t *testing.T) {
	m := New(0) // falls back to the default threshold

	assert.Nil(t, m.Deduplicate(nil))

	single := []domain.EventRecord{record("a", "Jazz Night", "", "2026-03-05")}
	assert.Equal(t, single, m.Deduplicate(single))
}

func TestDeduplicateCustomThreshold(t *testing.T) {
	strict := New(100)
	loose := New(50)

	records := []domain.EventRecord{
		record("a", "Jazz Night Live", "", "2026-03-05"),
		record("b", "Jazz Night", "", "2026-03-05"),
	}

	assert.Len(t, strict.Deduplicate(records), 2)
	assert.Len(t, loose.Deduplicate(records), 1)
}
