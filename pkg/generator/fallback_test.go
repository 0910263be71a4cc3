package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	ts := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestFallback_Post(t *testing.T) {
	f := &Fallback{now: fixedClock()}

	text := f.Content(KindPost, "")
	require.NotEmpty(t, text)
	assert.Contains(t, text, "# Today's AI and Technology Update")
	assert.Contains(t, text, "Want to join the discussion?")
	assert.Contains(t, text, "Generated at: 2025-06-15 10:30:00")
}

func TestFallback_GenericComment(t *testing.T) {
	f := &Fallback{now: fixedClock()}

	text := f.Content(KindComment, "")
	require.NotEmpty(t, text)
	assert.Contains(t, text, "Thank you for sharing this interesting perspective!")
	assert.Contains(t, text, "Comment generated at: 2025-06-15 10:30:00")
}

func TestFallback_Contextual(t *testing.T) {
	f := &Fallback{now: fixedClock()}

	tests := []struct {
		name     string
		title    string
		contains string
	}{
		{
			name:     "learn keyword",
			title:    "How to learn ML",
			contains: "Great learning resource!",
		},
		{
			name:  "help wins over project, table order is priority",
			title: "I need help with my project",
			// "project" appears earlier in the string but "help" comes first in the table
			contains: "Thanks for reaching out to the community!",
		},
		{
			name:     "project keyword",
			title:    "My first project in Go",
			contains: "Exciting project!",
		},
		{
			name:     "case insensitive match",
			title:    "LEARNING resources for beginners",
			contains: "Great learning resource!",
		},
		{
			name:     "no keyword falls back to default",
			title:    "Random topic",
			contains: "Thanks for sharing this interesting topic!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := f.Content(KindComment, tt.title)
			assert.Contains(t, text, tt.contains)
		})
	}
}

func TestFallback_ContextualDeterministic(t *testing.T) {
	f := &Fallback{now: fixedClock()}

	first := f.Content(KindComment, "help me please")
	second := f.Content(KindComment, "help me please")
	assert.Equal(t, first, second, "same input and clock must produce identical text")
}

func TestFallback_DefaultHasTimestamp(t *testing.T) {
	f := &Fallback{now: fixedClock()}

	text := f.Content(KindComment, "something unrelated")
	assert.Contains(t, text, "Generated at: 2025-06-15 10:30:00")
}
