package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmotion(t *testing.T) {
	t.Run("nil analysis gets all neutral defaults", func(t *testing.T) {
		out := NormalizeEmotion(nil)
		assert.Equal(t, NeutralEmotion, out.DominantEmotion)
		assert.Equal(t, NeutralJustification, out.Justification)
		assert.Equal(t, NeutralSuggestedResponse, out.SuggestedResponse)
	})

	t.Run("missing fields are filled individually", func(t *testing.T) {
		out := NormalizeEmotion(&EmotionAnalysis{DominantEmotion: "Sadness"})
		assert.Equal(t, "Sadness", out.DominantEmotion)
		assert.Equal(t, NeutralJustification, out.Justification)
		assert.Equal(t, NeutralSuggestedResponse, out.SuggestedResponse)
	})

	t.Run("complete analysis passes through untouched", func(t *testing.T) {
		in := &EmotionAnalysis{
			DominantEmotion:   "Joy",
			Justification:     "Upbeat phrasing throughout.",
			SuggestedResponse: "That sounds wonderful, tell me more!",
		}
		out := NormalizeEmotion(in)
		assert.Equal(t, *in, out)
	})
}

func TestConversationContext(t *testing.T) {
	t.Run("documents are joined under the header", func(t *testing.T) {
		out := ConversationContext([]string{"User: hi\nModel: hello", "User: bye\nModel: take care"})
		assert.True(t, strings.HasPrefix(out, "Previous conversation (for context):\n"))
		assert.Contains(t, out, "User: hi\nModel: hello")
		assert.Contains(t, out, "User: bye\nModel: take care")
	})

	t.Run("empty retrieval states it explicitly", func(t *testing.T) {
		out := ConversationContext(nil)
		assert.Equal(t, "Previous conversation (for context):\nNo relevant past conversations found.", out)
	})
}

func TestChat(t *testing.T) {
	emotion := NormalizeEmotion(nil)

	t.Run("mood falls back when never logged", func(t *testing.T) {
		out := Chat("hello", "", emotion, nil)
		assert.Contains(t, out, "**User's Last Logged Mood**: "+MoodNotAvailable)
	})

	t.Run("logged mood is included verbatim", func(t *testing.T) {
		out := Chat("hello", "anxious", emotion, nil)
		assert.Contains(t, out, "**User's Last Logged Mood**: anxious")
	})

	t.Run("message and context blocks are present", func(t *testing.T) {
		out := Chat("I had a rough day", "calm", emotion, []string{"User: x\nModel: y"})
		assert.Contains(t, out, `**User's new message**: "I had a rough day"`)
		assert.Contains(t, out, "User: x\nModel: y")
		assert.Contains(t, out, "Keep your answers to 2-3 short sentences.")
	})
}

func TestCheckin(t *testing.T) {
	t.Run("no activity produces the empty-state lines", func(t *testing.T) {
		out := Checkin("", nil)
		assert.Contains(t, out, "They haven't logged their mood recently.")
		assert.Contains(t, out, "They haven't written in their journal recently.")
	})

	t.Run("mood and journal snippets are included", func(t *testing.T) {
		out := Checkin("tired", []string{"Short entry."})
		assert.Contains(t, out, "Their last logged mood was: tired.")
		assert.Contains(t, out, `"Short entry...."`)
	})

	t.Run("long journal entries are cut to a hundred runes", func(t *testing.T) {
		long := strings.Repeat("x", 150)
		out := Checkin("", []string{long})
		assert.Contains(t, out, strings.Repeat("x", 100)+"...")
		assert.NotContains(t, out, strings.Repeat("x", 101))
	})
}
