package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTitle(t *testing.T) {
	t.Run("short message is used as-is", func(t *testing.T) {
		assert.Equal(t, "Feeling a bit off today", sessionTitle("Feeling a bit off today"))
	})

	t.Run("long message is truncated with ellipsis", func(t *testing.T) {
		message := strings.Repeat("a", 60)
		title := sessionTitle(message)
		assert.Equal(t, strings.Repeat("a", 40)+"...", title)
	})

	t.Run("exactly forty runes is kept whole", func(t *testing.T) {
		message := strings.Repeat("b", 40)
		assert.Equal(t, message, sessionTitle(message))
	})

	t.Run("truncation counts runes, not bytes", func(t *testing.T) {
		message := strings.Repeat("å", 50)
		title := sessionTitle(message)
		assert.Equal(t, strings.Repeat("å", 40)+"...", title)
	})
}
