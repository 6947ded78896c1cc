package prompt

import "strings"

const checkinSnippetLen = 100

// Checkin assembles the proactive check-in prompt from the user's last mood
// and recent journal snippets.
func Checkin(lastMood string, journalEntries []string) string {
	var b strings.Builder
	b.WriteString("You are Luma, a caring AI companion. Your task is to write a short, gentle, and supportive check-in message (1-2 sentences) to a user based on their recent activity. Do not offer solutions. Your only goal is to open a door for conversation. Start the message with a warm greeting. Here's the context on the user:\n")

	if lastMood != "" {
		b.WriteString("- Their last logged mood was: " + lastMood + ".\n")
	} else {
		b.WriteString("- They haven't logged their mood recently.\n")
	}

	if len(journalEntries) > 0 {
		snippets := make([]string, len(journalEntries))
		for i, content := range journalEntries {
			snippets[i] = truncateRunes(content, checkinSnippetLen) + "..."
		}
		b.WriteString("- Here are snippets from their recent journal entries:\n- \"" + strings.Join(snippets, "\"\n- \"") + "\"\n")
	} else {
		b.WriteString("- They haven't written in their journal recently.\n")
	}

	b.WriteString("\nBased on this, write a gentle, open-ended check-in. For example: 'Hey, I was just thinking of you. How have things been feeling lately?' or 'Hi there, I saw you were feeling a bit down yesterday. Just wanted to gently check in and see how you are today?'")
	return b.String()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
