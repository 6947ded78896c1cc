package prompt

import "strings"

// EmotionAnalysis is the client-supplied read of the user's message.
type EmotionAnalysis struct {
	DominantEmotion   string `json:"dominantEmotion"`
	Justification     string `json:"justification"`
	SuggestedResponse string `json:"suggestedResponse"`
}

// Neutral defaults used when the client sends nothing usable.
const (
	NeutralEmotion           = "Neutral"
	NeutralJustification     = "No emotion analysis provided for this message."
	NeutralSuggestedResponse = "How are you feeling about that?"
)

const MoodNotAvailable = "Not available."

// NormalizeEmotion fills missing fields with the neutral defaults.
func NormalizeEmotion(e *EmotionAnalysis) EmotionAnalysis {
	if e == nil {
		return EmotionAnalysis{
			DominantEmotion:   NeutralEmotion,
			Justification:     NeutralJustification,
			SuggestedResponse: NeutralSuggestedResponse,
		}
	}

	out := *e
	if out.DominantEmotion == "" {
		out.DominantEmotion = NeutralEmotion
	}
	if out.Justification == "" {
		out.Justification = NeutralJustification
	}
	if out.SuggestedResponse == "" {
		out.SuggestedResponse = NeutralSuggestedResponse
	}
	return out
}

// ConversationContext renders the retrieved documents block.
func ConversationContext(docs []string) string {
	var b strings.Builder
	b.WriteString("Previous conversation (for context):\n")
	if len(docs) > 0 {
		b.WriteString(strings.Join(docs, "\n"))
	} else {
		b.WriteString("No relevant past conversations found.")
	}
	return b.String()
}

// Chat assembles the grounded prompt for one conversational turn.
func Chat(message, lastMood string, emotion EmotionAnalysis, docs []string) string {
	if lastMood == "" {
		lastMood = MoodNotAvailable
	}

	var b strings.Builder
	b.WriteString("**Persona**: You are a compassionate and conversational friend to the user.\n")
	b.WriteString("**User's Last Logged Mood**: " + lastMood + "\n")
	b.WriteString("**Emotion Analysis**:\n")
	b.WriteString("  - Dominant Emotion: " + emotion.DominantEmotion + "\n")
	b.WriteString("  - Justification: " + emotion.Justification + "\n")
	b.WriteString("  - Suggested Response: " + emotion.SuggestedResponse + "\n\n")
	b.WriteString("**Conversation Context**:\n")
	b.WriteString(ConversationContext(docs) + "\n\n")
	b.WriteString("**User's new message**: \"" + message + "\"\n\n")
	b.WriteString(`**Instructions**:
- Respond in a warm, empathetic tone, acknowledging the user's emotional state based on the analysis and their last logged mood.
- Acknowledge the user's last logged mood empathetically without directly quoting them word-for-word.
- Paraphrase or gently summarize their feelings before guiding the conversation forward.
- Respond based on both the user's current emotional state and their last logged mood.
- If there is a difference, gently check in to see if things have improved or changed.
- Use the conversation history to provide a contextually relevant and coherent response.
- Guide the conversation forward with open-ended, non-leading questions.
- Do not simply repeat or rephrase what the user has said.
- Keep your answers to 2-3 short sentences.
- Avoid lengthy explanations or long paragraphs unless necessary.
- Use simple language that is easy to read.
- Encourage the user to share more by asking gentle, open-ended questions.
- The response should be catered to present day youth, so understand and react appropriately to their concerns and language.

Example response:
"I'm sorry you're feeling low today. Do you think your friend's post might be affecting you? Or is something else going on? I'm here whenever you want to talk."
`)
	return b.String()
}
