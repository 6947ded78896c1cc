package dto

type SpeakRequest struct {
	Text    string `json:"text" validate:"required"`
	VoiceId string `json:"voice_id,omitempty"`
}
