package service

import (
	"context"

	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/pkg/apperror"
	"luma-companion-be/pkg/tts"
)

type ISpeechService interface {
	Speak(ctx context.Context, req *dto.SpeakRequest) ([]byte, error)
}

type speechService struct {
	ttsClient      *tts.Client
	defaultVoiceId string
}

func NewSpeechService(ttsClient *tts.Client, defaultVoiceId string) ISpeechService {
	return &speechService{
		ttsClient:      ttsClient,
		defaultVoiceId: defaultVoiceId,
	}
}

func (s *speechService) Speak(ctx context.Context, req *dto.SpeakRequest) ([]byte, error) {
	voiceId := s.defaultVoiceId
	if req.VoiceId != "" {
		voiceId = req.VoiceId
	}

	audio, err := s.ttsClient.Synthesize(ctx, req.Text, voiceId)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUpstream, "speech synthesis failed", err)
	}

	return audio, nil
}
