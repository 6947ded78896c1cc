package service

import (
	"context"
	"encoding/json"
	"fmt"

	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/pkg/logger"
	"luma-companion-be/pkg/rag"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the journal embed topic and writes each entry
// into the author's vector collection.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	retriever *rag.Retriever
	log       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	retriever *rag.Retriever,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		retriever: retriever,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.JournalEmbedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal embed message", map[string]interface{}{"error": err.Error()})
		// Malformed messages would retry forever, drop them.
		msg.Ack()
		return
	}

	recordId := fmt.Sprintf("journal-%s", payload.JournalId)
	if err := cs.retriever.SaveDocument(ctx, payload.UserId, recordId, payload.Content); err != nil {
		cs.log.Warn("consumer", "failed to index journal entry, will retry", map[string]interface{}{
			"journal_id": payload.JournalId.String(),
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
