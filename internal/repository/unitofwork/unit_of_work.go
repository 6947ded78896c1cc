package unitofwork

import (
	"context"

	"luma-companion-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	UserProviderRepository() contract.UserProviderRepository
	ProfileRepository() contract.ProfileRepository

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository

	MoodEntryRepository() contract.MoodEntryRepository
	JournalEntryRepository() contract.JournalEntryRepository
	ReminderRepository() contract.ReminderRepository
	MotivationRepository() contract.MotivationRepository

	CommunityPostRepository() contract.CommunityPostRepository
	CommunityVoteRepository() contract.CommunityVoteRepository

	NotificationRepository() contract.NotificationRepository
}
