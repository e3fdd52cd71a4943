package usecase

import (
	"context"

	"arogyaai/internal/triage"
	"arogyaai/internal/triage/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// History lists a user's past exchanges, newest first.
func (uc *implUseCase) History(ctx context.Context, userID int64, input triage.HistoryInput) (triage.HistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if limit < 0 || limit > maxHistoryLimit {
		return triage.HistoryOutput{}, triage.ErrInvalidLimit
	}

	messages, next, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		UserID: userID,
		Cursor: input.Cursor,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListMessages: %v", err)
		return triage.HistoryOutput{}, err
	}

	return triage.HistoryOutput{Messages: messages, NextCursor: next}, nil
}
