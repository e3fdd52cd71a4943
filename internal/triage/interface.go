package triage

import (
	"context"

	"arogyaai/internal/classifier"
)

// UseCase is the triage pipeline entry point.
type UseCase interface {
	// Send routes one request through the modality pipeline and persists
	// the resulting transcript before returning.
	Send(ctx context.Context, userID int64, input SendInput) (SendOutput, error)

	// History lists a user's transcript, newest first.
	History(ctx context.Context, userID int64, input HistoryInput) (HistoryOutput, error)
}

// ImageClassifier is the consumer-side contract for the skin-lesion model
// adapter. Only the router calls it.
type ImageClassifier interface {
	Classify(ctx context.Context, imageBytes []byte) (classifier.Prediction, error)
}
