package usecase

import (
	"context"

	"arogyaai/internal/classifier"
	"arogyaai/internal/triage"
	"arogyaai/internal/triage/repository"
	"arogyaai/pkg/groq"

	"github.com/google/uuid"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock classifier for testing
type mockClassifier struct {
	classifyFunc func(imageBytes []byte) (classifier.Prediction, error)
}

func (m *mockClassifier) Classify(ctx context.Context, imageBytes []byte) (classifier.Prediction, error) {
	if m.classifyFunc != nil {
		return m.classifyFunc(imageBytes)
	}
	return classifier.Prediction{}, nil
}

// Mock Groq client for testing
type mockGroqClient struct {
	response *groq.Response
	err      error
}

func (m *mockGroqClient) ChatCompletion(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	return m.response, m.err
}

// Mock transcript repository for testing
type mockRepo struct {
	createFunc func(opt repository.CreateMessageOptions) (triage.ChatMessage, error)
	listFunc   func(opt repository.ListMessagesOptions) ([]triage.ChatMessage, *string, error)

	created []repository.CreateMessageOptions
}

func (m *mockRepo) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (triage.ChatMessage, error) {
	m.created = append(m.created, opt)
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return triage.ChatMessage{ID: uuid.New(), UserID: opt.UserID}, nil
}

func (m *mockRepo) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]triage.ChatMessage, *string, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil, nil
}
