package usecase

import (
	"arogyaai/internal/triage"
	"arogyaai/internal/triage/repository"
	"arogyaai/pkg/groq"
	"arogyaai/pkg/log"
)

// implUseCase is the private implementation of triage.UseCase.
type implUseCase struct {
	l          log.Logger
	classifier triage.ImageClassifier
	llm        groq.IGroq // nil when no API credential is configured
	repo       repository.Repository
}

var _ triage.UseCase = (*implUseCase)(nil)

// New creates the triage pipeline. Pass a nil llm when no Groq credential
// is configured; guidance then degrades to the static advisory without a
// network call.
func New(l log.Logger, cls triage.ImageClassifier, llm groq.IGroq, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: cls,
		llm:        llm,
		repo:       repo,
	}
}
