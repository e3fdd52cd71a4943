package usecase

import (
	"arogyaai/internal/user"
	"arogyaai/internal/user/repository"
	"arogyaai/pkg/log"
	"arogyaai/pkg/token"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	tokens *token.Manager
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase implementation.
func New(l log.Logger, repo repository.Repository, tokens *token.Manager) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		tokens: tokens,
	}
}
