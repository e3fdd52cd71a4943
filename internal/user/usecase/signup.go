package usecase

import (
	"context"
	"errors"

	"arogyaai/internal/user"
	"arogyaai/internal/user/repository"
)

// Signup registers a new account.
func (uc *implUseCase) Signup(ctx context.Context, input user.SignupInput) (user.SignupOutput, error) {
	hash, err := hashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup hashPassword: %v", err)
		return user.SignupOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return user.SignupOutput{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.Signup CreateUser: %v", err)
		return user.SignupOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Signup: registered user %d", created.ID)
	return user.SignupOutput{User: created}, nil
}
