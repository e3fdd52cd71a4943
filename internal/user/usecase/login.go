package usecase

import (
	"context"
	"errors"

	"arogyaai/internal/user"
	"arogyaai/internal/user/repository"
)

// Login verifies credentials and issues an access token. Lookup misses and
// password mismatches collapse into the same error so the endpoint does not
// leak which emails are registered.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	account, err := uc.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.LoginOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "uc.Login GetUserByEmail: %v", err)
		return user.LoginOutput{}, err
	}

	ok, err := comparePassword(input.Password, account.PasswordHash)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login comparePassword: %v", err)
		return user.LoginOutput{}, err
	}
	if !ok {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	accessToken, err := uc.tokens.Generate(account.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Generate: %v", err)
		return user.LoginOutput{}, err
	}

	return user.LoginOutput{AccessToken: accessToken}, nil
}
