package user

import "context"

// UseCase handles account registration and login.
type UseCase interface {
	Signup(ctx context.Context, input SignupInput) (SignupOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
