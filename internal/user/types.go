package user

import "time"

// User is an account that can use the triage API.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// --- UseCase Inputs ---

type SignupInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

type SignupOutput struct {
	User User
}

type LoginOutput struct {
	AccessToken string
}
