package http

import "arogyaai/internal/user"

// --- Request DTOs ---

type signupReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

func (r signupReq) toInput() user.SignupInput {
	return user.SignupInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type signupResp struct {
	Message string `json:"message"`
}

type loginResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newLoginResp(output user.LoginOutput) loginResp {
	return loginResp{
		AccessToken: output.AccessToken,
		TokenType:   "bearer",
	}
}
