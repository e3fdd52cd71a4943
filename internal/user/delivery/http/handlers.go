package http

import (
	"github.com/gin-gonic/gin"

	"arogyaai/pkg/response"
)

// Signup godoc
// @Summary     Register a new account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupReq true "Credentials"
// @Success     200 {object} signupResp
// @Failure     400 {object} response.Resp "Invalid payload"
// @Failure     409 {object} response.Resp "Email already registered"
// @Router      /auth/signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.uc.Signup(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Signup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, signupResp{Message: "User registered successfully"})
}

// Login godoc
// @Summary     Exchange credentials for an access token
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Invalid email or password"
// @Router      /auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newLoginResp(output))
}
