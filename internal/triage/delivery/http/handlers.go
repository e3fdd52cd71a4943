package http

import (
	"github.com/gin-gonic/gin"

	"arogyaai/internal/middleware"
	"arogyaai/pkg/response"
)

// Send godoc
// @Summary     Run the triage pipeline
// @Description Accepts free-text symptoms and/or a skin-lesion photo, returns the detected issue with first-aid guidance.
// @Tags        Chat
// @Accept      multipart/form-data
// @Produce     json
// @Param       message formData string false "Symptom description"
// @Param       image   formData file   false "Lesion photograph (JPEG/PNG)"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Neither text nor image supplied"
// @Failure     401 {object} response.Resp "Bad or missing token"
// @Failure     500 {object} response.Resp "Classifier or pipeline failure"
// @Security    BearerAuth
// @Router      /chat/send [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Send(ctx, userID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(output))
}

// History godoc
// @Summary     List past triage exchanges
// @Description Returns the caller's transcript, newest first, cursor-paginated.
// @Tags        Chat
// @Produce     json
// @Param       cursor query string false "Opaque cursor from a previous page"
// @Param       limit  query int    false "Page size (default 20, max 100)"
// @Success     200 {object} historyResp
// @Failure     401 {object} response.Resp "Bad or missing token"
// @Security    BearerAuth
// @Router      /chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, userID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
