package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxImageBytes caps uploads; lesion photos are small.
const maxImageBytes = 10 << 20 // 10 MiB

// processSendReq extracts the multipart form fields: `message` (optional
// text) and `image` (optional file). Presence validation happens in the
// use case, not here.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	req.Message = c.PostForm("message")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return req, nil
		}
		return req, fmt.Errorf("read image field: %w", err)
	}

	if fileHeader.Size > maxImageBytes {
		return req, fmt.Errorf("image exceeds %d bytes", int64(maxImageBytes))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return req, fmt.Errorf("open image upload: %w", err)
	}
	defer file.Close()

	req.Image, err = io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return req, fmt.Errorf("read image upload: %w", err)
	}
	req.ImageName = fileHeader.Filename

	return req, nil
}

// processHistoryReq binds the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
