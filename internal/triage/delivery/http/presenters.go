package http

import (
	"time"

	"github.com/samber/lo"

	"arogyaai/internal/triage"
)

// --- Request DTOs ---

type sendReq struct {
	Message   string
	Image     []byte
	ImageName string
}

func (r sendReq) toInput() triage.SendInput {
	return triage.SendInput{
		Message:   r.Message,
		Image:     r.Image,
		ImageName: r.ImageName,
	}
}

type historyReq struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit"`
}

func (r historyReq) toInput() triage.HistoryInput {
	input := triage.HistoryInput{Limit: r.Limit}
	if r.Cursor != "" {
		input.Cursor = lo.ToPtr(r.Cursor)
	}
	return input
}

// --- Response DTOs ---

// sendResp matches the public contract: image_prediction is null when no
// image was submitted.
type sendResp struct {
	Reply           string  `json:"reply"`
	Route           string  `json:"route"`
	ImagePrediction *string `json:"image_prediction"`
}

func (h *handler) newSendResp(output triage.SendOutput) sendResp {
	resp := sendResp{
		Reply: output.Reply,
		Route: string(output.Route),
	}
	if output.ImagePrediction != "" {
		resp.ImagePrediction = lo.ToPtr(output.ImagePrediction)
	}
	return resp
}

type historyItem struct {
	ID              string    `json:"id"`
	UserMessage     string    `json:"user_message"`
	AIResponse      string    `json:"ai_response"`
	ImagePath       *string   `json:"image_path"`
	ImagePrediction *string   `json:"image_prediction"`
	CreatedAt       time.Time `json:"created_at"`
}

type historyResp struct {
	Messages   []historyItem `json:"messages"`
	NextCursor *string       `json:"next_cursor"`
}

func (h *handler) newHistoryResp(output triage.HistoryOutput) historyResp {
	items := make([]historyItem, 0, len(output.Messages))
	for _, m := range output.Messages {
		item := historyItem{
			ID:          m.ID.String(),
			UserMessage: m.UserMessage,
			AIResponse:  m.AIResponse,
			CreatedAt:   m.CreatedAt,
		}
		if m.ImagePath != "" {
			item.ImagePath = lo.ToPtr(m.ImagePath)
		}
		if m.ImagePrediction != "" {
			item.ImagePrediction = lo.ToPtr(m.ImagePrediction)
		}
		items = append(items, item)
	}
	return historyResp{Messages: items, NextCursor: output.NextCursor}
}
