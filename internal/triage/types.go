package triage

import (
	"time"

	"github.com/google/uuid"
)

// Route identifies which modality pipeline handled a request.
type Route string

const (
	RouteTextOnly     Route = "text_only"
	RouteImageOnly    Route = "image_only"
	RouteImageAndText Route = "image_and_text"
)

// GuidanceSource distinguishes model-generated guidance from the static
// advisory fallback, so callers cannot mistake a degraded answer for a
// generated one.
type GuidanceSource string

const (
	GuidanceSourceModel    GuidanceSource = "model"
	GuidanceSourceAdvisory GuidanceSource = "advisory"
)

// Guidance is the first-aid text attached to a reply.
type Guidance struct {
	Text   string
	Source GuidanceSource
}

// ChatMessage is the persisted transcript record of one triage exchange.
type ChatMessage struct {
	ID              uuid.UUID
	UserID          int64
	UserMessage     string
	AIResponse      string
	ImagePath       string
	ImagePrediction string
	CreatedAt       time.Time
}

// --- UseCase Inputs ---

type SendInput struct {
	Message   string
	Image     []byte
	ImageName string
}

type HistoryInput struct {
	Cursor *string
	Limit  int
}

// --- UseCase Outputs ---

type SendOutput struct {
	Reply           string
	Route           Route
	ImagePrediction string // empty when no image was submitted
}

type HistoryOutput struct {
	Messages   []ChatMessage
	NextCursor *string
}
