package usecase

import (
	"context"
	"strings"

	"arogyaai/internal/triage"
	"arogyaai/internal/triage/repository"
)

// Send routes one request through the modality pipeline:
//
//	text only           issue(text)                → guidance(issue, text)
//	image only          classify → issue(predict)  → guidance(issue)
//	image and text      classify → issue(text, p)  → guidance(issue, text)
//
// Classifier failures are fatal to the request — the user explicitly
// submitted an image, and silently skipping it would be misleading.
// Guidance failures never are. The transcript is persisted before the
// reply is returned.
func (uc *implUseCase) Send(ctx context.Context, userID int64, input triage.SendInput) (triage.SendOutput, error) {
	message := strings.TrimSpace(input.Message)
	hasText := message != ""
	hasImage := len(input.Image) > 0

	if !hasText && !hasImage {
		return triage.SendOutput{}, triage.ErrEmptyInput
	}

	var route triage.Route
	switch {
	case hasText && !hasImage:
		route = triage.RouteTextOnly
	case hasImage && !hasText:
		route = triage.RouteImageOnly
	default:
		route = triage.RouteImageAndText
	}

	var imagePrediction string
	if hasImage {
		prediction, err := uc.classifier.Classify(ctx, input.Image)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Send Classify: %v", err)
			return triage.SendOutput{}, err
		}
		imagePrediction = prediction.String()
	}

	// The identifier only sees the text when text was actually submitted;
	// the image prediction wins either way.
	textForIssue := ""
	if hasText {
		textForIssue = message
	}
	issue := identifyIssue(textForIssue, imagePrediction)

	guidance := uc.generateGuidance(ctx, issue, textForIssue)

	reply := issue + "\n\nFirst Aid:\n" + guidance.Text

	imagePath := ""
	if hasImage {
		imagePath = input.ImageName
	}

	if _, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		UserID:          userID,
		UserMessage:     message,
		AIResponse:      reply,
		ImagePath:       imagePath,
		ImagePrediction: imagePrediction,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Send CreateMessage: %v", err)
		return triage.SendOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Send: user=%d route=%s guidance=%s", userID, route, guidance.Source)

	return triage.SendOutput{
		Reply:           reply,
		Route:           route,
		ImagePrediction: imagePrediction,
	}, nil
}
