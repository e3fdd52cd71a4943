package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"arogyaai/internal/classifier"
	"arogyaai/internal/triage"
	"arogyaai/internal/triage/repository"
)

var fakeImage = []byte{0xFF, 0xD8, 0xFF}

func TestSend(t *testing.T) {
	predictedNevus := func(imageBytes []byte) (classifier.Prediction, error) {
		return classifier.Prediction{Index: 1, Label: "Nevus", Confidence: 0.915}, nil
	}

	t.Run("Empty Input Error", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockClassifier{}, nil, &mockRepo{})
		_, err := uc.Send(context.Background(), 1, triage.SendInput{Message: "   \t  "})
		if !errors.Is(err, triage.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Text Only Route", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockClassifier{}, nil, repo)
		out, err := uc.Send(context.Background(), 1, triage.SendInput{Message: "I have a burn"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Route != triage.RouteTextOnly {
			t.Errorf("expected text_only route, got %q", out.Route)
		}
		if out.ImagePrediction != "" {
			t.Errorf("expected empty prediction without image, got %q", out.ImagePrediction)
		}
		want := issueBurn + "\n\nFirst Aid:\n" + advisoryNoCredential
		if out.Reply != want {
			t.Errorf("expected reply %q, got %q", want, out.Reply)
		}
	})

	t.Run("Image Only Route", func(t *testing.T) {
		repo := &mockRepo{}
		cls := &mockClassifier{classifyFunc: predictedNevus}
		uc := New(&mockLogger{}, cls, nil, repo)
		out, err := uc.Send(context.Background(), 1, triage.SendInput{Image: fakeImage, ImageName: "lesion.jpg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Route != triage.RouteImageOnly {
			t.Errorf("expected image_only route, got %q", out.Route)
		}
		if out.ImagePrediction != "Nevus (confidence: 91.50%)" {
			t.Errorf("unexpected prediction string: %q", out.ImagePrediction)
		}
		if !strings.HasPrefix(out.Reply, "Image analysis detected: Nevus (confidence: 91.50%)") {
			t.Errorf("expected image issue in reply, got %q", out.Reply)
		}
	})

	t.Run("Image And Text Route Prediction Wins", func(t *testing.T) {
		cls := &mockClassifier{classifyFunc: predictedNevus}
		uc := New(&mockLogger{}, cls, nil, &mockRepo{})
		out, err := uc.Send(context.Background(), 1, triage.SendInput{Message: "I have a fever", Image: fakeImage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Route != triage.RouteImageAndText {
			t.Errorf("expected image_and_text route, got %q", out.Route)
		}
		if !strings.HasPrefix(out.Reply, issueImagePrefix) {
			t.Errorf("expected prediction to override text keywords, got %q", out.Reply)
		}
	})

	t.Run("Classifier Error Is Fatal", func(t *testing.T) {
		cls := &mockClassifier{classifyFunc: func([]byte) (classifier.Prediction, error) {
			return classifier.Prediction{}, classifier.ErrModelUnavailable
		}}
		repo := &mockRepo{}
		uc := New(&mockLogger{}, cls, nil, repo)
		_, err := uc.Send(context.Background(), 1, triage.SendInput{Image: fakeImage})
		if !errors.Is(err, classifier.ErrModelUnavailable) {
			t.Errorf("expected classifier error to propagate, got %v", err)
		}
		if len(repo.created) != 0 {
			t.Errorf("expected no transcript on classifier failure")
		}
	})

	t.Run("Transcript Persisted", func(t *testing.T) {
		repo := &mockRepo{}
		cls := &mockClassifier{classifyFunc: predictedNevus}
		uc := New(&mockLogger{}, cls, nil, repo)
		out, err := uc.Send(context.Background(), 42, triage.SendInput{Message: "a cut", Image: fakeImage, ImageName: "hand.png"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected 1 persisted message, got %d", len(repo.created))
		}
		rec := repo.created[0]
		if rec.UserID != 42 || rec.UserMessage != "a cut" || rec.ImagePath != "hand.png" {
			t.Errorf("unexpected persisted record: %+v", rec)
		}
		if rec.AIResponse != out.Reply {
			t.Errorf("persisted response must equal the returned reply")
		}
	})

	t.Run("Persistence Failure Fails The Request", func(t *testing.T) {
		failing := &mockRepo{createFunc: func(opt repository.CreateMessageOptions) (triage.ChatMessage, error) {
			return triage.ChatMessage{}, errors.New("disk full")
		}}
		uc := New(&mockLogger{}, &mockClassifier{}, nil, failing)
		_, err := uc.Send(context.Background(), 1, triage.SendInput{Message: "fever"})
		if err == nil {
			t.Errorf("expected persistence error to propagate")
		}
	})
}
