package classifier

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestPrediction(t *testing.T) {
	t.Run("Known Label", func(t *testing.T) {
		p := newPrediction(0, 0.87)
		if !p.Known() {
			t.Errorf("index 0 should map to a known label")
		}
		if p.Label != "Melanoma" {
			t.Errorf("expected Melanoma, got %q", p.Label)
		}
	})

	t.Run("Unknown Index Synthesizes Class Name", func(t *testing.T) {
		p := newPrediction(9, 0.5)
		if p.Known() {
			t.Errorf("index 9 should be unknown")
		}
		if got := p.DisplayLabel(); got != "Class_9" {
			t.Errorf("expected Class_9, got %q", got)
		}
	})

	t.Run("All Labels Covered", func(t *testing.T) {
		want := []string{
			"Melanoma", "Nevus", "Basal Cell Carcinoma", "Actinic Keratosis",
			"Benign Keratosis", "Dermatofibroma", "Vascular Lesion",
		}
		for i, label := range want {
			if got := newPrediction(i, 0).Label; got != label {
				t.Errorf("index %d: expected %q, got %q", i, label, got)
			}
		}
	})

	t.Run("String Format", func(t *testing.T) {
		p := newPrediction(0, 0.87)
		if got := p.String(); got != "Melanoma (confidence: 87.00%)" {
			t.Errorf("unexpected rendering: %q", got)
		}
		p = newPrediction(12, 0.333)
		if got := p.String(); got != "Class_12 (confidence: 33.30%)" {
			t.Errorf("unexpected rendering: %q", got)
		}
	})
}

func TestArgMax(t *testing.T) {
	cases := []struct {
		name  string
		probs []float32
		index int
		value float32
	}{
		{"Single", []float32{0.4}, 0, 0.4},
		{"Max In Middle", []float32{0.1, 0.7, 0.2}, 1, 0.7},
		{"Max At End", []float32{0.1, 0.2, 0.7}, 2, 0.7},
		{"Ties Keep First", []float32{0.5, 0.5}, 0, 0.5},
		{"Negative Logits", []float32{-3, -1, -2}, 1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, val := argMax(tc.probs)
			if idx != tc.index || val != tc.value {
				t.Errorf("expected (%d, %v), got (%d, %v)", tc.index, tc.value, idx, val)
			}
		})
	}
}

func TestClassifyMissingArtifact(t *testing.T) {
	c := New(Config{ModelPath: "testdata/does-not-exist.onnx"}, &mockLogger{})
	t.Cleanup(func() { _ = c.Close() })

	_, err := c.Classify(context.Background(), []byte{0x00})
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}

	// A second call inside the failure window must return the cached error.
	_, err2 := c.Classify(context.Background(), []byte{0x00})
	if !errors.Is(err2, ErrModelUnavailable) {
		t.Errorf("expected cached ErrModelUnavailable, got %v", err2)
	}
}

func TestPreprocess(t *testing.T) {
	encodePNG := func(t *testing.T, img image.Image) []byte {
		t.Helper()
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatalf("encode fixture: %v", err)
		}
		return buf.Bytes()
	}

	t.Run("Shape And Normalization", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.Set(x, y, color.RGBA{R: 255, G: 0, B: 127, A: 255})
			}
		}
		data, err := preprocess(encodePNG(t, img), 4, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) != 4*4*3 {
			t.Fatalf("expected %d floats, got %d", 4*4*3, len(data))
		}
		for i, v := range data {
			if v < 0 || v > 1 {
				t.Fatalf("value %d out of [0,1]: %v", i, v)
			}
		}
		// Uniform source image survives resampling exactly.
		if data[0] != 1.0 {
			t.Errorf("expected red channel 1.0, got %v", data[0])
		}
		if data[1] != 0.0 {
			t.Errorf("expected green channel 0.0, got %v", data[1])
		}
	})

	t.Run("Resize Up", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 2, 2))
		data, err := preprocess(encodePNG(t, img), 224, 224)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) != 224*224*3 {
			t.Errorf("expected %d floats, got %d", 224*224*3, len(data))
		}
	})

	t.Run("Invalid Bytes", func(t *testing.T) {
		if _, err := preprocess([]byte("not an image"), 4, 4); err == nil {
			t.Errorf("expected decode error")
		}
	})
}
