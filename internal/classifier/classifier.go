package classifier

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	ort "github.com/yalue/onnxruntime_go"

	"arogyaai/pkg/log"
)

const (
	// defaultInputSize is used when the artifact declares a symbolic
	// (non-positive) spatial dimension.
	defaultInputSize = 224

	defaultFailureWindow = 30 * time.Second
)

// Config describes where to find the model artifact.
type Config struct {
	ModelPath   string
	LibraryPath string // optional override for the onnxruntime shared library

	// FailureWindow is how long a failed load attempt is cached before the
	// disk is probed again, so a missing artifact does not turn every
	// request into an expensive load attempt.
	FailureWindow time.Duration
}

// Classifier runs the skin-lesion model over uploaded images. The ONNX
// session is loaded lazily on first use and shared by all requests;
// concurrent first callers block until the single load attempt finishes.
type Classifier struct {
	cfg Config
	l   log.Logger

	mu          sync.Mutex
	session     *ort.DynamicAdvancedSession
	inputHeight int
	inputWidth  int
	loadErr     error
	loadErrAt   time.Time
}

// New creates a Classifier. The model is not loaded until the first
// Classify call.
func New(cfg Config, l log.Logger) *Classifier {
	if cfg.FailureWindow <= 0 {
		cfg.FailureWindow = defaultFailureWindow
	}
	return &Classifier{cfg: cfg, l: l}
}

// Classify decodes raw image bytes, runs the model, and returns the top-1
// prediction. Inference is deterministic: identical bytes produce identical
// predictions. Errors are either ErrModelUnavailable or ErrInference.
func (c *Classifier) Classify(ctx context.Context, imageBytes []byte) (Prediction, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return Prediction{}, err
	}

	data, err := preprocess(imageBytes, c.inputHeight, c.inputWidth)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrInference, err)
	}

	input, err := ort.NewTensor(ort.NewShape(1, int64(c.inputHeight), int64(c.inputWidth), 3), data)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: create input tensor: %v", ErrInference, err)
	}
	defer input.Destroy()

	// Let the session allocate the output tensor.
	outputs := []ort.Value{nil}
	if err := c.session.Run([]ort.Value{input}, outputs); err != nil {
		return Prediction{}, fmt.Errorf("%w: run session: %v", ErrInference, err)
	}
	defer outputs[0].Destroy()

	out, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return Prediction{}, fmt.Errorf("%w: unexpected output tensor type %T", ErrInference, outputs[0])
	}

	probs := out.GetData()
	if len(probs) == 0 {
		return Prediction{}, fmt.Errorf("%w: model produced empty output", ErrInference)
	}

	index, confidence := argMax(probs)
	prediction := newPrediction(index, confidence)

	c.l.Debugf(ctx, "classifier: index=%d confidence=%.4f label=%s", index, confidence, prediction.DisplayLabel())
	return prediction, nil
}

// Close releases the ONNX session, if one was loaded.
func (c *Classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	err := c.session.Destroy()
	c.session = nil
	return err
}

// ensureLoaded loads the model once. A failed attempt is cached for
// cfg.FailureWindow so hot traffic does not hammer the disk.
func (c *Classifier) ensureLoaded(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		return nil
	}
	if c.loadErr != nil && time.Since(c.loadErrAt) < c.cfg.FailureWindow {
		return c.loadErr
	}

	if err := c.load(ctx); err != nil {
		c.loadErr = err
		c.loadErrAt = time.Now()
		return err
	}
	c.loadErr = nil
	return nil
}

func (c *Classifier) load(ctx context.Context) error {
	if _, err := os.Stat(c.cfg.ModelPath); err != nil {
		return fmt.Errorf("%w: artifact not found at %s: %v", ErrModelUnavailable, c.cfg.ModelPath, err)
	}

	if !ort.IsInitialized() {
		if c.cfg.LibraryPath != "" {
			ort.SetSharedLibraryPath(c.cfg.LibraryPath)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			return fmt.Errorf("%w: initialize onnxruntime: %v", ErrModelUnavailable, err)
		}
	}

	inputs, outputs, err := ort.GetInputOutputInfo(c.cfg.ModelPath)
	if err != nil {
		return fmt.Errorf("%w: read model metadata: %v", ErrModelUnavailable, err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return fmt.Errorf("%w: model declares no inputs or outputs", ErrModelUnavailable)
	}

	// The artifact contract is a single NHWC image input. Spatial
	// dimensions come from the model, not from constants, so a retrained
	// artifact with a different input size keeps working.
	dims := inputs[0].Dimensions
	if len(dims) != 4 {
		return fmt.Errorf("%w: expected rank-4 image input, got rank %d", ErrModelUnavailable, len(dims))
	}
	height, width := int(dims[1]), int(dims[2])
	if height <= 0 {
		height = defaultInputSize
	}
	if width <= 0 {
		width = defaultInputSize
	}

	inputNames := make([]string, len(inputs))
	for i, v := range inputs {
		inputNames[i] = v.Name
	}
	outputNames := make([]string, len(outputs))
	for i, v := range outputs {
		outputNames[i] = v.Name
	}

	session, err := ort.NewDynamicAdvancedSession(c.cfg.ModelPath, inputNames, outputNames, nil)
	if err != nil {
		return fmt.Errorf("%w: create session: %v", ErrModelUnavailable, err)
	}

	c.session = session
	c.inputHeight = height
	c.inputWidth = width
	c.l.Infof(ctx, "classifier: model loaded from %s, input %dx%d", c.cfg.ModelPath, width, height)
	return nil
}
