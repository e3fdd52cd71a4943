package classifier

import "fmt"

// classLabels maps output indices of the skin-lesion model to readable
// names. The model may carry more output classes than this list; indices
// beyond it render as "Class_<index>" instead of failing.
var classLabels = [...]string{
	"Melanoma",
	"Nevus",
	"Basal Cell Carcinoma",
	"Actinic Keratosis",
	"Benign Keratosis",
	"Dermatofibroma",
	"Vascular Lesion",
}

// Prediction is a tagged classification result. Label is set only when the
// predicted index falls inside the known label set; display rendering of
// unknown indices happens at the boundary, in DisplayLabel.
type Prediction struct {
	Index      int
	Label      string
	Confidence float32
}

func newPrediction(index int, confidence float32) Prediction {
	p := Prediction{Index: index, Confidence: confidence}
	if index >= 0 && index < len(classLabels) {
		p.Label = classLabels[index]
	}
	return p
}

// Known reports whether the predicted index maps to a known label.
func (p Prediction) Known() bool {
	return p.Label != ""
}

// DisplayLabel resolves the prediction to a readable label, synthesizing
// "Class_<index>" for classes the label set does not cover.
func (p Prediction) DisplayLabel() string {
	if p.Known() {
		return p.Label
	}
	return fmt.Sprintf("Class_%d", p.Index)
}

// String renders the prediction the way it is persisted and shown to users,
// e.g. "Melanoma (confidence: 87.00%)".
func (p Prediction) String() string {
	return fmt.Sprintf("%s (confidence: %.2f%%)", p.DisplayLabel(), p.Confidence*100)
}
