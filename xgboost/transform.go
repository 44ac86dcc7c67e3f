package xgboost

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Transformation selects how raw margins are turned into final scores.
type Transformation uint8

const (
	// TransformNone leaves margins untouched.
	TransformNone Transformation = iota
	// TransformSigmoid maps each margin through 1/(1+exp(-x)).
	TransformSigmoid
	// TransformSoftmax normalizes the margins into a probability
	// distribution.
	TransformSoftmax
)

func (t Transformation) String() string {
	switch t {
	case TransformNone:
		return "none"
	case TransformSigmoid:
		return "sigmoid"
	case TransformSoftmax:
		return "softmax"
	}
	return "unknown"
}

// Transform applies the transformation to scores in place. It is pure and
// stateless; an empty slice is a no-op for every kind.
func Transform(scores []float64, kind Transformation) {
	if len(scores) == 0 {
		return
	}

	switch kind {
	case TransformSigmoid:
		for i, s := range scores {
			scores[i] = sigmoid(s)
		}
	case TransformSoftmax:
		softmax(scores)
	}
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// softmax rescales scores in place, shifting by the maximum first so the
// exponentials cannot overflow.
func softmax(scores []float64) {
	max := floats.Max(scores)
	for i, s := range scores {
		scores[i] = math.Exp(s - max)
	}
	sum := floats.Sum(scores)
	floats.Scale(1/sum, scores)
}
