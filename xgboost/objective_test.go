package xgboost

import (
	"math"
	"testing"

	"github.com/gbdt-go/xgbpredict/pkg/errors"
)

func TestResolveObjective(t *testing.T) {
	testCases := []struct {
		name string
		want objectiveFamily
	}{
		{"reg:logistic", familyLogistic},
		{"binary:logistic", familyLogistic},
		{"binary:logitraw", familyLogitRaw},
		{"reg:gamma", familyLogLink},
		{"reg:tweedie", familyLogLink},
		{"count:poisson", familyLogLink},
		{"survival:aft", familyLogLink},
		{"survival:cox", familyLogLink},
		{"multi:softprob", familySoftmax},
		{"reg:squarederror", familyRaw},
		{"rank:pairwise", familyRaw},
		{"multi:softmax", familyRaw},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveObjective(tc.name); got != tc.want {
				t.Errorf("resolveObjective(%q) = %d, want %d", tc.name, got, tc.want)
			}
		})
	}
}

func TestReparametrizeBaseScore(t *testing.T) {
	testCases := []struct {
		name      string
		objective string
		score     float64
		want      float64
	}{
		{"logistic midpoint", "binary:logistic", 0.5, 0},
		{"logistic skewed", "binary:logistic", 0.9, -math.Log(1/0.9 - 1)},
		{"logitraw midpoint", "binary:logitraw", 0.5, 0},
		{"gamma euler", "reg:gamma", math.E, 1},
		{"poisson unity", "count:poisson", 1, 0},
		{"raw passthrough", "reg:squarederror", -3.75, -3.75},
		{"softmax passthrough", "multi:softprob", 0.5, 0.5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			family := resolveObjective(tc.objective)
			got, err := family.reparametrizeBaseScore(tc.objective, tc.score)
			if err != nil {
				t.Fatalf("reparametrizeBaseScore failed: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("reparametrized %v to %v, want %v", tc.score, got, tc.want)
			}
		})
	}
}

func TestReparametrizeBaseScoreRejectsOutOfRange(t *testing.T) {
	for _, score := range []float64{0, 1, -0.5, 1.5} {
		_, err := familyLogistic.reparametrizeBaseScore("binary:logistic", score)
		var invalid *errors.InvalidBaseScoreError
		if !errors.As(err, &invalid) {
			t.Errorf("score %v: expected InvalidBaseScoreError, got %v", score, err)
			continue
		}
		if invalid.Score != score {
			t.Errorf("error reports score %v, want %v", invalid.Score, score)
		}
	}
}

func TestObjectiveTransformation(t *testing.T) {
	testCases := []struct {
		family objectiveFamily
		want   Transformation
	}{
		{familyLogistic, TransformSigmoid},
		{familySoftmax, TransformSoftmax},
		// logitraw reparametrizes like logistic but serves raw margins.
		{familyLogitRaw, TransformNone},
		{familyLogLink, TransformNone},
		{familyRaw, TransformNone},
	}
	for _, tc := range testCases {
		if got := tc.family.transformation(); got != tc.want {
			t.Errorf("family %d transformation = %v, want %v", tc.family, got, tc.want)
		}
	}
}
