package xgboost

import (
	"math"

	"github.com/gbdt-go/xgbpredict/pkg/errors"
)

// objectiveFamily is the closed set of behaviors an objective name resolves
// to at load time: how the stored base score is moved into margin space and
// which output transformation margins receive. Resolving once here keeps
// string comparisons out of the predict path.
type objectiveFamily uint8

const (
	// familyRaw keeps the base score and margins untouched.
	familyRaw objectiveFamily = iota
	// familyLogistic stores the base score in logit space and squashes
	// margins with a sigmoid (reg:logistic, binary:logistic).
	familyLogistic
	// familyLogitRaw stores the base score in logit space exactly like
	// familyLogistic but leaves margins raw (binary:logitraw).
	familyLogitRaw
	// familyLogLink stores the base score in log space (gamma, tweedie,
	// poisson and survival objectives).
	familyLogLink
	// familySoftmax keeps the base score raw and normalizes per-class
	// margins with a softmax (multi:softprob).
	familySoftmax
)

func resolveObjective(name string) objectiveFamily {
	switch name {
	case "reg:logistic", "binary:logistic":
		return familyLogistic
	case "binary:logitraw":
		return familyLogitRaw
	case "reg:gamma", "reg:tweedie", "count:poisson", "survival:aft", "survival:cox":
		return familyLogLink
	case "multi:softprob":
		return familySoftmax
	}
	return familyRaw
}

// reparametrizeBaseScore converts the stored base score into the margin
// space of the objective so prediction can add it directly to tree sums.
// Logit families require the score strictly inside (0,1).
func (f objectiveFamily) reparametrizeBaseScore(name string, score float64) (float64, error) {
	switch f {
	case familyLogistic, familyLogitRaw:
		if score <= 0 || score >= 1 {
			return 0, errors.NewInvalidBaseScoreError(name, score)
		}
		return -math.Log(1/score-1), nil
	case familyLogLink:
		return math.Log(score), nil
	}
	return score, nil
}

// transformation returns the output transformation for the family. Note
// that familyLogitRaw stays TransformNone: logitraw margins are served raw
// even though its base score lives in logit space.
func (f objectiveFamily) transformation() Transformation {
	switch f {
	case familyLogistic:
		return TransformSigmoid
	case familySoftmax:
		return TransformSoftmax
	}
	return TransformNone
}
