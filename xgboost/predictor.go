package xgboost

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gbdt-go/xgbpredict/core/parallel"
	"github.com/gbdt-go/xgbpredict/pkg/errors"
)

// parallelRowThreshold is the batch size above which PredictMatrix fans
// rows out across CPU cores.
const parallelRowThreshold = 64

// Predict returns one score per class for a single sparse feature vector.
// With outputMargin true the raw summed margins are returned; otherwise
// the model's output transformation is applied over the score sequence.
func (m *Model) Predict(fv FeatureVector, outputMargin bool) []float64 {
	scores := make([]float64, len(m.predictors))
	for i, p := range m.predictors {
		scores[i] = m.margin(fv, p)
	}
	if !outputMargin {
		Transform(scores, m.transform)
	}
	return scores
}

// PredictBatch scores one sparse vector per entry against a single-class
// model and returns one score per entry, with the transformation applied
// once over the whole sequence. Models with more than one class predictor
// are rejected with an IncompatibleModelError, since a cross-row
// transformation is only meaningful for the single-predictor case.
func (m *Model) PredictBatch(fvs []FeatureVector, outputMargin bool) ([]float64, error) {
	if len(m.predictors) != 1 {
		return nil, errors.NewIncompatibleModelError(len(m.predictors))
	}

	scores := make([]float64, len(fvs))
	for i, fv := range fvs {
		scores[i] = m.margin(fv, m.predictors[0])
	}
	if !outputMargin {
		Transform(scores, m.transform)
	}
	return scores, nil
}

// margin sums the per-tree outputs of one class predictor and adds the
// reparametrized base score.
func (m *Model) margin(fv FeatureVector, p predictor) float64 {
	s := 0.0
	for _, t := range p {
		s += t.predict(fv)
	}
	return s + m.baseScore
}

// PredictMatrix scores every row of a dense matrix and returns one output
// column per class. NaN entries are treated as missing values. Rows are
// independent, so large batches are split across CPU cores; the
// transformation is applied per row, which keeps multiclass rows
// self-contained.
func (m *Model) PredictMatrix(X mat.Matrix, outputMargin bool) (*mat.Dense, error) {
	rows, cols := X.Dims()
	if rows == 0 {
		return nil, errors.New("xgboost: empty input matrix")
	}
	if len(m.predictors) == 0 {
		return nil, errors.New("xgboost: model has no class predictors")
	}

	out := mat.NewDense(rows, len(m.predictors), nil)
	parallel.ParallelizeWithThreshold(rows, parallelRowThreshold, func(start, end int) {
		row := make([]float64, cols)
		fv := make(FeatureVector, cols)
		for i := start; i < end; i++ {
			mat.Row(row, i, X)
			for j, v := range row {
				if math.IsNaN(v) {
					fv[j] = Missing()
				} else {
					fv[j] = Some(v)
				}
			}
			scores := out.RawRowView(i)
			for k, p := range m.predictors {
				scores[k] = m.margin(fv, p)
			}
			if !outputMargin {
				Transform(scores, m.transform)
			}
		}
	})
	return out, nil
}
