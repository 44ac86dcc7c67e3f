package xgboost

// FeatureValue is one slot of a sparse feature vector: a float64 that is
// either present or missing.
type FeatureValue struct {
	Value float64
	Valid bool
}

// Some returns a present feature value.
func Some(v float64) FeatureValue {
	return FeatureValue{Value: v, Valid: true}
}

// Missing returns an absent feature value.
func Missing() FeatureValue {
	return FeatureValue{}
}

// FeatureVector is a sparse feature vector indexed by feature number.
// Slots beyond its length are treated as missing. Vectors are owned by the
// caller; the engine never retains one beyond a predict call.
type FeatureVector []FeatureValue

// predictor is the ordered group of trees whose summed leaf outputs, plus
// the base score, form one class's raw margin.
type predictor []tree

// Model is a loaded tree-ensemble model: one predictor per class, the
// base score already reparametrized into margin space, and the output
// transformation selected by the training objective.
//
// A Model is built once by Load and never mutated afterwards, which is the
// entire concurrency contract: any number of goroutines may call the
// predict methods on the same instance without locking.
type Model struct {
	predictors  []predictor
	baseScore   float64
	transform   Transformation
	objective   string
	numFeatures int
}

// NumClasses returns the number of class predictors; 1 for binary,
// regression and ranking models.
func (m *Model) NumClasses() int {
	return len(m.predictors)
}

// NumFeatures returns the highest feature index split on anywhere in the
// model, plus one.
func (m *Model) NumFeatures() int {
	return m.numFeatures
}

// BaseScore returns the global additive offset, already reparametrized for
// the objective.
func (m *Model) BaseScore() float64 {
	return m.baseScore
}

// Objective returns the training objective name recorded in the model.
func (m *Model) Objective() string {
	return m.objective
}

// Transformation returns the output transformation applied when predict is
// called without outputMargin.
func (m *Model) Transformation() Transformation {
	return m.transform
}
