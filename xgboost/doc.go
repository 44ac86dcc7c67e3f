// Package xgboost loads gradient-boosted tree ensembles saved in the
// XGBoost JSON format and evaluates them against sparse feature vectors.
//
// The package is a pure inference engine: models are deserialized and
// structurally validated once by Load or LoadFile, and the resulting Model
// is immutable. Every Predict call only reads the model and keeps its
// working state on the call stack, so a single Model instance can serve
// concurrent goroutines without synchronization.
//
// Training, model writing and online updates are out of scope.
package xgboost
