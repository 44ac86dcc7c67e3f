// Package xgbpredict provides a thread-safe inference engine for
// gradient-boosted decision-tree models exported in the XGBoost JSON
// format, designed for backend services and real-time scoring.
//
// A model is loaded and validated once, then any number of goroutines
// may call Predict concurrently on the same instance: the loaded model
// is never mutated, so the hot path needs no locks.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/gbdt-go/xgbpredict/xgboost"
//	)
//
//	func main() {
//	    model, err := xgboost.LoadFile("model.json")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Sparse input: slot 2 carries a value, the rest are missing.
//	    fv := make(xgboost.FeatureVector, 4)
//	    fv[2] = xgboost.Some(0.73)
//
//	    scores := model.Predict(fv, false)
//	    fmt.Println("Scores:", scores)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - xgboost: model loading, validation and prediction
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging setup
//   - core/parallel: CPU-parallel batch helpers
package xgbpredict
