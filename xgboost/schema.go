package xgboost

import (
	"math"

	"github.com/gbdt-go/xgbpredict/pkg/errors"
)

// Typed accessors over the generic document tree produced by encoding/json.
// Each returns a SchemaError naming the key when the member is missing or
// has the wrong JSON type. There is no coercion between booleans and
// numbers in either direction.

func getObject(v map[string]any, key string) (map[string]any, error) {
	obj, ok := v[key].(map[string]any)
	if !ok {
		return nil, errors.NewSchemaError(key, "object")
	}
	return obj, nil
}

func getString(v map[string]any, key string) (string, error) {
	s, ok := v[key].(string)
	if !ok {
		return "", errors.NewSchemaError(key, "string")
	}
	return s, nil
}

func getArray(v map[string]any, key string) ([]any, error) {
	arr, ok := v[key].([]any)
	if !ok {
		return nil, errors.NewSchemaError(key, "array")
	}
	return arr, nil
}

func getBoolArray(v map[string]any, key string) ([]bool, error) {
	arr, err := getArray(v, key)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(arr))
	for i, member := range arr {
		b, ok := member.(bool)
		if !ok {
			return nil, errors.NewSchemaError(key, "bool array")
		}
		out[i] = b
	}
	return out, nil
}

func getIntArray(v map[string]any, key string) ([]int, error) {
	arr, err := getArray(v, key)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(arr))
	for i, member := range arr {
		// encoding/json decodes every JSON number to float64; only
		// integral values are acceptable here.
		f, ok := member.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, errors.NewSchemaError(key, "int array")
		}
		out[i] = int(f)
	}
	return out, nil
}

func getFloatArray(v map[string]any, key string) ([]float64, error) {
	arr, err := getArray(v, key)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(arr))
	for i, member := range arr {
		// Integral thresholds arrive without a decimal point but still
		// decode to float64, so no special case is needed.
		f, ok := member.(float64)
		if !ok {
			return nil, errors.NewSchemaError(key, "number array")
		}
		out[i] = f
	}
	return out, nil
}
