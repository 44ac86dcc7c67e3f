package xgboost

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gbdt-go/xgbpredict/pkg/errors"
	"github.com/gbdt-go/xgbpredict/pkg/log"
)

// LoadFile reads and validates an XGBoost JSON model from disk.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "xgboost: open model file")
	}
	defer func() { _ = f.Close() }()

	m, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load model %s", path)
	}
	slog.Debug("xgboost model file loaded", log.ModelPath(path))
	return m, nil
}

// Load parses, validates and assembles an immutable Model from an XGBoost
// JSON document. Construction is all-or-nothing: the first violated
// precondition is returned as an error and no partial model is observable.
func Load(r io.Reader) (*Model, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.NewParseError(err)
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.NewParseReasonError("top-level value is not an object")
	}

	learner, err := getObject(root, "learner")
	if err != nil {
		return nil, err
	}
	booster, err := getObject(learner, "gradient_booster")
	if err != nil {
		return nil, err
	}
	model, err := getObject(booster, "model")
	if err != nil {
		return nil, err
	}

	jsonTrees, err := getArray(model, "trees")
	if err != nil {
		return nil, err
	}
	trees := make([]tree, 0, len(jsonTrees))
	for _, member := range jsonTrees {
		obj, ok := member.(map[string]any)
		if !ok {
			return nil, errors.NewSchemaError("trees", "object array")
		}
		t, err := loadTree(obj)
		if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}

	// tree_info assigns every tree to a class/group; trees of one group
	// stay in source order.
	treeInfo, err := getIntArray(model, "tree_info")
	if err != nil {
		return nil, err
	}
	if len(treeInfo) != len(trees) {
		return nil, errors.NewGroupSizeError(len(trees), len(treeInfo))
	}
	var predictors []predictor
	for i, group := range treeInfo {
		if group < 0 {
			return nil, errors.NewGroupValueError(group)
		}
		for len(predictors) <= group {
			predictors = append(predictors, nil)
		}
		predictors[group] = append(predictors[group], trees[i])
	}

	objectiveObj, err := getObject(learner, "objective")
	if err != nil {
		return nil, err
	}
	objective, err := getString(objectiveObj, "name")
	if err != nil {
		return nil, err
	}

	params, err := getObject(learner, "learner_model_param")
	if err != nil {
		return nil, err
	}
	rawBase, err := getString(params, "base_score")
	if err != nil {
		return nil, err
	}
	baseScore, err := strconv.ParseFloat(rawBase, 64)
	if err != nil {
		return nil, errors.NewSchemaError("base_score", "numeric string")
	}

	family := resolveObjective(objective)
	baseScore, err = family.reparametrizeBaseScore(objective, baseScore)
	if err != nil {
		return nil, err
	}

	m := &Model{
		predictors:  predictors,
		baseScore:   baseScore,
		transform:   family.transformation(),
		objective:   objective,
		numFeatures: numFeatures(trees),
	}
	slog.Debug("xgboost model loaded",
		log.Trees(len(trees)),
		log.Classes(len(predictors)),
		log.Objective(objective),
		log.Features(m.numFeatures),
	)
	return m, nil
}

// loadTree reads one entry of model.trees and builds a validated tree from
// its five parallel arrays.
func loadTree(obj map[string]any) (tree, error) {
	defaultLeft, err := getBoolArray(obj, "default_left")
	if err != nil {
		return nil, err
	}
	leftChildren, err := getIntArray(obj, "left_children")
	if err != nil {
		return nil, err
	}
	rightChildren, err := getIntArray(obj, "right_children")
	if err != nil {
		return nil, err
	}
	splitIndices, err := getIntArray(obj, "split_indices")
	if err != nil {
		return nil, err
	}
	splitConditions, err := getFloatArray(obj, "split_conditions")
	if err != nil {
		return nil, err
	}
	return buildTree(defaultLeft, leftChildren, rightChildren, splitIndices, splitConditions)
}

func numFeatures(trees []tree) int {
	max := -1
	for _, t := range trees {
		if f := t.maxFeature(); f > max {
			max = f
		}
	}
	return max + 1
}
