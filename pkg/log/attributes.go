package log

import "log/slog"

// Attribute keys shared by model-loading log records.
const (
	ModelPathKey = "model_path"
	TreesKey     = "trees"
	ClassesKey   = "classes"
	ObjectiveKey = "objective"
	FeaturesKey  = "features"
)

// ModelPath is the file the model was loaded from.
func ModelPath(path string) slog.Attr {
	return slog.String(ModelPathKey, path)
}

// Trees is the total number of trees in a model.
func Trees(n int) slog.Attr {
	return slog.Int(TreesKey, n)
}

// Classes is the number of class predictors in a model.
func Classes(n int) slog.Attr {
	return slog.Int(ClassesKey, n)
}

// Objective is the training objective name recorded in the model.
func Objective(name string) slog.Attr {
	return slog.String(ObjectiveKey, name)
}

// Features is the number of input features a model was trained on.
func Features(n int) slog.Attr {
	return slog.Int(FeaturesKey, n)
}
