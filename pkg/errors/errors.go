// Package errors defines the structured error types raised while loading
// and evaluating XGBoost models. Every constructor attaches a stack trace
// via cockroachdb/errors, and every type implements
// zerolog.LogObjectMarshaler so errors can be logged as structured events.
//
// All errors are fail-fast and non-recoverable: malformed model data
// cannot self-heal, so the loader surfaces the first violated precondition
// and produces no partial model.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ParseError indicates the model document is not well-formed JSON or its
// top level is not an object.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("xgboost: invalid model document: %v", e.Err)
	}
	return fmt.Sprintf("xgboost: invalid model document: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured parse-error fields to a zerolog event.
func (e *ParseError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("reason", e.Reason).
		AnErr("cause", e.Err).
		Str("type", "ParseError")
}

// NewParseError wraps a JSON decoding failure with a stack trace.
func NewParseError(err error) error {
	return errors.WithStack(&ParseError{Err: err})
}

// NewParseReasonError reports a structurally invalid document, such as a
// top-level value that is not an object.
func NewParseReasonError(reason string) error {
	return errors.WithStack(&ParseError{Reason: reason})
}

// SchemaError indicates a required member of the model document is missing
// or has the wrong type.
type SchemaError struct {
	Key  string // member name looked up
	Want string // expected JSON shape, e.g. "object", "int array"
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("xgboost: missing or invalid json %s member: %q", e.Want, e.Key)
}

// MarshalZerologObject adds structured schema-error fields to a zerolog event.
func (e *SchemaError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("key", e.Key).
		Str("want", e.Want).
		Str("type", "SchemaError")
}

// NewSchemaError creates a SchemaError for the given member and expected type.
func NewSchemaError(key, want string) error {
	return errors.WithStack(&SchemaError{Key: key, Want: want})
}

// SizeMismatchError indicates the parallel arrays describing one tree differ
// in length.
type SizeMismatchError struct {
	Sizes []int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("xgboost: tree array sizes do not match: %v", e.Sizes)
}

// MarshalZerologObject adds structured size-mismatch fields to a zerolog event.
func (e *SizeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Ints("sizes", e.Sizes).
		Str("type", "SizeMismatchError")
}

// NewSizeMismatchError creates a SizeMismatchError from the observed lengths.
func NewSizeMismatchError(sizes ...int) error {
	return errors.WithStack(&SizeMismatchError{Sizes: sizes})
}

// StructuralError indicates a tree that is empty, has a child index outside
// the node array, or has a node reachable through more than one distinct
// edge (a cycle or illegal sharing).
type StructuralError struct {
	Node   int // offending node index, -1 when the tree as a whole is at fault
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Node < 0 {
		return fmt.Sprintf("xgboost: invalid tree: %s", e.Reason)
	}
	return fmt.Sprintf("xgboost: invalid tree: node %d: %s", e.Node, e.Reason)
}

// MarshalZerologObject adds structured tree-error fields to a zerolog event.
func (e *StructuralError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("node", e.Node).
		Str("reason", e.Reason).
		Str("type", "StructuralError")
}

// NewStructuralError creates a StructuralError for the given node. Pass a
// negative node index for whole-tree violations such as an empty tree.
func NewStructuralError(node int, reason string) error {
	return errors.WithStack(&StructuralError{Node: node, Reason: reason})
}

// GroupIndexError indicates an invalid tree_info section: its length does
// not match the number of trees, or a class/group index is negative.
type GroupIndexError struct {
	Trees int // number of parsed trees
	Infos int // length of tree_info
	Group int // offending group index for the negative-index case
}

func (e *GroupIndexError) Error() string {
	if e.Group < 0 {
		return fmt.Sprintf("xgboost: unexpected tree_info group: %d", e.Group)
	}
	return fmt.Sprintf("xgboost: unexpected tree_info size: %d, trees: %d", e.Infos, e.Trees)
}

// MarshalZerologObject adds structured tree_info fields to a zerolog event.
func (e *GroupIndexError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("trees", e.Trees).
		Int("infos", e.Infos).
		Int("group", e.Group).
		Str("type", "GroupIndexError")
}

// NewGroupSizeError reports a tree_info array whose length differs from the
// number of trees in the model.
func NewGroupSizeError(trees, infos int) error {
	return errors.WithStack(&GroupIndexError{Trees: trees, Infos: infos})
}

// NewGroupValueError reports a negative class/group index in tree_info.
func NewGroupValueError(group int) error {
	return errors.WithStack(&GroupIndexError{Group: group})
}

// InvalidBaseScoreError indicates a base score outside (0,1) for an
// objective of the logistic family, where the logit reparametrization is
// undefined.
type InvalidBaseScoreError struct {
	Objective string
	Score     float64
}

func (e *InvalidBaseScoreError) Error() string {
	return fmt.Sprintf("xgboost: base_score must be in (0,1) for %s, got: %g", e.Objective, e.Score)
}

// MarshalZerologObject adds structured base-score fields to a zerolog event.
func (e *InvalidBaseScoreError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("objective", e.Objective).
		Float64("base_score", e.Score).
		Str("type", "InvalidBaseScoreError")
}

// NewInvalidBaseScoreError creates an InvalidBaseScoreError.
func NewInvalidBaseScoreError(objective string, score float64) error {
	return errors.WithStack(&InvalidBaseScoreError{Objective: objective, Score: score})
}

// IncompatibleModelError indicates batch prediction was invoked against a
// model with more than one class predictor.
type IncompatibleModelError struct {
	Predictors int
}

func (e *IncompatibleModelError) Error() string {
	return fmt.Sprintf("xgboost: batch predict requires a single-class model, got %d predictors", e.Predictors)
}

// MarshalZerologObject adds structured model-shape fields to a zerolog event.
func (e *IncompatibleModelError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("predictors", e.Predictors).
		Str("type", "IncompatibleModelError")
}

// NewIncompatibleModelError creates an IncompatibleModelError.
func NewIncompatibleModelError(predictors int) error {
	return errors.WithStack(&IncompatibleModelError{Predictors: predictors})
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be assigned to the given target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}
