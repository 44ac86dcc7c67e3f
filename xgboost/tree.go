package xgboost

import (
	"github.com/gbdt-go/xgbpredict/pkg/errors"
)

// leafFeature is the sentinel stored in node.feature for leaf nodes.
const leafFeature = -1

// node is one decision or leaf node. For a decision node, value is the
// split threshold and yes/no/missing index children within the same tree.
// For a leaf node, value is the leaf output and feature is leafFeature.
type node struct {
	value   float64
	feature int32
	yes     int32
	no      int32
	missing int32
}

func (n *node) isLeaf() bool { return n.feature < 0 }

// tree is an ordered node array; index 0 is the root.
type tree []node

// buildTree assembles a tree from the five parallel arrays of the JSON
// model and validates its structure. A position with a negative left-child
// index is a leaf; otherwise the missing branch follows default_left.
func buildTree(defaultLeft []bool, leftChildren, rightChildren, splitIndices []int, splitConditions []float64) (tree, error) {
	n := len(defaultLeft)
	if len(leftChildren) != n || len(rightChildren) != n || len(splitIndices) != n || len(splitConditions) != n {
		return nil, errors.NewSizeMismatchError(
			n, len(leftChildren), len(rightChildren), len(splitIndices), len(splitConditions))
	}

	t := make(tree, n)
	for i := 0; i < n; i++ {
		feature := leafFeature
		if leftChildren[i] >= 0 {
			feature = splitIndices[i]
		}
		missing := rightChildren[i]
		if defaultLeft[i] {
			missing = leftChildren[i]
		}
		t[i] = node{
			value:   splitConditions[i],
			feature: int32(feature),
			yes:     int32(leftChildren[i]),
			no:      int32(rightChildren[i]),
			missing: int32(missing),
		}
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// visitMark is the per-node state of the reachability walk.
type visitMark uint8

const (
	markUnvisited visitMark = iota
	// markVisited: reached through exactly one yes/no/missing edge.
	markVisited
	// markAliased: reached again, but only through a missing edge that
	// coincides with its parent's yes or no edge. Not a violation.
	markAliased
)

// validate checks that the tree is non-empty, that every child index of a
// decision node is inside the node array, and that no node is reachable
// from the root through more than one distinct edge. A missing branch that
// coincides with the yes or no branch of the same parent counts as a
// single edge.
func (t tree) validate() error {
	if len(t) == 0 {
		return errors.NewStructuralError(-1, "empty tree")
	}

	size := int32(len(t))
	for i := range t {
		n := &t[i]
		if n.isLeaf() {
			continue
		}
		if n.yes < 0 || n.yes >= size ||
			n.no < 0 || n.no >= size ||
			n.missing < 0 || n.missing >= size {
			return errors.NewStructuralError(i, "yes/no/missing index out of range")
		}
	}

	marks := make([]visitMark, len(t))
	return t.visit(0, false, marks)
}

// visit walks depth-first from idx. aliased is true when this call came
// through a missing edge that duplicates a sibling edge of the same
// parent, which must not be treated as a revisit.
func (t tree) visit(idx int32, aliased bool, marks []visitMark) error {
	if marks[idx] != markUnvisited {
		if aliased {
			marks[idx] = markAliased
			return nil
		}
		return errors.NewStructuralError(int(idx), "node reachable via more than one edge")
	}
	marks[idx] = markVisited

	n := &t[idx]
	if n.isLeaf() {
		return nil
	}
	if err := t.visit(n.yes, false, marks); err != nil {
		return err
	}
	if err := t.visit(n.no, false, marks); err != nil {
		return err
	}
	return t.visit(n.missing, n.missing == n.yes || n.missing == n.no, marks)
}

// predict walks from the root until it reaches a leaf and returns the leaf
// value. A feature that is absent from the vector, including indices beyond
// its length, routes to the missing branch. Terminates because validate
// rejected every second path to a node.
func (t tree) predict(fv FeatureVector) float64 {
	idx := int32(0)
	for {
		n := &t[idx]
		if n.isLeaf() {
			return n.value
		}
		if f := int(n.feature); f < len(fv) && fv[f].Valid {
			if fv[f].Value < n.value {
				idx = n.yes
			} else {
				idx = n.no
			}
		} else {
			idx = n.missing
		}
	}
}

// maxFeature returns the largest feature index split on, or -1 for a
// leaf-only tree.
func (t tree) maxFeature() int {
	max := -1
	for i := range t {
		if f := int(t[i].feature); f > max {
			max = f
		}
	}
	return max
}
