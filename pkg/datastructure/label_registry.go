package datastructure

import "fmt"

/*
LabelRegistry is the bijection between caller labels and dense indices 0..n-1.
Index i belongs to the i-th label of the sequence the registry was built from.

A registry is never patched. When the label sequence changes, build a new one.
*/
type LabelRegistry[L comparable] struct {
	labelToIndex map[L]Index
	indexToLabel []L

	revision  uint64
	fromModel bool
}

func BuildLabelRegistry[L comparable](labels []L) (*LabelRegistry[L], error) {
	lr := &LabelRegistry[L]{
		labelToIndex: make(map[L]Index, len(labels)),
		indexToLabel: make([]L, len(labels)),
	}
	for i, label := range labels {
		if _, ok := lr.labelToIndex[label]; ok {
			return nil, fmt.Errorf("%w: %v at position %d", ErrDuplicateLabel, label, i)
		}
		lr.labelToIndex[label] = Index(i)
		lr.indexToLabel[i] = label
	}
	return lr, nil
}

// BuildLabelRegistryFromModel builds a registry over the model's current nodes
// and remembers the model revision so CheckFresh can detect later mutation.
func BuildLabelRegistryFromModel[L comparable](model *GraphModel[L]) (*LabelRegistry[L], error) {
	lr, err := BuildLabelRegistry(model.nodes)
	if err != nil {
		return nil, err
	}
	lr.revision = model.Revision()
	lr.fromModel = true
	return lr, nil
}

func (lr *LabelRegistry[L]) ToIndex(label L) (Index, error) {
	idx, ok := lr.labelToIndex[label]
	if !ok {
		return INVALID_INDEX, fmt.Errorf("%w: %v", ErrUnknownLabel, label)
	}
	return idx, nil
}

func (lr *LabelRegistry[L]) ToLabel(idx Index) (L, error) {
	if int(idx) >= len(lr.indexToLabel) {
		var zero L
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, len(lr.indexToLabel))
	}
	return lr.indexToLabel[idx], nil
}

// ToLabels maps ids element-wise through the reverse map.
func (lr *LabelRegistry[L]) ToLabels(ids []Index) ([]L, error) {
	labels := make([]L, len(ids))
	for i, id := range ids {
		label, err := lr.ToLabel(id)
		if err != nil {
			return nil, err
		}
		labels[i] = label
	}
	return labels, nil
}

// CheckFresh returns ErrStaleMapping if model was mutated after the registry was
// built from it. Registries built from a plain label slice are compared by
// content.
func (lr *LabelRegistry[L]) CheckFresh(model *GraphModel[L]) error {
	if lr.fromModel {
		if lr.revision != model.Revision() {
			return fmt.Errorf("%w: built at revision %d, model is at revision %d",
				ErrStaleMapping, lr.revision, model.Revision())
		}
		return nil
	}

	if len(model.nodes) != len(lr.indexToLabel) {
		return fmt.Errorf("%w: registry has %d labels, model has %d nodes",
			ErrStaleMapping, len(lr.indexToLabel), len(model.nodes))
	}
	for i, label := range model.nodes {
		if lr.indexToLabel[i] != label {
			return fmt.Errorf("%w: label %v moved from index %d", ErrStaleMapping, label, i)
		}
	}
	return nil
}

func (lr *LabelRegistry[L]) Len() int {
	return len(lr.indexToLabel)
}

// Labels returns a copy of the labels in index order.
func (lr *LabelRegistry[L]) Labels() []L {
	labels := make([]L, len(lr.indexToLabel))
	copy(labels, lr.indexToLabel)
	return labels
}
