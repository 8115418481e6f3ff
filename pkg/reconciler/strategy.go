package reconciler

import (
	"github.com/agentstation/rostercheck/pkg/normalize"
)

// Strategy finds master entries by name when a validation identifier is not
// in the index. Both methods return the matching entry with the lowest
// master row.
type Strategy interface {
	// Type returns the strategy type
	Type() StrategyType

	// ExactName finds an entry whose normalized name equals name.
	ExactName(index *Index, name string) (*Entry, bool)

	// ScrambledName finds an entry whose name has the same words as name.
	ScrambledName(index *Index, name string) (*Entry, bool)
}

// StrategyType identifies a lookup strategy.
type StrategyType string

const (
	// StrategyTypeIndexed uses the name and word-key indexes.
	StrategyTypeIndexed StrategyType = "indexed"

	// StrategyTypeLinear scans every entry in master row order.
	StrategyTypeLinear StrategyType = "linear"
)

// String returns the string representation of a strategy type.
func (st StrategyType) String() string {
	return string(st)
}

// indexedStrategy looks names up in the auxiliary indexes.
type indexedStrategy struct{}

// NewIndexedStrategy returns the default, index-backed strategy.
func NewIndexedStrategy() Strategy {
	return indexedStrategy{}
}

func (indexedStrategy) Type() StrategyType { return StrategyTypeIndexed }

func (indexedStrategy) ExactName(index *Index, name string) (*Entry, bool) {
	return first(index.byName[name])
}

func (indexedStrategy) ScrambledName(index *Index, name string) (*Entry, bool) {
	key := normalize.WordKey(name)
	if key == "" {
		return nil, false
	}
	return first(index.byWordKey[key])
}

// linearStrategy scans entries.
type linearStrategy struct{}

// NewLinearStrategy returns a strategy that scans every master entry.
func NewLinearStrategy() Strategy {
	return linearStrategy{}
}

func (linearStrategy) Type() StrategyType { return StrategyTypeLinear }

func (linearStrategy) ExactName(index *Index, name string) (*Entry, bool) {
	for _, e := range index.ordered {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

func (linearStrategy) ScrambledName(index *Index, name string) (*Entry, bool) {
	for _, e := range index.ordered {
		if normalize.IsScrambled(e.Name, name) {
			return e, true
		}
	}
	return nil, false
}

func first(entries []*Entry) (*Entry, bool) {
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0], true
}
