package findings

import "fmt"

// Set collects the findings of one reconciliation run, one slice per
// category. The zero value is ready to use.
type Set struct {
	Duplicates       []Duplicate       `json:"duplicates" yaml:"duplicates"`
	ScrambledNames   []ScrambledName   `json:"scrambledNames" yaml:"scrambledNames"`
	WrongIdentifiers []WrongIdentifier `json:"wrongIdentifiers" yaml:"wrongIdentifiers"`
	WrongNames       []WrongName       `json:"wrongNames" yaml:"wrongNames"`
	WrongWorkplaces  []WrongWorkplace  `json:"wrongWorkplaces" yaml:"wrongWorkplaces"`
	NotFound         []NotFound        `json:"notFound" yaml:"notFound"`
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{}
}

// Add appends f to its category.
func (s *Set) Add(f Finding) {
	switch v := f.(type) {
	case Duplicate:
		s.Duplicates = append(s.Duplicates, v)
	case ScrambledName:
		s.ScrambledNames = append(s.ScrambledNames, v)
	case WrongIdentifier:
		s.WrongIdentifiers = append(s.WrongIdentifiers, v)
	case WrongName:
		s.WrongNames = append(s.WrongNames, v)
	case WrongWorkplace:
		s.WrongWorkplaces = append(s.WrongWorkplaces, v)
	case NotFound:
		s.NotFound = append(s.NotFound, v)
	default:
		panic(fmt.Sprintf("findings: unknown finding type %T", f))
	}
}

// AddDuplicates appends duplicate findings.
func (s *Set) AddDuplicates(dups ...Duplicate) {
	s.Duplicates = append(s.Duplicates, dups...)
}

// Merge appends every finding of other.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	s.Duplicates = append(s.Duplicates, other.Duplicates...)
	s.ScrambledNames = append(s.ScrambledNames, other.ScrambledNames...)
	s.WrongIdentifiers = append(s.WrongIdentifiers, other.WrongIdentifiers...)
	s.WrongNames = append(s.WrongNames, other.WrongNames...)
	s.WrongWorkplaces = append(s.WrongWorkplaces, other.WrongWorkplaces...)
	s.NotFound = append(s.NotFound, other.NotFound...)
}

// Count returns the number of findings in category c.
func (s *Set) Count(c Category) int {
	if s == nil {
		return 0
	}
	switch c {
	case CategoryDuplicates:
		return len(s.Duplicates)
	case CategoryScrambledNames:
		return len(s.ScrambledNames)
	case CategoryWrongIdentifiers:
		return len(s.WrongIdentifiers)
	case CategoryWrongNames:
		return len(s.WrongNames)
	case CategoryWrongWorkplaces:
		return len(s.WrongWorkplaces)
	case CategoryNotFound:
		return len(s.NotFound)
	default:
		return 0
	}
}

// Total returns the number of findings across all categories.
func (s *Set) Total() int {
	total := 0
	for _, c := range Categories() {
		total += s.Count(c)
	}
	return total
}

// Empty reports whether the set holds no findings.
func (s *Set) Empty() bool {
	return s.Total() == 0
}

// Counts returns the number of findings per category.
func (s *Set) Counts() map[Category]int {
	counts := make(map[Category]int, len(Categories()))
	for _, c := range Categories() {
		counts[c] = s.Count(c)
	}
	return counts
}

// ByCategory returns the findings of category c in emission order.
func (s *Set) ByCategory(c Category) []Finding {
	if s == nil {
		return nil
	}
	var out []Finding
	switch c {
	case CategoryDuplicates:
		out = appendAll(out, s.Duplicates)
	case CategoryScrambledNames:
		out = appendAll(out, s.ScrambledNames)
	case CategoryWrongIdentifiers:
		out = appendAll(out, s.WrongIdentifiers)
	case CategoryWrongNames:
		out = appendAll(out, s.WrongNames)
	case CategoryWrongWorkplaces:
		out = appendAll(out, s.WrongWorkplaces)
	case CategoryNotFound:
		out = appendAll(out, s.NotFound)
	}
	return out
}

// All returns every finding, grouped by category in report order.
func (s *Set) All() []Finding {
	var out []Finding
	for _, c := range Categories() {
		out = append(out, s.ByCategory(c)...)
	}
	return out
}

// IsDuplicate reports whether a duplicate finding exists for the record of
// document doc at row with the given normalized identifier.
func (s *Set) IsDuplicate(doc Document, identifier string, row int) bool {
	if s == nil {
		return false
	}
	for _, d := range s.Duplicates {
		if d.Document == doc && d.CurrentRow == row && d.Identifier == identifier {
			return true
		}
	}
	return false
}

func appendAll[T Finding](out []Finding, items []T) []Finding {
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
