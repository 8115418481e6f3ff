// Package findings defines the inconsistencies a reconciliation run can
// report. Finding is a closed set of types, one per kind of problem, each
// carrying only the fields that describe it plus the original record(s) it
// was derived from. Field values are normalized; row numbers are 1-based
// source rows.
package findings

import (
	"github.com/agentstation/rostercheck/pkg/constants"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Kind is the tag of a finding.
type Kind string

const (
	KindExactDuplicate     Kind = "DUPLICADO_EXACTO"
	KindScrambledDuplicate Kind = "DUPLICADO_NOMBRE_ENTREVERADO"
	KindScrambledName      Kind = "NOMBRE_ENTREVERADO"
	KindWrongIdentifier    Kind = "CEDULA_INCORRECTA"
	KindWrongName          Kind = "NOMBRE_INCORRECTO"
	KindWrongWorkplace     Kind = "LUGAR_INCORRECTO"
	KindNotFound           Kind = "PERSONA_INEXISTENTE"
)

// String returns the tag.
func (k Kind) String() string { return string(k) }

// Document identifies which dataset a finding came from.
type Document string

const (
	Master     Document = "master"
	Validation Document = "validation"
)

// Label returns the display label of the document.
func (d Document) Label() string {
	switch d {
	case Master:
		return constants.MasterLabel
	case Validation:
		return constants.ValidationLabel
	default:
		return string(d)
	}
}

// Finding is implemented only by the types in this package.
type Finding interface {
	Kind() Kind
	Category() Category
	isFinding()
}

// Duplicate is a record repeated within one dataset, either exactly or with
// the words of its name reordered.
type Duplicate struct {
	Type       Kind     `json:"type" yaml:"type"`
	Identifier string   `json:"identifier" yaml:"identifier"`
	Name       string   `json:"name" yaml:"name"`
	Workplace  string   `json:"workplace" yaml:"workplace"`
	CurrentRow int      `json:"currentRow" yaml:"currentRow"`
	FirstRow   int      `json:"firstRow" yaml:"firstRow"`
	Document   Document `json:"document" yaml:"document"`

	// OriginalName is the name of the first occurrence. Set only for
	// scrambled duplicates.
	OriginalName string `json:"originalName,omitempty" yaml:"originalName,omitempty"`

	Record *records.Record `json:"record,omitempty" yaml:"record,omitempty"`
}

// Kind implements Finding.
func (d Duplicate) Kind() Kind { return d.Type }

// Category implements Finding.
func (Duplicate) Category() Category { return CategoryDuplicates }

func (Duplicate) isFinding() {}

// DisplayName renders the name, annotated with the original for scrambled
// duplicates.
func (d Duplicate) DisplayName() string {
	if d.Type == KindScrambledDuplicate && d.OriginalName != "" {
		return d.Name + " (Original: " + d.OriginalName + ")"
	}
	return d.Name
}

// ScrambledName is a validation record whose name has the same words as the
// master's, in a different order.
type ScrambledName struct {
	Identifier          string `json:"identifier" yaml:"identifier"`
	CorrectName         string `json:"correctName" yaml:"correctName"`
	ScrambledName       string `json:"scrambledName" yaml:"scrambledName"`
	WorkplaceMaster     string `json:"workplaceMaster" yaml:"workplaceMaster"`
	WorkplaceValidation string `json:"workplaceValidation" yaml:"workplaceValidation"`
	RowMaster           int    `json:"rowMaster" yaml:"rowMaster"`
	RowValidation       int    `json:"rowValidation" yaml:"rowValidation"`

	Master     *records.Record `json:"masterRecord,omitempty" yaml:"masterRecord,omitempty"`
	Validation *records.Record `json:"validationRecord,omitempty" yaml:"validationRecord,omitempty"`
}

// Kind implements Finding.
func (ScrambledName) Kind() Kind { return KindScrambledName }

// Category implements Finding.
func (ScrambledName) Category() Category { return CategoryScrambledNames }

func (ScrambledName) isFinding() {}

// WrongIdentifier is a validation record whose identifier is unknown but
// whose name is registered under another identifier.
type WrongIdentifier struct {
	WrongIdentifier     string `json:"wrongIdentifier" yaml:"wrongIdentifier"`
	CorrectIdentifier   string `json:"correctIdentifier" yaml:"correctIdentifier"`
	Name                string `json:"name" yaml:"name"`
	WorkplaceMaster     string `json:"workplaceMaster" yaml:"workplaceMaster"`
	WorkplaceValidation string `json:"workplaceValidation" yaml:"workplaceValidation"`
	RowMaster           int    `json:"rowMaster" yaml:"rowMaster"`
	RowValidation       int    `json:"rowValidation" yaml:"rowValidation"`

	Master     *records.Record `json:"masterRecord,omitempty" yaml:"masterRecord,omitempty"`
	Validation *records.Record `json:"validationRecord,omitempty" yaml:"validationRecord,omitempty"`
}

// Kind implements Finding.
func (WrongIdentifier) Kind() Kind { return KindWrongIdentifier }

// Category implements Finding.
func (WrongIdentifier) Category() Category { return CategoryWrongIdentifiers }

func (WrongIdentifier) isFinding() {}

// WrongName is a validation record whose identifier is registered with a
// different name.
type WrongName struct {
	Identifier          string `json:"identifier" yaml:"identifier"`
	CorrectName         string `json:"correctName" yaml:"correctName"`
	WrongName           string `json:"wrongName" yaml:"wrongName"`
	WorkplaceMaster     string `json:"workplaceMaster" yaml:"workplaceMaster"`
	WorkplaceValidation string `json:"workplaceValidation" yaml:"workplaceValidation"`
	RowMaster           int    `json:"rowMaster" yaml:"rowMaster"`
	RowValidation       int    `json:"rowValidation" yaml:"rowValidation"`

	Master     *records.Record `json:"masterRecord,omitempty" yaml:"masterRecord,omitempty"`
	Validation *records.Record `json:"validationRecord,omitempty" yaml:"validationRecord,omitempty"`
}

// Kind implements Finding.
func (WrongName) Kind() Kind { return KindWrongName }

// Category implements Finding.
func (WrongName) Category() Category { return CategoryWrongNames }

func (WrongName) isFinding() {}

// WrongWorkplace is a validation record whose workplace differs from the
// master's.
type WrongWorkplace struct {
	Identifier       string `json:"identifier" yaml:"identifier"`
	Name             string `json:"name" yaml:"name"`
	CorrectWorkplace string `json:"correctWorkplace" yaml:"correctWorkplace"`
	WrongWorkplace   string `json:"wrongWorkplace" yaml:"wrongWorkplace"`
	RowMaster        int    `json:"rowMaster" yaml:"rowMaster"`
	RowValidation    int    `json:"rowValidation" yaml:"rowValidation"`

	Master     *records.Record `json:"masterRecord,omitempty" yaml:"masterRecord,omitempty"`
	Validation *records.Record `json:"validationRecord,omitempty" yaml:"validationRecord,omitempty"`
}

// Kind implements Finding.
func (WrongWorkplace) Kind() Kind { return KindWrongWorkplace }

// Category implements Finding.
func (WrongWorkplace) Category() Category { return CategoryWrongWorkplaces }

func (WrongWorkplace) isFinding() {}

// NotFound is a validation record matching no master record by identifier or
// name.
type NotFound struct {
	Identifier    string `json:"identifier" yaml:"identifier"`
	Name          string `json:"name" yaml:"name"`
	Workplace     string `json:"workplace" yaml:"workplace"`
	RowValidation int    `json:"rowValidation" yaml:"rowValidation"`

	Validation *records.Record `json:"validationRecord,omitempty" yaml:"validationRecord,omitempty"`
}

// Kind implements Finding.
func (NotFound) Kind() Kind { return KindNotFound }

// Category implements Finding.
func (NotFound) Category() Category { return CategoryNotFound }

func (NotFound) isFinding() {}
