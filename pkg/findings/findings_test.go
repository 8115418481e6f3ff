package findings_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/rostercheck/pkg/findings"
)

func TestSetAddAndCount(t *testing.T) {
	set := findings.NewSet()
	assert.True(t, set.Empty())

	set.Add(findings.Duplicate{Type: findings.KindExactDuplicate, Identifier: "1", CurrentRow: 3, FirstRow: 2, Document: findings.Validation})
	set.Add(findings.ScrambledName{Identifier: "2"})
	set.Add(findings.WrongIdentifier{WrongIdentifier: "9", CorrectIdentifier: "3"})
	set.Add(findings.WrongName{Identifier: "4"})
	set.Add(findings.WrongName{Identifier: "5"})
	set.Add(findings.WrongWorkplace{Identifier: "4"})
	set.Add(findings.NotFound{Identifier: "6"})

	assert.Equal(t, 7, set.Total())
	assert.False(t, set.Empty())
	assert.Equal(t, 2, set.Count(findings.CategoryWrongNames))
	assert.Equal(t, 0, set.Count(findings.Category("bogus")))
	assert.Equal(t, map[findings.Category]int{
		findings.CategoryDuplicates:       1,
		findings.CategoryScrambledNames:   1,
		findings.CategoryWrongIdentifiers: 1,
		findings.CategoryWrongNames:       2,
		findings.CategoryWrongWorkplaces:  1,
		findings.CategoryNotFound:         1,
	}, set.Counts())
}

func TestSetAllOrder(t *testing.T) {
	set := findings.NewSet()
	set.Add(findings.NotFound{Identifier: "6"})
	set.Add(findings.WrongName{Identifier: "4"})
	set.Add(findings.Duplicate{Type: findings.KindScrambledDuplicate})

	var kinds []findings.Kind
	for _, f := range set.All() {
		kinds = append(kinds, f.Kind())
	}
	assert.Equal(t, []findings.Kind{
		findings.KindScrambledDuplicate,
		findings.KindWrongName,
		findings.KindNotFound,
	}, kinds)
}

func TestSetMerge(t *testing.T) {
	a := findings.NewSet()
	a.Add(findings.NotFound{Identifier: "1"})
	b := findings.NewSet()
	b.AddDuplicates(findings.Duplicate{Type: findings.KindExactDuplicate})
	b.Add(findings.NotFound{Identifier: "2"})

	a.Merge(b)
	a.Merge(nil)
	assert.Equal(t, 3, a.Total())
	assert.Equal(t, "1", a.NotFound[0].Identifier)
	assert.Equal(t, "2", a.NotFound[1].Identifier)
}

func TestIsDuplicate(t *testing.T) {
	set := findings.NewSet()
	set.AddDuplicates(findings.Duplicate{Type: findings.KindExactDuplicate, Identifier: "1", CurrentRow: 3, Document: findings.Validation})

	assert.True(t, set.IsDuplicate(findings.Validation, "1", 3))
	assert.False(t, set.IsDuplicate(findings.Validation, "1", 2))
	assert.False(t, set.IsDuplicate(findings.Master, "1", 3))
	assert.False(t, set.IsDuplicate(findings.Validation, "2", 3))

	var nilSet *findings.Set
	assert.False(t, nilSet.IsDuplicate(findings.Validation, "1", 3))
	assert.Equal(t, 0, nilSet.Total())
}

func TestFindingCategories(t *testing.T) {
	tests := []struct {
		finding  findings.Finding
		kind     findings.Kind
		category findings.Category
	}{
		{findings.Duplicate{Type: findings.KindExactDuplicate}, findings.KindExactDuplicate, findings.CategoryDuplicates},
		{findings.ScrambledName{}, findings.KindScrambledName, findings.CategoryScrambledNames},
		{findings.WrongIdentifier{}, findings.KindWrongIdentifier, findings.CategoryWrongIdentifiers},
		{findings.WrongName{}, findings.KindWrongName, findings.CategoryWrongNames},
		{findings.WrongWorkplace{}, findings.KindWrongWorkplace, findings.CategoryWrongWorkplaces},
		{findings.NotFound{}, findings.KindNotFound, findings.CategoryNotFound},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.finding.Kind())
			assert.Equal(t, tt.category, tt.finding.Category())
		})
	}
}

func TestDuplicateDisplayName(t *testing.T) {
	exact := findings.Duplicate{Type: findings.KindExactDuplicate, Name: "ANA LUZ"}
	assert.Equal(t, "ANA LUZ", exact.DisplayName())

	scrambled := findings.Duplicate{Type: findings.KindScrambledDuplicate, Name: "LUZ ANA", OriginalName: "ANA LUZ"}
	assert.Equal(t, "LUZ ANA (Original: ANA LUZ)", scrambled.DisplayName())
}

func TestCategories(t *testing.T) {
	cats := findings.Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, findings.CategoryDuplicates, cats[0])
	assert.Equal(t, findings.CategoryNotFound, cats[5])
	assert.Equal(t, "Wrong Workplaces", findings.CategoryWrongWorkplaces.Title())

	c, ok := findings.ParseCategory("wrong_names")
	assert.True(t, ok)
	assert.Equal(t, findings.CategoryWrongNames, c)
	_, ok = findings.ParseCategory("nope")
	assert.False(t, ok)
}

func TestDocumentLabel(t *testing.T) {
	assert.Equal(t, "Master", findings.Master.Label())
	assert.Equal(t, "Validation", findings.Validation.Label())
}

func TestFindingJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(findings.WrongIdentifier{WrongIdentifier: "999", CorrectIdentifier: "123", RowValidation: 2})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"wrongIdentifier":"999"`)
	assert.Contains(t, string(data), `"correctIdentifier":"123"`)
	assert.NotContains(t, string(data), "masterRecord")
}
