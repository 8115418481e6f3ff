package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/rostercheck/pkg/findings"
	"github.com/agentstation/rostercheck/pkg/records"
	"github.com/agentstation/rostercheck/pkg/report"
)

func TestSummaryToTableData(t *testing.T) {
	set := findings.NewSet()
	set.Add(findings.NotFound{Identifier: "5", Name: "ANA", RowValidation: 2})
	data := SummaryToTableData(report.New(set))

	assert.Equal(t, []string{"Category", "Count"}, data.Headers)
	require.Len(t, data.Rows, 7)
	assert.Equal(t, []string{"Persons Not Found", "1"}, data.Rows[5])
	assert.Equal(t, []string{"Total", "1"}, data.Rows[6])
}

func TestColumnsToTableData(t *testing.T) {
	ds := records.NewDataset("roster.csv", []string{"CEDULA", "NOMBRE", "EDAD"}, nil)
	data := ColumnsToTableData(ds, records.Fields{Identifier: "CEDULA", Name: "NOMBRE"})

	assert.Equal(t, [][]string{
		{"1", "CEDULA", "identifier"},
		{"2", "NOMBRE", "name"},
		{"3", "EDAD", "-"},
	}, data.Rows)
}
