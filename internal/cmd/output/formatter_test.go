package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/rostercheck/internal/cmd/table"
)

var sample = Data{
	Headers:         []string{"Category", "Count"},
	Rows:            [][]string{{"Wrong Names", "2"}, {"Persons Not Found", "1"}},
	ColumnAlignment: []table.Align{table.AlignLeft, table.AlignRight},
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, sample))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "CATEGORY")
	assert.Contains(t, out, "Wrong Names")
	assert.Contains(t, out, "Persons Not Found")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"total": 3}))
	assert.JSONEq(t, `{"total": 3}`, buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, struct {
		Total int `json:"total"`
	}{Total: 3}))
	assert.Equal(t, "{\n  \"total\": 3\n}\n", buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, map[string][]string{"names": {"ANA", "HUGO"}}))
	assert.Equal(t, "names:\n- ANA\n- HUGO\n", buf.String())
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatMarkdown).Format(&buf, sample))
	out := buf.String()
	assert.Contains(t, out, "| Category")
	assert.Contains(t, out, "Wrong Names")

	buf.Reset()
	require.NoError(t, NewFormatter(FormatMarkdown).Format(&buf, map[string]int{"total": 3}))
	assert.Contains(t, buf.String(), "```json")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "TABLE", want: FormatTable},
		{in: "json", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "md", want: FormatMarkdown},
		{in: "markdown", want: FormatMarkdown},
		{in: "wide", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
	assert.True(t, IsTabular(FormatMarkdown))
	assert.False(t, IsTabular(FormatJSON))
}
