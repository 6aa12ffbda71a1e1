package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	table := Table{
		Headers: []string{"Day", "Subject"},
		Rows: [][]string{
			{"Monday", "Mathematics"},
			{"Tuesday"},
		},
	}

	content, err := exporter.Render(table)
	require.NoError(t, err)
	assert.Equal(t, "Day,Subject\nMonday,Mathematics\nTuesday,\n", string(content))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Table{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()

	table := Table{
		Headers: []string{"Day", "Subject"},
		Rows:    [][]string{{"Monday", "Mathematics"}},
	}

	content, err := exporter.Render(table, "X IPA 1 weekly timetable")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	exporter := NewPDFExporter()

	_, err := exporter.Render(Table{}, "")
	assert.Error(t, err)
}
