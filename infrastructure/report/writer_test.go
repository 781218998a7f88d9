package report

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report/internal/domain"
)

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestCSVWriter_WriteTeamReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewCSVWriter(fs)

	err := writer.WriteTeamReport("out/team.csv", []domain.TeamAggregate{
		{TeamID: 2, TeamName: "Beta", GrossRevenue: 123.456},
		{TeamID: 1, TeamName: "Alpha", GrossRevenue: 70},
	})
	require.NoError(t, err)

	assert.Equal(t, "Team,GrossRevenue\nBeta,123.46\nAlpha,70.00\n", readFile(t, fs, "out/team.csv"))
}

func TestCSVWriter_WriteProductReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewCSVWriter(fs)

	err := writer.WriteProductReport("product.csv", []domain.ProductAggregate{
		{ProductID: 10, Name: "Widget", GrossRevenue: 70, TotalUnits: 25, DiscountCost: 10},
		{ProductID: 11, Name: "Gadget", GrossRevenue: 30, TotalUnits: 15},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"Name,GrossRevenue,TotalUnits,DiscountCost\nWidget,70.00,25,10.00\nGadget,30.00,15,0.00\n",
		readFile(t, fs, "product.csv"),
	)
}

func TestCSVWriter_EmptyReportHasOnlyHeader(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewCSVWriter(fs)

	require.NoError(t, writer.WriteTeamReport("team.csv", nil))
	require.NoError(t, writer.WriteProductReport("product.csv", []domain.ProductAggregate{}))

	assert.Equal(t, "Team,GrossRevenue\n", readFile(t, fs, "team.csv"))
	assert.Equal(t, "Name,GrossRevenue,TotalUnits,DiscountCost\n", readFile(t, fs, "product.csv"))
}

func TestCSVWriter_OverwritesExistingFileWithoutLeftovers(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "reports/team.csv", []byte("conteúdo antigo bem mais longo que o novo\n"), 0o644))

	writer := NewCSVWriter(fs)
	require.NoError(t, writer.WriteTeamReport("reports/team.csv", []domain.TeamAggregate{{TeamID: 1, TeamName: "Alpha", GrossRevenue: 30}}))

	assert.Equal(t, "Team,GrossRevenue\nAlpha,30.00\n", readFile(t, fs, "reports/team.csv"))

	entries, err := afero.ReadDir(fs, "reports")
	require.NoError(t, err)
	require.Len(t, entries, 1, "arquivo temporário não deve sobrar")
	assert.Equal(t, "team.csv", entries[0].Name())
}

func TestCSVWriter_NamesAreNotQuoted(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewCSVWriter(fs)

	require.NoError(t, writer.WriteTeamReport("team.csv", []domain.TeamAggregate{{TeamID: 1, TeamName: "Beta, Inc", GrossRevenue: 1}}))

	assert.Equal(t, "Team,GrossRevenue\nBeta, Inc,1.00\n", readFile(t, fs, "team.csv"))
}

func TestCSVWriter_UnwritableDestination(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	writer := NewCSVWriter(fs)

	err := writer.WriteTeamReport("team.csv", nil)
	assert.Error(t, err)
}

func TestCSVWriter_WriteDiagnostics(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewCSVWriter(fs)

	diagnostics := []domain.Diagnostic{
		{Source: "sales", Kind: domain.DiagnosticMalformedLine, Line: 3, Raw: "abc,1,50,2.5", Reason: "want 5, got 4: unexpected number of fields"},
		{Source: "team", Kind: domain.DiagnosticFileNotFound, Reason: "teams.csv: file not found"},
	}
	require.NoError(t, writer.WriteDiagnostics("diagnostics.json", diagnostics))

	expected := `[
  {
    "source": "sales",
    "kind": "MalformedLine",
    "line": 3,
    "raw": "abc,1,50,2.5",
    "reason": "want 5, got 4: unexpected number of fields"
  },
  {
    "source": "team",
    "kind": "FileNotFound",
    "reason": "teams.csv: file not found"
  }
]
`
	assert.JSONEq(t, expected, readFile(t, fs, "diagnostics.json"))

	require.NoError(t, writer.WriteDiagnostics("empty.json", nil))
	assert.JSONEq(t, "[]", readFile(t, fs, "empty.json"))
}
