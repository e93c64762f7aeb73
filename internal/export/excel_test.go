package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vexr-systems/fieldserve/internal/api"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestWriteReports(t *testing.T) {
	reports := []api.ServiceReport{
		{
			SerialReportNumber: "SR-1001",
			Date:               "2025-06-01",
			Customer:           "Delta Foods",
			Region:             "Cairo",
			EngineerName:       "Amr Hassan",
			MachineType:        "CIJ",
			ServiceType:        "SERVICE_CALL",
			Model:              "CX-350",
			SerialNumber:       "SN-88821",
			JobCompleted:       "yes",
		},
		{
			SerialReportNumber: "SR-1002",
			MachineType:        "TTO",
			JobCompleted:       "no",
		},
	}

	path := filepath.Join(t.TempDir(), "reports.xlsx")
	exporter := NewExporter(zap.NewNop())
	assert.NoError(t, exporter.WriteReports(reports, path))

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	header, err := f.GetCellValue(sheetName, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Report No.", header)

	cell, err := f.GetCellValue(sheetName, "C2")
	assert.NoError(t, err)
	assert.Equal(t, "Delta Foods", cell)

	cell, err = f.GetCellValue(sheetName, "F3")
	assert.NoError(t, err)
	assert.Equal(t, "TTO", cell)

	cell, err = f.GetCellValue(sheetName, "J3")
	assert.NoError(t, err)
	assert.Equal(t, "no", cell)
}

func TestWriteReports_EmptyListStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	exporter := NewExporter(zap.NewNop())
	assert.NoError(t, exporter.WriteReports(nil, path))

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, reportColumns, rows[0])
	}
}
