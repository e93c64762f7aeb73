package export

import (
	"fmt"
	"path/filepath"

	"github.com/vexr-systems/fieldserve/internal/api"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const sheetName = "Reports"

// reportColumns mirrors the dashboard's Documents grid
var reportColumns = []string{
	"Report No.", "Date", "Customer", "Region", "Engineer",
	"Machine Type", "Service Type", "Model", "Serial Number", "Completed",
}

// Exporter writes fetched service reports into an Excel workbook,
// one row per report.
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates a new report exporter
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// WriteReports writes the reports to a workbook at outputPath
func (e *Exporter) WriteReports(reports []api.ServiceReport, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		e.logger.Warn("Failed to remove default sheet", zap.Error(err))
	}

	for col, header := range reportColumns {
		e.setCell(f, col, 1, header)
	}

	for i, r := range reports {
		row := i + 2
		values := []string{
			r.SerialReportNumber, r.Date, r.Customer, r.Region, r.EngineerName,
			r.MachineType, r.ServiceType, r.Model, r.SerialNumber, r.JobCompleted,
		}
		for col, value := range values {
			e.setCell(f, col, row, value)
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	e.logger.Info("Exported reports",
		zap.Int("count", len(reports)),
		zap.String("path", filepath.Clean(outputPath)))

	return nil
}

// setCell sets a cell by zero-based column and one-based row
func (e *Exporter) setCell(f *excelize.File, col, row int, value string) {
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		e.logger.Warn("Invalid cell coordinates",
			zap.Int("col", col),
			zap.Int("row", row),
			zap.Error(err))
		return
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		e.logger.Warn("Failed to set cell value",
			zap.String("cell", cell),
			zap.Error(err))
	}
}
