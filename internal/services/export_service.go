package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var ErrNoDataForPeriod = errors.New("no measurements for this period")

const (
	CSVContentType  = "text/csv"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName = "Measurements"
)

var exportHeader = []string{
	"Date", "Day", "Time", "Free Cl", "Total Cl", "Bound Cl",
	"pH", "Water Temperature", "Note", "Entered By",
}

type ExportService struct {
	measurements *MeasurementService
	filePrefix   string
}

func NewExportService(measurements *MeasurementService, filePrefix string) *ExportService {
	return &ExportService{measurements: measurements, filePrefix: filePrefix}
}

// Filename builds the download name for one month's report. The month is not
// zero-padded.
func (s *ExportService) Filename(year, month int, ext string) string {
	return fmt.Sprintf("%s_%d_%d.%s", s.filePrefix, year, month, ext)
}

// CSV renders one month of readings as a comma-separated UTF-8 payload with
// a header row, rows in chronological order.
func (s *ExportService) CSV(year, month int) ([]byte, error) {
	rows, err := s.periodRows(year, month)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buffer.Bytes(), nil
}

// XLSX renders the identical row set as a single-sheet spreadsheet.
func (s *ExportService) XLSX(year, month int) ([]byte, error) {
	rows, err := s.periodRows(year, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buffer bytes.Buffer
	if err := f.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	return buffer.Bytes(), nil
}

// periodRows formats one month of readings into the shared column layout.
// Both export formats source this exact row set.
func (s *ExportService) periodRows(year, month int) ([][]string, error) {
	records, err := s.measurements.ListForPeriod(year, month)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoDataForPeriod
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		temperature := ""
		if r.Temperature != nil {
			temperature = fmt.Sprintf("%.1f", *r.Temperature)
		}
		enteredBy := ""
		if r.EnteredBy != nil {
			enteredBy = *r.EnteredBy
		}
		rows = append(rows, []string{
			r.Date.Format(dateLayout),
			r.Day,
			r.Time,
			fmt.Sprintf("%.2f", r.FreeChlorine),
			fmt.Sprintf("%.2f", r.TotalChlorine),
			fmt.Sprintf("%.2f", r.BoundChlorine),
			fmt.Sprintf("%.1f", r.PH),
			temperature,
			r.Note,
			enteredBy,
		})
	}
	return rows, nil
}
