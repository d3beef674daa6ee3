package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/martinkovac/poolwatch/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportFixture(t *testing.T) *ExportService {
	t.Helper()
	db := newTestDB(t)
	measurements := NewMeasurementService(db)
	userID := seedUser(t, db, "peter")

	_, err := measurements.Create(userID, &dto.CreateMeasurementRequest{
		Date: "2025-06-02", Time: "08:30",
		FreeChlorine: 0.5, TotalChlorine: 0.9, PH: 7.2,
		Temperature: floatPtr(24.5),
		Note:        "morning check",
	})
	require.NoError(t, err)

	_, err = measurements.Create(userID, &dto.CreateMeasurementRequest{
		Date: "2025-06-15", Time: "19:00",
		FreeChlorine: 1.0, TotalChlorine: 0.8, PH: 6.8,
	})
	require.NoError(t, err)

	// outside the exported month
	_, err = measurements.Create(userID, &dto.CreateMeasurementRequest{
		Date: "2025-07-01", Time: "08:00",
		FreeChlorine: 0.5, TotalChlorine: 0.9, PH: 7.0,
	})
	require.NoError(t, err)

	return NewExportService(measurements, "pool_measurements")
}

func TestExportCSV(t *testing.T) {
	svc := newExportFixture(t)

	payload, err := svc.CSV(2025, 6)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, []string{
		"Date", "Day", "Time", "Free Cl", "Total Cl", "Bound Cl",
		"pH", "Water Temperature", "Note", "Entered By",
	}, records[0])

	assert.Equal(t, []string{
		"2025-06-02", "Pondelok", "08:30", "0.50", "0.90", "0.40",
		"7.2", "24.5", "morning check", "peter",
	}, records[1])

	// clamped bound chlorine and empty temperature column
	assert.Equal(t, []string{
		"2025-06-15", "Nedeľa", "19:00", "1.00", "0.80", "0.00",
		"6.8", "", "", "peter",
	}, records[2])
}

func TestExportXLSXMatchesCSV(t *testing.T) {
	svc := newExportFixture(t)

	csvPayload, err := svc.CSV(2025, 6)
	require.NoError(t, err)
	csvRows, err := csv.NewReader(bytes.NewReader(csvPayload)).ReadAll()
	require.NoError(t, err)

	xlsxPayload, err := svc.XLSX(2025, 6)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(xlsxPayload))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Measurements"}, f.GetSheetList())

	xlsxRows, err := f.GetRows("Measurements")
	require.NoError(t, err)
	require.Len(t, xlsxRows, len(csvRows))

	// identical row count, order and column values in both artifacts
	for i := range csvRows {
		for j, want := range csvRows[i] {
			var got string
			if j < len(xlsxRows[i]) {
				got = xlsxRows[i][j]
			}
			assert.Equal(t, want, got, "row %d column %d", i, j)
		}
	}
}

func TestExportNoDataForPeriod(t *testing.T) {
	svc := newExportFixture(t)

	_, err := svc.CSV(2025, 1)
	require.ErrorIs(t, err, ErrNoDataForPeriod)

	_, err = svc.XLSX(2025, 1)
	require.ErrorIs(t, err, ErrNoDataForPeriod)
}

func TestExportFilename(t *testing.T) {
	svc := NewExportService(nil, "pool_measurements")

	// month is not zero-padded
	assert.Equal(t, "pool_measurements_2025_6.csv", svc.Filename(2025, 6, "csv"))
	assert.Equal(t, "pool_measurements_2025_12.xlsx", svc.Filename(2025, 12, "xlsx"))
}
