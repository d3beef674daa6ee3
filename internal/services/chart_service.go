package services

import (
	"fmt"
	"time"

	"github.com/martinkovac/poolwatch/internal/dto"
)

type ChartService struct {
	measurements *MeasurementService
}

func NewChartService(measurements *MeasurementService) *ChartService {
	return &ChartService{measurements: measurements}
}

// Series turns the chronological history into three record-aligned series
// keyed by the combined date+time timestamp: one point per stored reading,
// no aggregation. Readings without a temperature keep a null-valued point so
// the series stay aligned.
func (s *ChartService) Series() (*dto.ChartResponse, error) {
	records, err := s.measurements.ListAllAscending()
	if err != nil {
		return nil, err
	}

	resp := &dto.ChartResponse{
		Chlorine:    make([]dto.ChlorinePoint, 0, len(records)),
		PH:          make([]dto.PHPoint, 0, len(records)),
		Temperature: make([]dto.TemperaturePoint, 0, len(records)),
	}

	for _, r := range records {
		ts, err := combineTimestamp(r.Date, r.Time)
		if err != nil {
			return nil, fmt.Errorf("stored reading has malformed time %q: %w", r.Time, err)
		}

		resp.Chlorine = append(resp.Chlorine, dto.ChlorinePoint{
			Timestamp: ts,
			Free:      r.FreeChlorine,
			Total:     r.TotalChlorine,
			Bound:     r.BoundChlorine,
		})
		resp.PH = append(resp.PH, dto.PHPoint{Timestamp: ts, Value: r.PH})
		resp.Temperature = append(resp.Temperature, dto.TemperaturePoint{Timestamp: ts, Value: r.Temperature})
	}

	return resp, nil
}

func combineTimestamp(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(timeLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
