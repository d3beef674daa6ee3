package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/martinkovac/poolwatch/internal/chemistry"
)

type CreateMeasurementRequest struct {
	Date          string   `json:"date"` // YYYY-MM-DD
	Time          string   `json:"time"` // HH:MM, defaults to now when empty
	FreeChlorine  float64  `json:"free_chlorine"`
	TotalChlorine float64  `json:"total_chlorine"`
	PH            float64  `json:"ph"`
	Temperature   *float64 `json:"temperature"`
	Note          string   `json:"note"`
}

// MeasurementRow is the history read model: one stored reading joined with
// the recorder's username and the display band for its free-chlorine value.
type MeasurementRow struct {
	ID            uuid.UUID      `json:"id"`
	Date          string         `json:"date"`
	Day           string         `json:"day"`
	Time          string         `json:"time"`
	FreeChlorine  float64        `json:"free_chlorine"`
	TotalChlorine float64        `json:"total_chlorine"`
	BoundChlorine float64        `json:"bound_chlorine"`
	PH            float64        `json:"ph"`
	Temperature   *float64       `json:"temperature"`
	Note          string         `json:"note,omitempty"`
	EnteredBy     *string        `json:"entered_by"`
	Band          chemistry.Band `json:"band"`
	CreatedAt     time.Time      `json:"created_at"`
}

// HistoryResponse distinguishes an empty period from an empty store:
// TotalRecords counts the whole history regardless of the period filter.
type HistoryResponse struct {
	Data         []MeasurementRow `json:"data"`
	Total        int              `json:"total"`
	TotalRecords int64            `json:"total_records"`
	Year         *int             `json:"year,omitempty"`
	Month        *int             `json:"month,omitempty"`
}

// ChlorinePoint carries the three chlorine values of one reading.
type ChlorinePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Free      float64   `json:"free"`
	Total     float64   `json:"total"`
	Bound     float64   `json:"bound"`
}

type PHPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// TemperaturePoint keeps a point for every reading; Value stays null for
// readings recorded without a temperature.
type TemperaturePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     *float64  `json:"value"`
}

type ChartResponse struct {
	Chlorine    []ChlorinePoint    `json:"chlorine"`
	PH          []PHPoint          `json:"ph"`
	Temperature []TemperaturePoint `json:"temperature"`
}
