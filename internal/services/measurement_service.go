package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/martinkovac/poolwatch/internal/chemistry"
	"github.com/martinkovac/poolwatch/internal/dto"
	"github.com/martinkovac/poolwatch/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime   = errors.New("time must be in HH:MM format")
	ErrInvalidPeriod = errors.New("month must be between 1 and 12")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// MeasurementRecord is one stored reading joined with the recorder's
// username. EnteredBy is nil when the user reference dangles.
type MeasurementRecord struct {
	ID            uuid.UUID `gorm:"column:id"`
	Date          time.Time `gorm:"column:date"`
	Day           string    `gorm:"column:day"`
	Time          string    `gorm:"column:time"`
	FreeChlorine  float64   `gorm:"column:free_chlorine"`
	TotalChlorine float64   `gorm:"column:total_chlorine"`
	BoundChlorine float64   `gorm:"column:bound_chlorine"`
	PH            float64   `gorm:"column:ph"`
	Temperature   *float64  `gorm:"column:temperature"`
	Note          string    `gorm:"column:note"`
	EnteredBy     *string   `gorm:"column:entered_by"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

type MeasurementService struct {
	db *gorm.DB
}

func NewMeasurementService(db *gorm.DB) *MeasurementService {
	return &MeasurementService{db: db}
}

// Create validates a raw reading, derives the bound chlorine and day label,
// and persists the record for the acting user. Stored rows are never updated.
func (s *MeasurementService) Create(userID uuid.UUID, req *dto.CreateMeasurementRequest) (*models.Measurement, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	clock := req.Time
	if clock == "" {
		clock = time.Now().Format(timeLayout)
	}
	parsed, err := time.Parse(timeLayout, clock)
	if err != nil {
		return nil, ErrInvalidTime
	}
	clock = parsed.Format(timeLayout)

	if err := chemistry.ValidateReading(req.FreeChlorine, req.TotalChlorine, req.PH, req.Temperature); err != nil {
		return nil, err
	}

	m := models.Measurement{
		ID:            uuid.New(),
		Date:          date,
		Day:           chemistry.DayOfWeek(date),
		Time:          clock,
		FreeChlorine:  req.FreeChlorine,
		TotalChlorine: req.TotalChlorine,
		BoundChlorine: chemistry.BoundChlorine(req.FreeChlorine, req.TotalChlorine),
		PH:            req.PH,
		Temperature:   req.Temperature,
		Note:          req.Note,
		UserID:        &userID,
	}

	if err := s.db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to store measurement: %w", err)
	}

	return &m, nil
}

// ListAll returns the whole history, most recent reading first.
func (s *MeasurementService) ListAll() ([]MeasurementRecord, error) {
	return s.list("measurements.date DESC, measurements.time DESC", nil, nil)
}

// ListAllAscending returns the whole history in chronological order.
func (s *MeasurementService) ListAllAscending() ([]MeasurementRecord, error) {
	return s.list("measurements.date ASC, measurements.time ASC", nil, nil)
}

// ListForPeriod returns the readings of one calendar month in chronological
// order.
func (s *MeasurementService) ListForPeriod(year, month int) ([]MeasurementRecord, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return s.list("measurements.date ASC, measurements.time ASC", &start, &end)
}

func (s *MeasurementService) list(order string, start, end *time.Time) ([]MeasurementRecord, error) {
	query := s.db.Table("measurements").
		Select(`
			measurements.id,
			measurements.date,
			measurements.day,
			measurements.time,
			measurements.free_chlorine,
			measurements.total_chlorine,
			measurements.bound_chlorine,
			measurements.ph,
			measurements.temperature,
			measurements.note,
			users.username AS entered_by,
			measurements.created_at
		`).
		Joins("LEFT JOIN users ON users.id = measurements.user_id").
		Order(order)

	if start != nil && end != nil {
		query = query.Where("measurements.date >= ? AND measurements.date < ?", *start, *end)
	}

	var records []MeasurementRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	return records, nil
}

// Count returns the size of the whole history.
func (s *MeasurementService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Measurement{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count measurements: %w", err)
	}
	return count, nil
}

// History builds the display read model: the full history (newest first),
// optionally narrowed to a calendar month, with a classification band on
// every row. TotalRecords counts the unfiltered history so callers can tell
// an empty month apart from an empty store.
func (s *MeasurementService) History(year, month *int) (*dto.HistoryResponse, error) {
	if (year == nil) != (month == nil) {
		return nil, ErrInvalidPeriod
	}
	if month != nil && (*month < 1 || *month > 12) {
		return nil, ErrInvalidPeriod
	}

	records, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	total, err := s.Count()
	if err != nil {
		return nil, err
	}

	rows := make([]dto.MeasurementRow, 0, len(records))
	for _, r := range records {
		if year != nil && (r.Date.Year() != *year || int(r.Date.Month()) != *month) {
			continue
		}
		rows = append(rows, dto.MeasurementRow{
			ID:            r.ID,
			Date:          r.Date.Format(dateLayout),
			Day:           r.Day,
			Time:          r.Time,
			FreeChlorine:  r.FreeChlorine,
			TotalChlorine: r.TotalChlorine,
			BoundChlorine: r.BoundChlorine,
			PH:            r.PH,
			Temperature:   r.Temperature,
			Note:          r.Note,
			EnteredBy:     r.EnteredBy,
			Band:          chemistry.Classify(r.FreeChlorine),
			CreatedAt:     r.CreatedAt,
		})
	}

	return &dto.HistoryResponse{
		Data:         rows,
		Total:        len(rows),
		TotalRecords: total,
		Year:         year,
		Month:        month,
	}, nil
}
