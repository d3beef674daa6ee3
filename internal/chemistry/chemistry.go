package chemistry

import (
	"errors"
	"math"
	"time"
)

var (
	ErrNegativeChlorine   = errors.New("chlorine values must not be negative")
	ErrInvalidPH          = errors.New("ph must be between 0 and 14")
	ErrInvalidTemperature = errors.New("temperature must be between -10 and 60")
)

// Band is the display classification of a free-chlorine value.
type Band string

const (
	BandLow    Band = "low"
	BandNormal Band = "normal"
	BandHigh   Band = "high"
	BandNone   Band = ""
)

// weekdays is Monday-first, matching the labels shown on the recording form.
var weekdays = [7]string{
	"Pondelok", "Utorok", "Streda", "Štvrtok", "Piatok", "Sobota", "Nedeľa",
}

// BoundChlorine derives bound chlorine from free and total chlorine,
// clamped at zero and rounded to two decimal places.
func BoundChlorine(free, total float64) float64 {
	bound := total - free
	if bound < 0 {
		bound = 0
	}
	return math.Round(bound*100) / 100
}

// DayOfWeek returns the weekday label stored alongside a measurement date.
func DayOfWeek(date time.Time) string {
	// time.Weekday is Sunday-first
	return weekdays[(int(date.Weekday())+6)%7]
}

// Classify assigns a free-chlorine value to a display band. Values in the
// gap between 0.3 and 0.4, and negative values, stay unclassified.
func Classify(freeChlorine float64) Band {
	switch {
	case freeChlorine < 0:
		return BandNone
	case freeChlorine <= 0.3:
		return BandLow
	case freeChlorine >= 0.4 && freeChlorine <= 0.7:
		return BandNormal
	case freeChlorine >= 0.8:
		return BandHigh
	default:
		return BandNone
	}
}

// ValidateReading checks the raw numeric fields of a reading before anything
// is derived or stored. Temperature is optional.
func ValidateReading(free, total, ph float64, temperature *float64) error {
	if free < 0 || total < 0 {
		return ErrNegativeChlorine
	}
	if ph < 0 || ph > 14 {
		return ErrInvalidPH
	}
	if temperature != nil && (*temperature < -10 || *temperature > 60) {
		return ErrInvalidTemperature
	}
	return nil
}
