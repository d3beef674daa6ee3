package chemistry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundChlorine(t *testing.T) {
	tests := []struct {
		name  string
		free  float64
		total float64
		want  float64
	}{
		{"total above free", 0.5, 0.9, 0.40},
		{"free above total clamps to zero", 1.0, 0.8, 0.00},
		{"equal values", 0.6, 0.6, 0.00},
		{"both zero", 0, 0, 0},
		{"rounds to two decimals", 0.111, 0.333, 0.22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BoundChlorine(tt.free, tt.total), 1e-9)
		})
	}
}

func TestBoundChlorineNeverNegative(t *testing.T) {
	for free := 0.0; free <= 2.0; free += 0.1 {
		for total := 0.0; total <= 2.0; total += 0.1 {
			assert.GreaterOrEqual(t, BoundChlorine(free, total), 0.0)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		value float64
		want  Band
	}{
		{0.0, BandLow},
		{0.3, BandLow},
		{0.35, BandNone},
		{0.4, BandNormal},
		{0.5, BandNormal},
		{0.7, BandNormal},
		{0.75, BandNone},
		{0.8, BandHigh},
		{1.5, BandHigh},
		{-0.1, BandNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.value), "value %v", tt.value)
	}
}

func TestDayOfWeek(t *testing.T) {
	// 2025-06-02 is a Monday
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	want := []string{"Pondelok", "Utorok", "Streda", "Štvrtok", "Piatok", "Sobota", "Nedeľa"}
	for i := 0; i < 7; i++ {
		assert.Equal(t, want[i], DayOfWeek(monday.AddDate(0, 0, i)))
	}
}

func TestValidateReading(t *testing.T) {
	temp := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		free    float64
		total   float64
		ph      float64
		temp    *float64
		wantErr error
	}{
		{"valid", 0.5, 0.9, 7.2, temp(24.0), nil},
		{"valid without temperature", 0.5, 0.9, 7.2, nil, nil},
		{"negative free chlorine", -0.1, 0.9, 7.2, nil, ErrNegativeChlorine},
		{"negative total chlorine", 0.5, -0.9, 7.2, nil, ErrNegativeChlorine},
		{"ph too low", 0.5, 0.9, -0.1, nil, ErrInvalidPH},
		{"ph too high", 0.5, 0.9, 14.1, nil, ErrInvalidPH},
		{"ph boundaries ok", 0.5, 0.9, 0, nil, nil},
		{"temperature too low", 0.5, 0.9, 7.0, temp(-10.5), ErrInvalidTemperature},
		{"temperature too high", 0.5, 0.9, 7.0, temp(60.5), ErrInvalidTemperature},
		{"temperature boundaries ok", 0.5, 0.9, 7.0, temp(60.0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReading(tt.free, tt.total, tt.ph, tt.temp)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
