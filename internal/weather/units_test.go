package weather

import (
	"math"
	"testing"

	pmodel "WeatherHubBot/pkg/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		celsius float64
		unit    pmodel.TemperatureUnit
		want    float64
	}{
		{0, pmodel.Celsius, 0},
		{21.5, pmodel.Celsius, 21.5},
		{0, pmodel.Fahrenheit, 32},
		{100, pmodel.Fahrenheit, 212},
		{-40, pmodel.Fahrenheit, -40},
		{0, pmodel.Kelvin, 273.15},
		{100, pmodel.Kelvin, 373.15},
		{-273.15, pmodel.Kelvin, 0},
		{15, "unknown", 15},
	}

	for _, tt := range tests {
		if got := ConvertTemperature(tt.celsius, tt.unit); !almostEqual(got, tt.want) {
			t.Errorf("ConvertTemperature(%v, %s) = %v, want %v", tt.celsius, tt.unit, got, tt.want)
		}
	}
}

func TestConvertTemperature_CelsiusIsIdentity(t *testing.T) {
	for _, c := range []float64{-30, -0.5, 0, 12.34, 45} {
		once := ConvertTemperature(c, pmodel.Celsius)
		twice := ConvertTemperature(once, pmodel.Celsius)
		if once != c || twice != c {
			t.Errorf("Celsius conversion of %v changed value: %v, %v", c, once, twice)
		}
	}
}

func TestConvertSpeed(t *testing.T) {
	tests := []struct {
		mps  float64
		unit pmodel.SpeedUnit
		want float64
	}{
		{10, pmodel.MetersPerSecond, 10},
		{10, pmodel.KilometersPerHour, 36},
		{10, pmodel.MilesPerHour, 22.369362920544},
		{10, pmodel.Knots, 19.438444924406},
		{0, pmodel.KilometersPerHour, 0},
	}

	for _, tt := range tests {
		if got := ConvertSpeed(tt.mps, tt.unit); !almostEqual(got, tt.want) {
			t.Errorf("ConvertSpeed(%v, %s) = %v, want %v", tt.mps, tt.unit, got, tt.want)
		}
	}
}
