package weather

import "testing"

func TestEmoji(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"light rain", "🌧️"},
		{"Легкий дощ", "🌧️"},
		{"Leichter Regen", "🌧️"},
		{"thunderstorm with light rain", "🌧️"},
		{"snow", "❄️"},
		{"сніг", "❄️"},
		{"broken clouds", "☁️"},
		{"уривчасті хмари", "☁️"},
		{"Mäßig bewölkt", "☁️"},
		{"clear sky", "☀️"},
		{"чисте небо", "☀️"},
		{"Klarer Himmel", "☀️"},
		{"mist", "🌫️"},
		{"туман", "🌫️"},
		{"thunderstorm", "⛈️"},
		{"гроза", "⛈️"},
		{"tornado", "🌤️"},
		{"", "🌤️"},
	}

	for _, tt := range tests {
		if got := Emoji(tt.description); got != tt.want {
			t.Errorf("Emoji(%q) = %s, want %s", tt.description, got, tt.want)
		}
	}
}
