package models

// Language: язык интерфейса и описаний прогноза
type Language string

const (
	LanguageUkrainian Language = "uk"
	LanguageEnglish   Language = "en"
	LanguageGerman    Language = "de"
)

// DefaultLanguage используется, пока пользователь не выбрал язык
const DefaultLanguage = LanguageUkrainian

// Languages перечисляет все поддерживаемые языки в порядке отображения
var Languages = []Language{LanguageUkrainian, LanguageEnglish, LanguageGerman}

// ParseLanguage возвращает язык по коду; неизвестный код даёт язык по умолчанию
func ParseLanguage(code string) Language {
	for _, lang := range Languages {
		if string(lang) == code {
			return lang
		}
	}
	return DefaultLanguage
}

// APICode возвращает код языка, который понимает провайдер прогноза
func (l Language) APICode() string {
	switch l {
	case LanguageUkrainian:
		return "ua"
	case LanguageGerman:
		return "de"
	default:
		return "en"
	}
}

type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"
	Kelvin     TemperatureUnit = "K"
)

const DefaultTemperatureUnit = Celsius

var TemperatureUnits = []TemperatureUnit{Celsius, Fahrenheit, Kelvin}

func ParseTemperatureUnit(s string) TemperatureUnit {
	for _, u := range TemperatureUnits {
		if string(u) == s {
			return u
		}
	}
	return DefaultTemperatureUnit
}

// Symbol: обозначение единицы в тексте прогноза
func (u TemperatureUnit) Symbol() string {
	switch u {
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "°C"
	}
}

type SpeedUnit string

const (
	KilometersPerHour SpeedUnit = "km/h"
	MetersPerSecond   SpeedUnit = "m/s"
	MilesPerHour      SpeedUnit = "mph"
	Knots             SpeedUnit = "kt"
)

const DefaultSpeedUnit = KilometersPerHour

var SpeedUnits = []SpeedUnit{KilometersPerHour, MetersPerSecond, MilesPerHour, Knots}

func ParseSpeedUnit(s string) SpeedUnit {
	for _, u := range SpeedUnits {
		if string(u) == s {
			return u
		}
	}
	return DefaultSpeedUnit
}
