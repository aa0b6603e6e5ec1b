package bot

import pmodel "WeatherHubBot/pkg/models"

// CommandStart: единственная поддерживаемая команда
const CommandStart = "start"

// Токены inline-кнопок, сравниваются как есть
const (
	CallbackStart          = "start"
	CallbackToday          = "today"
	CallbackTomorrow       = "tomorrow"
	CallbackSettingsHub    = "settings-hub"
	CallbackSelectLanguage = "select-language"
	CallbackSelectUnits    = "select-units"
)

var languageCallbacks = map[pmodel.Language]string{
	pmodel.LanguageUkrainian: "ukrainian",
	pmodel.LanguageEnglish:   "english",
	pmodel.LanguageGerman:    "deutsch",
}

var temperatureCallbacks = map[pmodel.TemperatureUnit]string{
	pmodel.Celsius:    "celsius",
	pmodel.Fahrenheit: "fahrenheit",
	pmodel.Kelvin:     "kelvin",
}

var speedCallbacks = map[pmodel.SpeedUnit]string{
	pmodel.KilometersPerHour: "kmh",
	pmodel.MetersPerSecond:   "mps",
	pmodel.MilesPerHour:      "mph",
	pmodel.Knots:             "knots",
}

// CallbackTokens возвращает все токены, на которые реагирует роутер
func CallbackTokens() []string {
	tokens := []string{
		CallbackStart,
		CallbackToday,
		CallbackTomorrow,
		CallbackSettingsHub,
		CallbackSelectLanguage,
		CallbackSelectUnits,
	}
	for _, lang := range pmodel.Languages {
		tokens = append(tokens, languageCallbacks[lang])
	}
	for _, unit := range pmodel.TemperatureUnits {
		tokens = append(tokens, temperatureCallbacks[unit])
	}
	for _, unit := range pmodel.SpeedUnits {
		tokens = append(tokens, speedCallbacks[unit])
	}
	return tokens
}
