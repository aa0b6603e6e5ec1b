package locales

// Ключи сообщений
const (
	KeyStart               = "start"
	KeyHubMessage          = "hub-message"
	KeyCitySaved           = "city-saved"
	KeyCityInvalid         = "city-invalid"
	KeySettingsHub         = "settings-hub"
	KeySettingsLanguageHub = "settings-language-hub"
	KeySettingsUnitsHub    = "settings-units-hub"

	KeyLanguageSuccess     = "language-success"
	KeyLanguageNoChange    = "language-no-change"
	KeyTemperatureSuccess  = "temperature-success"
	KeyTemperatureNoChange = "temperature-no-change"
	KeySpeedSuccess        = "speed-success"
	KeySpeedNoChange       = "speed-no-change"

	KeyError          = "error"
	KeyUserNotFound   = "user-not-found"
	KeyServiceError   = "service-error"
	KeyAPIFetchError  = "api-fetch-error"
	KeyNoForecastData = "no-forecast-data"
	KeyMissingMessage = "missing-message"

	KeyWeather                 = "weather"
	KeyWeatherWindSpeedUnknown = "weather-wind-speed-unknown"
	KeyDayToday                = "day-today"
	KeyDayTomorrow             = "day-tomorrow"

	KeySpeedKmh = "speed-kmh"
	KeySpeedMps = "speed-mps"
	KeySpeedMph = "speed-mph"
	KeySpeedKt  = "speed-kt"

	KeyBtnToday      = "btn-today"
	KeyBtnTomorrow   = "btn-tomorrow"
	KeyBtnSettings   = "btn-settings"
	KeyBtnLanguage   = "btn-language"
	KeyBtnUnits      = "btn-units"
	KeyBtnBack       = "btn-back"
	KeyBtnToHub      = "btn-to-hub"
	KeyBtnCelsius    = "btn-celsius"
	KeyBtnFahrenheit = "btn-fahrenheit"
	KeyBtnKelvin     = "btn-kelvin"
)
