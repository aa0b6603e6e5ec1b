package locales

import pmodel "WeatherHubBot/pkg/models"

var catalogs = map[pmodel.Language]map[string]string{
	pmodel.LanguageUkrainian: catalogUk,
	pmodel.LanguageEnglish:   catalogEn,
	pmodel.LanguageGerman:    catalogDe,
}

var catalogUk = map[string]string{
	KeyStart:               "👋 Привіт! Я покажу прогноз погоди.\n\nНапишіть, будь ласка, назву вашого міста.",
	KeyHubMessage:          "🏙 Ваше місто: <b>{city}</b>\n\nОберіть дію:",
	KeyCitySaved:           "✅ Місто збережено успішно!",
	KeyCityInvalid:         "Будь ласка, введіть валідне місто. Спробуйте знову.",
	KeySettingsHub:         "⚙️ <b>Налаштування</b>\n\nЩо бажаєте змінити?",
	KeySettingsLanguageHub: "🌐 Оберіть мову:",
	KeySettingsUnitsHub:    "📏 Оберіть одиниці виміру температури та швидкості вітру:",

	KeyLanguageSuccess:     "✅ Мову змінено на українську",
	KeyLanguageNoChange:    "Українська вже обрана",
	KeyTemperatureSuccess:  "✅ Одиниці температури змінено",
	KeyTemperatureNoChange: "Ці одиниці температури вже обрані",
	KeySpeedSuccess:        "✅ Одиниці швидкості змінено",
	KeySpeedNoChange:       "Ці одиниці швидкості вже обрані",

	KeyError:          "❌ Сталася помилка. Спробуйте пізніше.",
	KeyUserNotFound:   "❌ Користувача не знайдено. Натисніть /start",
	KeyServiceError:   "❌ Сервіс погоди тимчасово недоступний",
	KeyAPIFetchError:  "❌ Не вдалося отримати прогноз погоди",
	KeyNoForecastData: "❌ Немає даних прогнозу на цей день",
	KeyMissingMessage: "❌ Повідомлення не знайдено",

	KeyWeather: "{emoji} Погода в <b>{city}</b> на {day}\n\n" +
		"{description}\n" +
		"🌡 Температура: <b>{temp}{temp_unit}</b> (відчувається як {feels_like}{temp_unit})\n" +
		"💧 Вологість: {humidity}%\n" +
		"💨 Вітер: {wind_speed}",
	KeyWeatherWindSpeedUnknown: "штиль",
	KeyDayToday:                "сьогодні",
	KeyDayTomorrow:             "завтра",

	KeySpeedKmh: "км/год",
	KeySpeedMps: "м/с",
	KeySpeedMph: "миль/год",
	KeySpeedKt:  "вуз.",

	KeyBtnToday:      "☀️ Сьогодні",
	KeyBtnTomorrow:   "🌙 Завтра",
	KeyBtnSettings:   "⚙️ Налаштування",
	KeyBtnLanguage:   "🌐 Мова",
	KeyBtnUnits:      "📏 Одиниці виміру",
	KeyBtnBack:       "⬅️ Назад",
	KeyBtnToHub:      "🏠 До меню",
	KeyBtnCelsius:    "°C Цельсій",
	KeyBtnFahrenheit: "°F Фаренгейт",
	KeyBtnKelvin:     "K Кельвін",
}

var catalogEn = map[string]string{
	KeyStart:               "👋 Hi! I can show you the weather forecast.\n\nPlease send me the name of your city.",
	KeyHubMessage:          "🏙 Your city: <b>{city}</b>\n\nChoose an action:",
	KeyCitySaved:           "✅ City saved successfully!",
	KeyCityInvalid:         "Please enter a valid city. Try again.",
	KeySettingsHub:         "⚙️ <b>Settings</b>\n\nWhat would you like to change?",
	KeySettingsLanguageHub: "🌐 Choose a language:",
	KeySettingsUnitsHub:    "📏 Choose temperature and wind speed units:",

	KeyLanguageSuccess:     "✅ Language changed to English",
	KeyLanguageNoChange:    "English is already selected",
	KeyTemperatureSuccess:  "✅ Temperature unit changed",
	KeyTemperatureNoChange: "This temperature unit is already selected",
	KeySpeedSuccess:        "✅ Speed unit changed",
	KeySpeedNoChange:       "This speed unit is already selected",

	KeyError:          "❌ Something went wrong. Please try again later.",
	KeyUserNotFound:   "❌ User not found. Press /start",
	KeyServiceError:   "❌ The weather service is temporarily unavailable",
	KeyAPIFetchError:  "❌ Failed to fetch the weather forecast",
	KeyNoForecastData: "❌ No forecast data for this day",
	KeyMissingMessage: "❌ Message not found",

	KeyWeather: "{emoji} Weather in <b>{city}</b> for {day}\n\n" +
		"{description}\n" +
		"🌡 Temperature: <b>{temp}{temp_unit}</b> (feels like {feels_like}{temp_unit})\n" +
		"💧 Humidity: {humidity}%\n" +
		"💨 Wind: {wind_speed}",
	KeyWeatherWindSpeedUnknown: "calm",
	KeyDayToday:                "today",
	KeyDayTomorrow:             "tomorrow",

	KeySpeedKmh: "km/h",
	KeySpeedMps: "m/s",
	KeySpeedMph: "mph",
	KeySpeedKt:  "kn",

	KeyBtnToday:      "☀️ Today",
	KeyBtnTomorrow:   "🌙 Tomorrow",
	KeyBtnSettings:   "⚙️ Settings",
	KeyBtnLanguage:   "🌐 Language",
	KeyBtnUnits:      "📏 Units",
	KeyBtnBack:       "⬅️ Back",
	KeyBtnToHub:      "🏠 To menu",
	KeyBtnCelsius:    "°C Celsius",
	KeyBtnFahrenheit: "°F Fahrenheit",
	KeyBtnKelvin:     "K Kelvin",
}

var catalogDe = map[string]string{
	KeyStart:               "👋 Hallo! Ich zeige dir die Wettervorhersage.\n\nBitte schick mir den Namen deiner Stadt.",
	KeyHubMessage:          "🏙 Deine Stadt: <b>{city}</b>\n\nWähle eine Aktion:",
	KeyCitySaved:           "✅ Stadt erfolgreich gespeichert!",
	KeyCityInvalid:         "Bitte gib eine gültige Stadt ein. Versuch es noch einmal.",
	KeySettingsHub:         "⚙️ <b>Einstellungen</b>\n\nWas möchtest du ändern?",
	KeySettingsLanguageHub: "🌐 Wähle eine Sprache:",
	KeySettingsUnitsHub:    "📏 Wähle die Einheiten für Temperatur und Windgeschwindigkeit:",

	KeyLanguageSuccess:     "✅ Sprache auf Deutsch umgestellt",
	KeyLanguageNoChange:    "Deutsch ist bereits ausgewählt",
	KeyTemperatureSuccess:  "✅ Temperatureinheit geändert",
	KeyTemperatureNoChange: "Diese Temperatureinheit ist bereits ausgewählt",
	KeySpeedSuccess:        "✅ Geschwindigkeitseinheit geändert",
	KeySpeedNoChange:       "Diese Geschwindigkeitseinheit ist bereits ausgewählt",

	KeyError:          "❌ Etwas ist schiefgelaufen. Bitte versuch es später noch einmal.",
	KeyUserNotFound:   "❌ Benutzer nicht gefunden. Drücke /start",
	KeyServiceError:   "❌ Der Wetterdienst ist vorübergehend nicht verfügbar",
	KeyAPIFetchError:  "❌ Die Wettervorhersage konnte nicht abgerufen werden",
	KeyNoForecastData: "❌ Keine Vorhersagedaten für diesen Tag",
	KeyMissingMessage: "❌ Nachricht nicht gefunden",

	KeyWeather: "{emoji} Wetter in <b>{city}</b> für {day}\n\n" +
		"{description}\n" +
		"🌡 Temperatur: <b>{temp}{temp_unit}</b> (gefühlt {feels_like}{temp_unit})\n" +
		"💧 Luftfeuchtigkeit: {humidity}%\n" +
		"💨 Wind: {wind_speed}",
	KeyWeatherWindSpeedUnknown: "windstill",
	KeyDayToday:                "heute",
	KeyDayTomorrow:             "morgen",

	KeySpeedKmh: "km/h",
	KeySpeedMps: "m/s",
	KeySpeedMph: "mph",
	KeySpeedKt:  "kn",

	KeyBtnToday:      "☀️ Heute",
	KeyBtnTomorrow:   "🌙 Morgen",
	KeyBtnSettings:   "⚙️ Einstellungen",
	KeyBtnLanguage:   "🌐 Sprache",
	KeyBtnUnits:      "📏 Einheiten",
	KeyBtnBack:       "⬅️ Zurück",
	KeyBtnToHub:      "🏠 Zum Menü",
	KeyBtnCelsius:    "°C Celsius",
	KeyBtnFahrenheit: "°F Fahrenheit",
	KeyBtnKelvin:     "K Kelvin",
}
