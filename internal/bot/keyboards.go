package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"WeatherHubBot/internal/database/models"
	"WeatherHubBot/internal/locales"
	pmodel "WeatherHubBot/pkg/models"
)

// Подписи языков не переводятся: каждый язык назван на самом себе
var languageLabels = map[pmodel.Language]string{
	pmodel.LanguageUkrainian: "🇺🇦 Українська",
	pmodel.LanguageEnglish:   "🇬🇧 English",
	pmodel.LanguageGerman:    "🇩🇪 Deutsch",
}

var temperatureLabelKeys = map[pmodel.TemperatureUnit]string{
	pmodel.Celsius:    locales.KeyBtnCelsius,
	pmodel.Fahrenheit: locales.KeyBtnFahrenheit,
	pmodel.Kelvin:     locales.KeyBtnKelvin,
}

var speedLabelKeys = map[pmodel.SpeedUnit]string{
	pmodel.KilometersPerHour: locales.KeySpeedKmh,
	pmodel.MetersPerSecond:   locales.KeySpeedMps,
	pmodel.MilesPerHour:      locales.KeySpeedMph,
	pmodel.Knots:             locales.KeySpeedKt,
}

const selectedMark = "✅ "

// keyboardFunc строит клавиатуру экрана; user может быть nil
type keyboardFunc func(t Translator, lang pmodel.Language, user *models.User) tgbotapi.InlineKeyboardMarkup

func button(t Translator, lang pmodel.Language, key, token string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(t.GetText(lang, key, nil), token)
}

func marked(label string, selected bool) string {
	if selected {
		return selectedMark + label
	}
	return label
}

func CreateHubKeyboard(t Translator, lang pmodel.Language, _ *models.User) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button(t, lang, locales.KeyBtnToday, CallbackToday),
			button(t, lang, locales.KeyBtnTomorrow, CallbackTomorrow),
		),
		tgbotapi.NewInlineKeyboardRow(
			button(t, lang, locales.KeyBtnSettings, CallbackSettingsHub),
		),
	)
}

func CreateSettingsKeyboard(t Translator, lang pmodel.Language, _ *models.User) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button(t, lang, locales.KeyBtnLanguage, CallbackSelectLanguage),
			button(t, lang, locales.KeyBtnUnits, CallbackSelectUnits),
		),
		tgbotapi.NewInlineKeyboardRow(
			button(t, lang, locales.KeyBtnBack, CallbackStart),
		),
	)
}

func CreateLanguageKeyboard(t Translator, lang pmodel.Language, user *models.User) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(pmodel.Languages))
	for _, l := range pmodel.Languages {
		selected := user != nil && user.Lang() == l
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(marked(languageLabels[l], selected), languageCallbacks[l]))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			button(t, lang, locales.KeyBtnBack, CallbackSettingsHub),
		),
	)
}

func CreateUnitsKeyboard(t Translator, lang pmodel.Language, user *models.User) tgbotapi.InlineKeyboardMarkup {
	tempRow := make([]tgbotapi.InlineKeyboardButton, 0, len(pmodel.TemperatureUnits))
	for _, u := range pmodel.TemperatureUnits {
		selected := user != nil && user.TempUnit() == u
		label := marked(t.GetText(lang, temperatureLabelKeys[u], nil), selected)
		tempRow = append(tempRow, tgbotapi.NewInlineKeyboardButtonData(label, temperatureCallbacks[u]))
	}

	speedRow := make([]tgbotapi.InlineKeyboardButton, 0, len(pmodel.SpeedUnits))
	for _, u := range pmodel.SpeedUnits {
		selected := user != nil && user.WindUnit() == u
		label := marked(t.GetText(lang, speedLabelKeys[u], nil), selected)
		speedRow = append(speedRow, tgbotapi.NewInlineKeyboardButtonData(label, speedCallbacks[u]))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tempRow,
		speedRow,
		tgbotapi.NewInlineKeyboardRow(
			button(t, lang, locales.KeyBtnBack, CallbackSettingsHub),
		),
	)
}

// CreateToHubKeyboard прикрепляется к прогнозу
func CreateToHubKeyboard(t Translator, lang pmodel.Language, _ *models.User) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button(t, lang, locales.KeyBtnToHub, CallbackStart),
		),
	)
}
