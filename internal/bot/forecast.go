package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"WeatherHubBot/internal/database/models"
	"WeatherHubBot/internal/locales"
	"WeatherHubBot/internal/weather"
	pmodel "WeatherHubBot/pkg/models"
)

var dayKeys = map[weather.Period]string{
	weather.Today:    locales.KeyDayToday,
	weather.Tomorrow: locales.KeyDayTomorrow,
}

// Weather показывает прогноз на день вместо сообщения с кнопкой.
// Любая ошибка превращается в алерт, сообщение при этом не меняется.
func (h *Handlers) Weather(period weather.Period) HandlerFunc {
	return func(ctx context.Context, upd Update) error {
		if upd.Callback == nil {
			return nil
		}

		user, err := h.lookupUser(ctx, upd.UserID)
		if err != nil {
			return h.reportError(ctx, upd, pmodel.DefaultLanguage, newUserError(ErrGeneric, err))
		}
		if user == nil {
			return h.reportError(ctx, upd, pmodel.DefaultLanguage, newUserError(ErrUserNotFound, nil))
		}

		if err := h.showForecast(ctx, upd.Callback, user, period); err != nil {
			var uerr *UserError
			if errors.As(err, &uerr) {
				return h.reportError(ctx, upd, user.Lang(), uerr)
			}
			return err
		}

		return h.out.Answer(ctx, upd.Callback.ID, "", false)
	}
}

func (h *Handlers) showForecast(ctx context.Context, cb *Callback, user *models.User, period weather.Period) error {
	apiKey, ok := h.credential()
	if !ok {
		return newUserError(ErrMissingCredential, fmt.Errorf("%s is not set", CredentialEnv))
	}

	if cb.Message == nil {
		return newUserError(ErrMissingMessage, nil)
	}

	lang := user.Lang()

	start := time.Now()
	series, err := h.forecast.Fetch(ctx, user.City, apiKey, lang)
	h.metrics.ObserveFetch(time.Since(start))
	if err != nil {
		return newUserError(ErrFetchFailed, err)
	}

	sample, ok := period.Select(series, h.now())
	if !ok {
		return newUserError(ErrNoForecastData, nil)
	}

	text := h.formatForecast(user, period, sample)
	keyboard := CreateToHubKeyboard(h.texts, lang, user)
	return h.out.Edit(ctx, *cb.Message, text, &keyboard)
}

func (h *Handlers) formatForecast(user *models.User, period weather.Period, sample weather.Sample) string {
	lang := user.Lang()
	tempUnit := user.TempUnit()
	description := sample.Description()

	args := locales.Args{
		"city":        html.EscapeString(user.City),
		"day":         h.texts.GetText(lang, dayKeys[period], nil),
		"emoji":       weather.Emoji(description),
		"description": html.EscapeString(capitalizeFirst(description, lang)),
		"temp":        formatRounded(weather.ConvertTemperature(sample.Main.Temp, tempUnit)),
		"feels_like":  formatRounded(weather.ConvertTemperature(sample.Main.FeelsLike, tempUnit)),
		"temp_unit":   tempUnit.Symbol(),
		"humidity":    strconv.Itoa(sample.Main.Humidity),
		"wind_speed":  h.formatWind(lang, user.WindUnit(), sample.Wind.Speed),
	}

	return h.texts.GetText(lang, locales.KeyWeather, args)
}

// formatWind переводит м/с в единицы пользователя; нулевой ветер выводится словом
func (h *Handlers) formatWind(lang pmodel.Language, unit pmodel.SpeedUnit, mps float64) string {
	speed := math.Round(weather.ConvertSpeed(mps, unit))
	if speed == 0 {
		return h.texts.GetText(lang, locales.KeyWeatherWindSpeedUnknown, nil)
	}
	return formatRounded(speed) + " " + h.texts.GetText(lang, speedLabelKeys[unit], nil)
}

func formatRounded(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}

func capitalizeFirst(s string, lang pmodel.Language) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	tag := language.Make(string(lang))
	return cases.Upper(tag).String(s[:size]) + s[size:]
}
