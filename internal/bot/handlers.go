package bot

import (
	"context"
	"errors"
	"html"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"WeatherHubBot/internal/database"
	"WeatherHubBot/internal/database/models"
	"WeatherHubBot/internal/locales"
	"WeatherHubBot/internal/storage"
	"WeatherHubBot/internal/weather"
	pmodel "WeatherHubBot/pkg/models"
)

// CredentialEnv: переменная с ключом API прогноза
const CredentialEnv = "WEATHER_API_KEY"

// PreferenceStore: настройки пользователей
type PreferenceStore interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	UpsertCity(ctx context.Context, userID int64, city string) error
	SetLanguage(ctx context.Context, userID int64, lang pmodel.Language) error
	SetTemperatureUnit(ctx context.Context, userID int64, unit pmodel.TemperatureUnit) error
	SetSpeedUnit(ctx context.Context, userID int64, unit pmodel.SpeedUnit) error
}

// ForecastGateway: источник прогноза
type ForecastGateway interface {
	Fetch(ctx context.Context, city, apiKey string, lang pmodel.Language) (*weather.Series, error)
}

type Translator interface {
	GetText(lang pmodel.Language, key string, args locales.Args) string
}

// Responder доставляет ответы пользователю
type Responder interface {
	Send(ctx context.Context, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error
	Edit(ctx context.Context, ref MessageRef, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error
	Answer(ctx context.Context, callbackID, text string, alert bool) error
}

// CredentialSource читается при каждом запросе прогноза
type CredentialSource func() (string, bool)

// EnvCredential читает ключ из окружения; пустое значение считается отсутствующим
func EnvCredential(name string) CredentialSource {
	return func() (string, bool) {
		v, ok := os.LookupEnv(name)
		return v, ok && v != ""
	}
}

type Deps struct {
	Users      PreferenceStore
	Dialogues  storage.DialogueStore
	Forecast   ForecastGateway
	Credential CredentialSource
	Texts      Translator
	Responder  Responder
	Metrics    *Metrics
	Logger     zerolog.Logger
	Now        func() time.Time
}

// Handlers содержит обработчики всех маршрутов
type Handlers struct {
	users      PreferenceStore
	dialogues  storage.DialogueStore
	forecast   ForecastGateway
	credential CredentialSource
	texts      Translator
	out        Responder
	metrics    *Metrics
	log        zerolog.Logger
	now        func() time.Time
}

func NewHandlers(d Deps) *Handlers {
	if d.Credential == nil {
		d.Credential = EnvCredential(CredentialEnv)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Handlers{
		users:      d.Users,
		dialogues:  d.Dialogues,
		forecast:   d.Forecast,
		credential: d.Credential,
		texts:      d.Texts,
		out:        d.Responder,
		metrics:    d.Metrics,
		log:        d.Logger,
		now:        d.Now,
	}
}

// show правит сообщение, если пришли из колбэка, иначе отправляет новое
func (h *Handlers) show(ctx context.Context, upd Update, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	switch o := upd.Origin().(type) {
	case CallbackOrigin:
		if o.Message != nil {
			if err := h.out.Edit(ctx, *o.Message, text, keyboard); err != nil {
				return err
			}
		}
		return h.out.Answer(ctx, o.CallbackID, "", false)
	case MessageOrigin:
		return h.out.Send(ctx, o.ChatID, text, keyboard)
	}
	return nil
}

// reportError показывает ошибку: алертом для колбэка, сообщением для текста
func (h *Handlers) reportError(ctx context.Context, upd Update, lang pmodel.Language, uerr *UserError) error {
	h.metrics.RecordUserError(uerr.Kind)
	if uerr.Err != nil {
		h.log.Warn().Err(uerr.Err).Int64("user_id", upd.UserID).Str("kind", uerr.Kind.String()).Msg("Handler failed")
	}

	text := h.texts.GetText(lang, uerr.Kind.LocaleKey(), nil)
	switch o := upd.Origin().(type) {
	case CallbackOrigin:
		return h.out.Answer(ctx, o.CallbackID, text, true)
	case MessageOrigin:
		return h.out.Send(ctx, o.ChatID, text, nil)
	}
	return nil
}

// lookupUser возвращает (nil, nil), если пользователя нет
func (h *Handlers) lookupUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := h.users.GetUser(ctx, userID)
	if errors.Is(err, database.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Hub показывает город и меню, а если города нет, просит его ввести
func (h *Handlers) Hub(ctx context.Context, upd Update) error {
	user, err := h.lookupUser(ctx, upd.UserID)
	if err != nil {
		return h.reportError(ctx, upd, pmodel.DefaultLanguage, newUserError(ErrGeneric, err))
	}

	if user == nil {
		if err := h.dialogues.Set(ctx, upd.UserID, pmodel.StateAwaitingCity); err != nil {
			return h.reportError(ctx, upd, pmodel.DefaultLanguage, newUserError(ErrGeneric, err))
		}
		return h.show(ctx, upd, h.texts.GetText(pmodel.DefaultLanguage, locales.KeyStart, nil), nil)
	}

	return h.showHub(ctx, upd, user)
}

func (h *Handlers) showHub(ctx context.Context, upd Update, user *models.User) error {
	lang := user.Lang()
	text := h.texts.GetText(lang, locales.KeyHubMessage, locales.Args{"city": html.EscapeString(user.City)})
	keyboard := CreateHubKeyboard(h.texts, lang, user)
	return h.show(ctx, upd, text, &keyboard)
}

// ReceiveCity сохраняет город, пока диалог ждёт ввод
func (h *Handlers) ReceiveCity(ctx context.Context, upd Update) error {
	city := strings.TrimSpace(upd.Text)
	if city == "" {
		return h.reportError(ctx, upd, pmodel.DefaultLanguage, newUserError(ErrInvalidCity, nil))
	}

	if err := h.users.UpsertCity(ctx, upd.UserID, city); err != nil {
		return h.reportError(ctx, upd, pmodel.DefaultLanguage, newUserError(ErrGeneric, err))
	}
	if err := h.dialogues.Clear(ctx, upd.UserID); err != nil {
		h.log.Warn().Err(err).Int64("user_id", upd.UserID).Msg("Failed to clear dialogue state")
	}

	user, err := h.lookupUser(ctx, upd.UserID)
	if err != nil || user == nil {
		if err == nil {
			err = database.ErrUserNotFound
		}
		return h.reportError(ctx, upd, pmodel.DefaultLanguage, newUserError(ErrGeneric, err))
	}

	h.log.Info().Int64("user_id", upd.UserID).Str("city", city).Msg("City saved")

	if err := h.out.Send(ctx, upd.ChatID, h.texts.GetText(user.Lang(), locales.KeyCitySaved, nil), nil); err != nil {
		return err
	}
	return h.showHub(ctx, upd, user)
}

// settingsView правит сообщение колбэка в экран настроек
func (h *Handlers) settingsView(key string, keyboardFn keyboardFunc) HandlerFunc {
	return func(ctx context.Context, upd Update) error {
		user, err := h.lookupUser(ctx, upd.UserID)
		if err != nil {
			h.log.Warn().Err(err).Int64("user_id", upd.UserID).Msg("Failed to load user for settings")
		}

		lang := pmodel.DefaultLanguage
		if user != nil {
			lang = user.Lang()
		}

		keyboard := keyboardFn(h.texts, lang, user)
		return h.show(ctx, upd, h.texts.GetText(lang, key, nil), &keyboard)
	}
}

// preference описывает одну настройку для общего обработчика выбора
type preference struct {
	name     string
	value    string
	success  string
	noChange string
	current  func(u *models.User) string
	apply    func(ctx context.Context, userID int64) error
	// язык ответа; для смены языка это уже новый язык
	replyLang func(u *models.User) pmodel.Language
}

func (h *Handlers) selectPreference(ctx context.Context, upd Update, p preference) error {
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

	lang := p.replyLang(user)

	if p.current(user) == p.value {
		return h.out.Answer(ctx, upd.Callback.ID, h.texts.GetText(lang, p.noChange, nil), true)
	}

	if err := p.apply(ctx, upd.UserID); err != nil {
		return h.reportError(ctx, upd, lang, newUserError(ErrGeneric, err))
	}

	h.log.Info().Int64("user_id", upd.UserID).Str("preference", p.name).Str("value", p.value).Msg("Preference changed")
	return h.out.Answer(ctx, upd.Callback.ID, h.texts.GetText(lang, p.success, nil), true)
}

func (h *Handlers) SelectLanguage(lang pmodel.Language) HandlerFunc {
	p := preference{
		name:      "language",
		value:     string(lang),
		success:   locales.KeyLanguageSuccess,
		noChange:  locales.KeyLanguageNoChange,
		current:   func(u *models.User) string { return string(u.Lang()) },
		replyLang: func(*models.User) pmodel.Language { return lang },
		apply: func(ctx context.Context, userID int64) error {
			return h.users.SetLanguage(ctx, userID, lang)
		},
	}
	return func(ctx context.Context, upd Update) error {
		return h.selectPreference(ctx, upd, p)
	}
}

func (h *Handlers) SelectTemperatureUnit(unit pmodel.TemperatureUnit) HandlerFunc {
	p := preference{
		name:      "temperature_unit",
		value:     string(unit),
		success:   locales.KeyTemperatureSuccess,
		noChange:  locales.KeyTemperatureNoChange,
		current:   func(u *models.User) string { return string(u.TempUnit()) },
		replyLang: (*models.User).Lang,
		apply: func(ctx context.Context, userID int64) error {
			return h.users.SetTemperatureUnit(ctx, userID, unit)
		},
	}
	return func(ctx context.Context, upd Update) error {
		return h.selectPreference(ctx, upd, p)
	}
}

func (h *Handlers) SelectSpeedUnit(unit pmodel.SpeedUnit) HandlerFunc {
	p := preference{
		name:      "speed_unit",
		value:     string(unit),
		success:   locales.KeySpeedSuccess,
		noChange:  locales.KeySpeedNoChange,
		current:   func(u *models.User) string { return string(u.WindUnit()) },
		replyLang: (*models.User).Lang,
		apply: func(ctx context.Context, userID int64) error {
			return h.users.SetSpeedUnit(ctx, userID, unit)
		},
	}
	return func(ctx context.Context, upd Update) error {
		return h.selectPreference(ctx, upd, p)
	}
}
