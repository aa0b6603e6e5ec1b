package bot

import (
	"context"

	"github.com/rs/zerolog"

	"WeatherHubBot/internal/locales"
	"WeatherHubBot/internal/storage"
	"WeatherHubBot/internal/weather"
	pmodel "WeatherHubBot/pkg/models"
)

// HandlerFunc обрабатывает один апдейт; ошибка означает сбой отправки ответа
type HandlerFunc func(ctx context.Context, upd Update) error

// Названия маршрутов для логов и метрик
const (
	RouteHub         = "hub"
	RouteReceiveCity = "receive_city"
)

// Router выбирает не более одного обработчика на апдейт
type Router struct {
	handlers  *Handlers
	dialogues storage.DialogueStore
	callbacks map[string]HandlerFunc
	metrics   *Metrics
	log       zerolog.Logger
}

func NewRouter(h *Handlers, dialogues storage.DialogueStore, metrics *Metrics, log zerolog.Logger) *Router {
	r := &Router{
		handlers:  h,
		dialogues: dialogues,
		metrics:   metrics,
		log:       log,
	}

	r.callbacks = map[string]HandlerFunc{
		CallbackStart:          h.Hub,
		CallbackToday:          h.Weather(weather.Today),
		CallbackTomorrow:       h.Weather(weather.Tomorrow),
		CallbackSettingsHub:    h.settingsView(locales.KeySettingsHub, CreateSettingsKeyboard),
		CallbackSelectLanguage: h.settingsView(locales.KeySettingsLanguageHub, CreateLanguageKeyboard),
		CallbackSelectUnits:    h.settingsView(locales.KeySettingsUnitsHub, CreateUnitsKeyboard),
	}
	for _, lang := range pmodel.Languages {
		r.callbacks[languageCallbacks[lang]] = h.SelectLanguage(lang)
	}
	for _, unit := range pmodel.TemperatureUnits {
		r.callbacks[temperatureCallbacks[unit]] = h.SelectTemperatureUnit(unit)
	}
	for _, unit := range pmodel.SpeedUnits {
		r.callbacks[speedCallbacks[unit]] = h.SelectSpeedUnit(unit)
	}

	return r
}

// route возвращает обработчик и название маршрута; nil: апдейт никому не нужен
func (r *Router) route(ctx context.Context, upd Update) (string, HandlerFunc, error) {
	switch upd.Kind {
	case KindCommand:
		if upd.Command == CommandStart {
			return RouteHub, r.handlers.Hub, nil
		}

	case KindText:
		state, err := r.dialogues.Get(ctx, upd.UserID)
		if err != nil {
			return "", nil, err
		}
		if state == pmodel.StateAwaitingCity {
			return RouteReceiveCity, r.handlers.ReceiveCity, nil
		}

	case KindCallback:
		if upd.Callback == nil {
			return "", nil, nil
		}
		if fn, ok := r.callbacks[upd.Callback.Token]; ok {
			return upd.Callback.Token, fn, nil
		}
	}

	return "", nil, nil
}

// Dispatch запускает подходящий обработчик. Неподходящие апдейты молча отбрасываются.
func (r *Router) Dispatch(ctx context.Context, upd Update) error {
	r.metrics.RecordUpdate(upd.Kind)

	name, fn, err := r.route(ctx, upd)
	if err != nil {
		r.metrics.RecordHandlerError("route")
		return err
	}
	if fn == nil {
		r.metrics.RecordDropped()
		r.log.Debug().Int64("user_id", upd.UserID).Str("kind", upd.Kind.String()).Msg("Update dropped")
		return nil
	}

	r.metrics.RecordRouted(name)
	if err := fn(ctx, upd); err != nil {
		r.metrics.RecordHandlerError(name)
		return err
	}
	return nil
}
