package bot

import (
	"fmt"

	"WeatherHubBot/internal/locales"
)

// ErrorKind: вид ошибки, которую видит пользователь
type ErrorKind int

const (
	ErrGeneric ErrorKind = iota
	ErrMissingCredential
	ErrUserNotFound
	ErrFetchFailed
	ErrNoForecastData
	ErrInvalidCity
	ErrMissingMessage
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMissingCredential:
		return "missing_credential"
	case ErrUserNotFound:
		return "user_not_found"
	case ErrFetchFailed:
		return "fetch_failed"
	case ErrNoForecastData:
		return "no_forecast_data"
	case ErrInvalidCity:
		return "invalid_city"
	case ErrMissingMessage:
		return "missing_message"
	default:
		return "generic"
	}
}

// LocaleKey возвращает ключ сообщения для пользователя
func (k ErrorKind) LocaleKey() string {
	switch k {
	case ErrMissingCredential:
		return locales.KeyServiceError
	case ErrUserNotFound:
		return locales.KeyUserNotFound
	case ErrFetchFailed:
		return locales.KeyAPIFetchError
	case ErrNoForecastData:
		return locales.KeyNoForecastData
	case ErrInvalidCity:
		return locales.KeyCityInvalid
	case ErrMissingMessage:
		return locales.KeyMissingMessage
	default:
		return locales.KeyError
	}
}

// UserError превращается в локализованный ответ и не выходит за пределы обработчика
type UserError struct {
	Kind ErrorKind
	Err  error
}

func newUserError(kind ErrorKind, err error) *UserError {
	return &UserError{Kind: kind, Err: err}
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *UserError) Unwrap() error {
	return e.Err
}
