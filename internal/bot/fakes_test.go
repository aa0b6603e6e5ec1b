package bot

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"WeatherHubBot/internal/database"
	"WeatherHubBot/internal/database/models"
	"WeatherHubBot/internal/weather"
	pmodel "WeatherHubBot/pkg/models"
)

type fakeStore struct {
	mu       sync.Mutex
	users    map[int64]*models.User
	writes   int
	getErr   error
	writeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[int64]*models.User)}
}

func (s *fakeStore) put(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *fakeStore) user(id int64) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (s *fakeStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *fakeStore) GetUser(_ context.Context, userID int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	u, ok := s.users[userID]
	if !ok {
		return nil, database.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeStore) UpsertCity(_ context.Context, userID int64, city string) error {
	return s.write(userID, true, func(u *models.User) { u.City = city })
}

func (s *fakeStore) SetLanguage(_ context.Context, userID int64, lang pmodel.Language) error {
	return s.write(userID, false, func(u *models.User) { u.Language = lang })
}

func (s *fakeStore) SetTemperatureUnit(_ context.Context, userID int64, unit pmodel.TemperatureUnit) error {
	return s.write(userID, false, func(u *models.User) { u.TemperatureUnit = unit })
}

func (s *fakeStore) SetSpeedUnit(_ context.Context, userID int64, unit pmodel.SpeedUnit) error {
	return s.write(userID, false, func(u *models.User) { u.SpeedUnit = unit })
}

func (s *fakeStore) write(userID int64, create bool, apply func(u *models.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	u, ok := s.users[userID]
	if !ok {
		if !create {
			return database.ErrUserNotFound
		}
		u = models.NewUser(userID, "")
		u.CreatedAt = time.Now()
		s.users[userID] = u
	}
	apply(u)
	u.UpdatedAt = time.Now()
	s.writes++
	return nil
}

type fetchCall struct {
	city   string
	apiKey string
	lang   pmodel.Language
}

type fakeGateway struct {
	mu     sync.Mutex
	series *weather.Series
	err    error
	calls  []fetchCall
}

func (g *fakeGateway) Fetch(_ context.Context, city, apiKey string, lang pmodel.Language) (*weather.Series, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, fetchCall{city: city, apiKey: apiKey, lang: lang})
	if g.err != nil {
		return nil, g.err
	}
	return g.series, nil
}

type replyCall struct {
	method     string // send, edit, answer
	chatID     int64
	ref        MessageRef
	callbackID string
	text       string
	alert      bool
	keyboard   *tgbotapi.InlineKeyboardMarkup
}

type fakeResponder struct {
	mu      sync.Mutex
	calls   []replyCall
	sendErr error
	editErr error
}

func (r *fakeResponder) Send(_ context.Context, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sendErr != nil {
		return r.sendErr
	}
	r.calls = append(r.calls, replyCall{method: "send", chatID: chatID, text: text, keyboard: keyboard})
	return nil
}

func (r *fakeResponder) Edit(_ context.Context, ref MessageRef, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.editErr != nil {
		return r.editErr
	}
	r.calls = append(r.calls, replyCall{method: "edit", ref: ref, text: text, keyboard: keyboard})
	return nil
}

func (r *fakeResponder) Answer(_ context.Context, callbackID, text string, alert bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, replyCall{method: "answer", callbackID: callbackID, text: text, alert: alert})
	return nil
}

func (r *fakeResponder) recorded() []replyCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]replyCall, len(r.calls))
	copy(out, r.calls)
	return out
}
