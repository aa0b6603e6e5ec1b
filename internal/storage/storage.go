package storage

import (
	"context"
	"sync"
	"time"

	pmodel "WeatherHubBot/pkg/models"

	"github.com/hashicorp/golang-lru/v2"
)

// Константы для настройки
const (
	DefaultCacheSize = 1000
	DefaultTTL       = 24 * time.Hour
)

// DialogueStore хранит состояние диалога по id пользователя.
// Отсутствие записи означает StateIdle.
type DialogueStore interface {
	Get(ctx context.Context, userID int64) (pmodel.DialogueState, error)
	Set(ctx context.Context, userID int64, state pmodel.DialogueState) error
	Clear(ctx context.Context, userID int64) error
}

// MemoryStorage держит состояния в памяти процесса: после рестарта все диалоги сбрасываются в Idle
type MemoryStorage struct {
	mu sync.Mutex

	// LRU кэш вместо обычной мапы
	states *lru.Cache[int64, pmodel.DialogueState]

	// Для TTL (время жизни записей)
	updatedAt map[int64]time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewMemoryStorage создает новое хранилище с ограничением по размеру
func NewMemoryStorage(size int, ttl time.Duration) (*MemoryStorage, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &MemoryStorage{
		updatedAt: make(map[int64]time.Time),
		ttl:       ttl,
		now:       time.Now,
	}

	states, err := lru.NewWithEvict[int64, pmodel.DialogueState](size, s.onEvict)
	if err != nil {
		return nil, err
	}
	s.states = states

	return s, nil
}

// onEvict вызывается кэшем под s.mu, поэтому мапу трогаем без блокировки
func (s *MemoryStorage) onEvict(userID int64, _ pmodel.DialogueState) {
	delete(s.updatedAt, userID)
}

func (s *MemoryStorage) Get(_ context.Context, userID int64) (pmodel.DialogueState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states.Get(userID)
	if !ok {
		return pmodel.StateIdle, nil
	}
	if s.expired(userID) {
		s.states.Remove(userID)
		return pmodel.StateIdle, nil
	}
	return state, nil
}

func (s *MemoryStorage) Set(_ context.Context, userID int64, state pmodel.DialogueState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state == pmodel.StateIdle {
		s.states.Remove(userID)
		return nil
	}

	s.states.Add(userID, state)
	s.updatedAt[userID] = s.now()
	return nil
}

func (s *MemoryStorage) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states.Remove(userID)
	return nil
}

// CleanupExpiredData очищает старые записи и возвращает число удалённых
func (s *MemoryStorage) CleanupExpiredData() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID := range s.updatedAt {
		if s.expired(userID) {
			s.states.Remove(userID)
			removed++
		}
	}
	return removed
}

// Len возвращает число пользователей, от которых ждём ввод
func (s *MemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.states.Len()
}

// Size нужен планировщику; для памяти ошибки не бывает
func (s *MemoryStorage) Size(_ context.Context) (int, error) {
	return s.Len(), nil
}

// GetStats возвращает статистику для мониторинга
func (s *MemoryStorage) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]interface{}{
		"dialogue_states_size": s.states.Len(),
		"cache_ttl":            s.ttl.String(),
	}
}

func (s *MemoryStorage) expired(userID int64) bool {
	updatedAt, ok := s.updatedAt[userID]
	return ok && s.now().Sub(updatedAt) > s.ttl
}
