package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"WeatherHubBot/internal/storage"
)

const (
	DefaultInterval = 5 * time.Minute
	jobTimeout      = 30 * time.Second
)

// cleaner есть только у хранилища в памяти; Redis удаляет ключи по TTL сам
type cleaner interface {
	CleanupExpiredData() int
}

type sizer interface {
	Size(ctx context.Context) (int, error)
}

type statser interface {
	GetStats() map[string]interface{}
}

// UserCounter: источник числа пользователей для метрик
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Gauges принимает результаты обслуживания
type Gauges interface {
	SetDialogueStates(n int)
	SetUsers(n int64)
}

// Scheduler периодически чистит просроченные диалоги и обновляет метрики
type Scheduler struct {
	scheduler *gocron.Scheduler
	dialogues storage.DialogueStore
	users     UserCounter
	gauges    Gauges
	interval  time.Duration
	log       zerolog.Logger
}

func New(dialogues storage.DialogueStore, users UserCounter, gauges Gauges, interval time.Duration, log zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		dialogues: dialogues,
		users:     users,
		gauges:    gauges,
		interval:  interval,
		log:       log,
	}
}

// Start ставит задачу обслуживания и запускает планировщик в фоне
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		s.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.log.Info().Dur("interval", s.interval).Msg("Housekeeping scheduler started")
	return nil
}

// RunOnce выполняет один проход обслуживания
func (s *Scheduler) RunOnce(ctx context.Context) {
	if c, ok := s.dialogues.(cleaner); ok {
		if removed := c.CleanupExpiredData(); removed > 0 {
			s.log.Info().Int("removed", removed).Msg("Expired dialogue states removed")
		}
	}

	if sz, ok := s.dialogues.(sizer); ok {
		n, err := sz.Size(ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to count dialogue states")
		} else {
			s.gauges.SetDialogueStates(n)
		}
	}

	if st, ok := s.dialogues.(statser); ok {
		s.log.Debug().Fields(st.GetStats()).Msg("Storage stats")
	}

	if s.users != nil {
		count, err := s.users.Count(ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to count users")
			return
		}
		s.gauges.SetUsers(count)
	}
}

func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
