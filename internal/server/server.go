package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const ShutdownTimeout = 5 * time.Second

// UpdateDecoder читает апдейт из тела вебхука (tgbotapi.BotAPI.HandleUpdate)
type UpdateDecoder func(r *http.Request) (*tgbotapi.Update, error)

type Deps struct {
	Gatherer prometheus.Gatherer
	Logger   zerolog.Logger

	// Вебхук включается, только если заданы оба поля
	WebhookPath string
	Webhook     *Webhook
}

// NewRouter собирает HTTP-маршруты: /healthz, /metrics и вебхук Telegram
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	if d.WebhookPath != "" && d.Webhook != nil {
		r.Post(d.WebhookPath, d.Webhook.ServeHTTP)
	}

	return r
}

// Webhook принимает апдейты Telegram и складывает их в канал.
// 200 отдаётся только после того, как апдейт попал в канал; после Close канал закрыт
// и новые запросы получают 503, чтобы Telegram повторил доставку.
type Webhook struct {
	decode  UpdateDecoder
	log     zerolog.Logger
	mu      sync.RWMutex
	closed  bool
	updates chan tgbotapi.Update
}

func NewWebhook(decode UpdateDecoder, buffer int, log zerolog.Logger) *Webhook {
	if buffer < 0 {
		buffer = 0
	}
	return &Webhook{
		decode:  decode,
		log:     log,
		updates: make(chan tgbotapi.Update, buffer),
	}
}

// Updates закрывается после Close, когда все принятые апдейты уже в канале
func (wh *Webhook) Updates() <-chan tgbotapi.Update {
	return wh.updates
}

func (wh *Webhook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	update, err := wh.decode(r)
	if err != nil {
		wh.log.Warn().Err(err).Msg("Bad webhook payload")
		http.Error(w, "bad update", http.StatusBadRequest)
		return
	}

	wh.mu.RLock()
	defer wh.mu.RUnlock()

	if wh.closed {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}

	select {
	case wh.updates <- *update:
		w.WriteHeader(http.StatusOK)
	case <-r.Context().Done():
		// Telegram повторит доставку
		w.WriteHeader(http.StatusServiceUnavailable)
	}
}

// Close ждёт запросы, которые уже кладут апдейт в канал, и закрывает канал
func (wh *Webhook) Close() {
	wh.mu.Lock()
	defer wh.mu.Unlock()

	if wh.closed {
		return
	}
	wh.closed = true
	close(wh.updates)
}

// Server: обёртка над http.Server с мягкой остановкой
type Server struct {
	srv *http.Server
	log zerolog.Logger
}

func New(addr string, handler http.Handler, log zerolog.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Start запускает сервер в горутине; ошибка запуска логируется
func (s *Server) Start() {
	go func() {
		s.log.Info().Str("addr", s.srv.Addr).Msg("HTTP server started")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server failed")
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
