package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/wvwvw5/neuro-store/internal/adapters/api"
	sessionfile "github.com/wvwvw5/neuro-store/internal/adapters/session/file"
	"github.com/wvwvw5/neuro-store/internal/application"
	"github.com/wvwvw5/neuro-store/internal/ports"
)

type app struct {
	service  *application.Service
	gateway  ports.StoreGateway
	sessions ports.SessionStore
	now      func() time.Time
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault("api.base_url", "http://localhost:8000")
	cfg.SetDefault("api.timeout", 15*time.Second)

	sessions, err := sessionfile.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	baseURL := envOrDefault("NEURO_API_BASE_URL", cfg.GetString("api.base_url"))

	timeout := cfg.GetDuration("api.timeout")
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	gateway := api.NewClient(baseURL, &http.Client{Timeout: timeout})

	return &app{
		service:  application.NewService(gateway, sessions, ports.SystemClock{}),
		gateway:  gateway,
		sessions: sessions,
		now:      time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
