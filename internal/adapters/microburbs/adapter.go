package microburbs

import (
	"net/http"
	"time"
)

// MicroburbsFetcherAdapter отвечает за все взаимодействия с Microburbs API.
type MicroburbsFetcherAdapter struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
}

// Config для адаптера: адрес эндпоинта, bearer-токен и таймаут запроса.
type Config struct {
	BaseURL   string
	AuthToken string
	Timeout   time.Duration
}

// NewMicroburbsFetcherAdapter - конструктор
func NewMicroburbsFetcherAdapter(cfg Config) *MicroburbsFetcherAdapter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &MicroburbsFetcherAdapter{
		// Таймаут клиента ограничивает весь запрос целиком,
		// включая чтение тела ответа.
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		authToken:  cfg.AuthToken,
	}
}
