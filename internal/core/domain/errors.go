package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoListings - апстрим ответил успешно, но объявлений в выдаче нет.
	ErrNoListings = errors.New("no listings found")

	// ErrUpstreamUnreachable - не удалось получить ответ от Microburbs API
	// (обрыв соединения, таймаут и т.п.).
	ErrUpstreamUnreachable = errors.New("microburbs api unreachable")
)

// UpstreamHTTPError - апстрим ответил, но с HTTP-ошибкой.
// Код статуса сохраняем, чтобы REST-слой мог его пробросить клиенту.
type UpstreamHTTPError struct {
	StatusCode int
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("microburbs api returned HTTP %d", e.StatusCode)
}
