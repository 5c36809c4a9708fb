package usecases

import (
	"context"
	"suburb-analyzer-service/internal/core/domain"
)

// AnalyzeSuburbUseCase - порт для основного сценария сервиса.
type AnalyzeSuburbUseCase interface {
	Execute(ctx context.Context, suburb string) (*domain.SuburbAnalysis, error)
}
