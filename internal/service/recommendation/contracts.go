package recommendation

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// CatalogRepository интерфейс реестра тарифов
type CatalogRepository interface {
	ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
