package get_catalog

import (
	"context"

	"github.com/m04kA/SMP-FulfilmentService/internal/service/catalog/models"
)

type CatalogService interface {
	GetCatalog(ctx context.Context, providerID int64) (*models.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
