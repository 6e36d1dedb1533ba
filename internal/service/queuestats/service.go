package queuestats

import (
	"context"
	"fmt"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// Service сервис статистики очередей поверх агрегатора.
// Холодный провайдер (процесс перезапустился) и явный запрос recompute
// идут через полный пересчёт по хранилищу, остальное отвечает из памяти
type Service struct {
	agg         *Aggregator
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(agg *Aggregator, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		agg:         agg,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetStats возвращает статистику очереди провайдера.
// recompute=true принудительно пересчитывает по всем бронированиям
func (s *Service) GetStats(ctx context.Context, providerID int64, recompute bool) (domain.QueueStats, error) {
	if recompute || !s.agg.HasProvider(providerID) {
		bookings, err := s.bookingRepo.GetByProviderID(ctx, providerID, nil)
		if err != nil {
			s.logger.Error("GetStats: failed to load bookings for provider=%d: %v", providerID, err)
			return domain.QueueStats{}, fmt.Errorf("%w: GetStats - load bookings: %v", ErrInternal, err)
		}
		s.agg.Recompute(providerID, bookings)
		s.logger.Info("GetStats: recomputed stats for provider=%d over %d bookings", providerID, len(bookings))
	}

	return s.agg.Snapshot(providerID), nil
}
