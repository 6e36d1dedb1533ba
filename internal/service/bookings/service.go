package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMP-FulfilmentService/internal/service/bookings/models"
)

// Статусы, доступные через внешний эскейп-хэтч PATCH /status.
// Остальные переходы идут только через Accept/Reject/Complete
var externalStatuses = map[domain.BookingStatus]struct{}{
	domain.StatusInProgress: {},
	domain.StatusNoShow:     {},
}

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo BookingRepository
	stats       StatsApplier
	transitions TransitionRecorder
	logger      Logger

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewService создает новый экземпляр сервиса бронирований.
// transitions может быть nil, если метрики выключены
func NewService(bookingRepo BookingRepository, stats StatsApplier, transitions TransitionRecorder, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		stats:       stats,
		transitions: transitions,
		logger:      logger,
		inFlight:    map[int64]struct{}{},
	}
}

// GetByID получает бронирование по ID.
// Клиент видит только своё бронирование, провайдер - бронирования своей очереди
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	booking, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != userID && booking.ProviderID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetProviderBookings получает бронирования очереди провайдера,
// опционально фильтруя по статусу. Доступно только самому провайдеру
func (s *Service) GetProviderBookings(ctx context.Context, req *models.GetProviderBookingsRequest) (*models.BookingListResponse, error) {
	if req.ProviderID != req.UserID {
		s.logger.Warn("GetProviderBookings: access denied for user=%d to provider=%d", req.UserID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetProviderBookings: invalid status=%s for provider=%d", *req.Status, req.ProviderID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByProviderID(ctx, req.ProviderID, domainStatus)
	if err != nil {
		s.logger.Error("GetProviderBookings: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Accept подтверждает ожидающее бронирование со стороны провайдера
func (s *Service) Accept(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	return s.transition(ctx, id, userID, domain.StatusConfirmed, nil)
}

// Reject отклоняет ожидающее бронирование. Причина опциональна
func (s *Service) Reject(ctx context.Context, id int64, userID int64, reason *string) (*models.BookingResponse, error) {
	normalized, err := normalizeReason(reason)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, id, userID, domain.StatusCancelled, normalized)
}

// Complete завершает подтверждённое или идущее бронирование.
// Ставит отметку времени завершения - от неё считается выручка
func (s *Service) Complete(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	return s.transition(ctx, id, userID, domain.StatusCompleted, nil)
}

// ExternalTransition переводит бронирование в статус, приходящий извне
// (клиент пришёл / не пришёл). Допускает только in_progress и no_show
func (s *Service) ExternalTransition(ctx context.Context, id int64, userID int64, status string, reason *string) (*models.BookingResponse, error) {
	target, err := models.ToDomainBookingStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, ok := externalStatuses[target]; !ok {
		return nil, fmt.Errorf("%w: status %q is not allowed for external transition", ErrInvalidInput, status)
	}

	normalized, err := normalizeReason(reason)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, id, userID, target, normalized)
}

// transition выполняет переход статуса по общей схеме: захват бронирования
// в in-flight набор, проверка таблицы переходов, условная запись в хранилище
// и только затем правка локальной статистики. Если запись не прошла,
// статистика не трогается
func (s *Service) transition(ctx context.Context, id int64, userID int64, to domain.BookingStatus, reason *string) (*models.BookingResponse, error) {
	if !s.acquire(id) {
		s.logger.Warn("transition: booking id=%d is busy", id)
		return nil, ErrBookingBusy
	}
	defer s.release(id)

	booking, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.ProviderID != userID {
		s.logger.Warn("transition: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	from := booking.Status
	if !domain.CanTransition(from, to) {
		s.logger.Warn("transition: booking id=%d cannot go %s -> %s", id, from, to)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	var completedAt *time.Time
	if to == domain.StatusCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}

	if err := s.bookingRepo.UpdateStatusFrom(ctx, id, from, to, reason, completedAt); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrStatusConflict):
			// Статус изменился между чтением и записью
			s.logger.Warn("transition: booking id=%d changed concurrently", id)
			return nil, fmt.Errorf("%w: booking id=%d changed concurrently", ErrInvalidTransition, id)
		default:
			s.logger.Error("transition: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
		}
	}

	booking.Status = to
	booking.CompletedAt = completedAt
	if reason != nil {
		booking.RejectReason = reason
	}

	s.stats.ApplyTransition(booking, from, to)
	if s.transitions != nil {
		s.transitions.ObserveBookingTransition(string(from), string(to))
	}

	s.logger.Info("transition: booking id=%d moved %s -> %s", id, from, to)
	return models.FromDomainBooking(booking), nil
}

func (s *Service) fetch(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("fetch: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("fetch: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: fetch - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

func (s *Service) acquire(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return false
	}
	s.inFlight[id] = struct{}{}
	return true
}

func (s *Service) release(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

func normalizeReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil, nil
	}
	if len([]rune(trimmed)) > domain.MaxRejectReasonLength {
		return nil, fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxRejectReasonLength)
	}
	return &trimmed, nil
}
