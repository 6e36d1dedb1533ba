package invoices

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMP-FulfilmentService/internal/integrations/notifyservice"
)

// SendResult результат отправки инвойса
type SendResult struct {
	InvoiceNumber string
	AlreadySent   bool
}

// Service выставление и отправка инвойсов по завершённым бронированиям.
// Реестр отправленных инвойсов append-only: бронирование попадает в него
// после первой успешной доставки и больше никогда не выходит. Повторная
// отправка доставляет инвойс заново и помечается AlreadySent, но не ошибкой
type Service struct {
	bookingRepo  BookingRepository
	dispatchRepo DispatchRepository
	delivery     DeliveryClient
	recorder     SendRecorder
	logger       Logger

	mu   sync.Mutex
	sent map[int64]struct{}
}

// NewService создает новый экземпляр сервиса инвойсов.
// recorder может быть nil, если метрики выключены
func NewService(
	bookingRepo BookingRepository,
	dispatchRepo DispatchRepository,
	delivery DeliveryClient,
	recorder SendRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		dispatchRepo: dispatchRepo,
		delivery:     delivery,
		recorder:     recorder,
		logger:       logger,
		sent:         map[int64]struct{}{},
	}
}

// Load прогревает локальный реестр из хранилища. Вызывается на старте
func (s *Service) Load(ctx context.Context) error {
	dispatched, err := s.dispatchRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: Load - dispatch record: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.sent = dispatched
	s.mu.Unlock()

	s.logger.Info("Load: warmed invoice dispatch record, %d entries", len(dispatched))
	return nil
}

// Send выставляет инвойс по завершённому бронированию и доставляет его
// клиенту. Идемпотентна по реестру: повторный вызов доставляет инвойс
// заново и возвращает AlreadySent=true
func (s *Service) Send(ctx context.Context, bookingID int64) (*SendResult, error) {
	booking, err := s.fetchCompleted(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	alreadySent, err := s.isSent(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	invoiceNumber := uuid.NewString()
	pdfBytes, err := renderInvoice(booking, invoiceNumber)
	if err != nil {
		s.logger.Error("Send: failed to render invoice for booking id=%d: %v", bookingID, err)
		return nil, err
	}

	delivery := &notifyservice.InvoiceDelivery{
		BookingID:     booking.ID,
		ProviderID:    booking.ProviderID,
		CustomerID:    booking.CustomerID,
		InvoiceNumber: invoiceNumber,
		PDFBase64:     base64.StdEncoding.EncodeToString(pdfBytes),
	}

	if err := s.delivery.SendInvoice(ctx, delivery); err != nil {
		s.logger.Error("Send: delivery failed for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: booking id=%d: %v", ErrDeliveryFailed, bookingID, err)
	}

	// SADD идемпотентен, повторное добавление просто подтверждает членство
	if err := s.dispatchRepo.Add(ctx, bookingID); err != nil {
		s.logger.Error("Send: failed to record dispatch for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Send - dispatch record: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.sent[bookingID] = struct{}{}
	s.mu.Unlock()

	if s.recorder != nil {
		s.recorder.ObserveInvoiceSent()
	}

	s.logger.Info("Send: invoice %s sent for booking id=%d (already_sent=%t)",
		invoiceNumber, bookingID, alreadySent)

	return &SendResult{InvoiceNumber: invoiceNumber, AlreadySent: alreadySent}, nil
}

// Generate рендерит PDF инвойса без отправки и записи в реестр
func (s *Service) Generate(ctx context.Context, bookingID int64) ([]byte, string, error) {
	booking, err := s.fetchCompleted(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}

	invoiceNumber := uuid.NewString()
	pdfBytes, err := renderInvoice(booking, invoiceNumber)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, invoiceNumber, nil
}

func (s *Service) fetchCompleted(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("fetchCompleted: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: fetchCompleted - repository error: %v", ErrInternal, err)
	}

	if booking.Status != domain.StatusCompleted {
		s.logger.Warn("fetchCompleted: booking id=%d has status=%s", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: booking id=%d status=%s", ErrNotCompleted, bookingID, booking.Status)
	}

	return booking, nil
}

// isSent проверяет локальный реестр и, при промахе, хранилище
func (s *Service) isSent(ctx context.Context, bookingID int64) (bool, error) {
	s.mu.Lock()
	_, ok := s.sent[bookingID]
	s.mu.Unlock()
	if ok {
		return true, nil
	}

	contains, err := s.dispatchRepo.Contains(ctx, bookingID)
	if err != nil {
		return false, fmt.Errorf("%w: isSent - dispatch record: %v", ErrInternal, err)
	}
	return contains, nil
}
