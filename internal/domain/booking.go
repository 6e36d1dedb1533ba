package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMP-FulfilmentService/pkg/money"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// ErrUnknownStatus возвращается при парсинге неизвестного статуса
var ErrUnknownStatus = errors.New("domain: unknown booking status")

// AllStatuses список всех статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// TerminalStatuses список терминальных статусов
// Бронирование в терминальном статусе никогда не меняет его
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// allowedTransitions таблица допустимых переходов статусов.
// pending - единственный начальный статус, создаваемый сервисом.
// Переходы в in_progress и no_show инициируются внешним актором
// (эндпоинт внешнего перехода), но валидируются той же таблицей.
var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCancelled: true,
		StatusNoShow:    true,
	},
	StatusConfirmed: {
		StatusInProgress: true,
		StatusCompleted:  true,
		StatusNoShow:     true,
	},
	StatusInProgress: {
		StatusCompleted: true,
		StatusNoShow:    true,
	},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// CanTransition возвращает true, если переход from -> to допустим
func CanTransition(from, to BookingStatus) bool {
	targets, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}

// ParseStatus конвертирует строку в BookingStatus с валидацией
func ParseStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", ErrUnknownStatus
}

// IsTerminal возвращает true для терминального статуса
func (s BookingStatus) IsTerminal() bool {
	for _, terminal := range TerminalStatuses {
		if s == terminal {
			return true
		}
	}
	return false
}

// Booking represents a composed service booking in the system
// Создается сервисом только в статусе pending; после создания мутирует
// исключительно через переходы статусов, никогда не удаляется.
type Booking struct {
	ID         int64
	ProviderID int64

	// Customer info
	CustomerID    int64
	CustomerName  string
	CustomerPhone string

	// Frozen copy of the selection at confirmation time
	Selections SelectionSet

	StaffID    StaffID
	DiscountID *int64
	Status     BookingStatus

	// Denormalized price breakdown, frozen at confirmation time
	Subtotal       money.Money
	DiscountAmount money.Money
	TaxAmount      money.Money
	Amount         money.Money

	RejectReason *string
	CompletedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active (non-terminal) state
func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// CanBeAccepted returns true if the booking can be accepted by the provider
func (b *Booking) CanBeAccepted() bool {
	return b.Status == StatusPending
}

// CanBeRejected returns true if the booking can be rejected by the provider
func (b *Booking) CanBeRejected() bool {
	return b.Status == StatusPending
}

// CanBeCompleted returns true if the booking can be completed
func (b *Booking) CanBeCompleted() bool {
	return CanTransition(b.Status, StatusCompleted) && b.Status != StatusPending
}
