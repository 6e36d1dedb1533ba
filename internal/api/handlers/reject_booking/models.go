package reject_booking

// RejectBookingRequest модель запроса на отклонение бронирования.
// Причина опциональна; тело запроса тоже может отсутствовать
type RejectBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}
