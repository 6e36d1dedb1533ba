package transition_booking

// TransitionRequest модель запроса внешнего перехода статуса.
// Допустимые статусы: in_progress, no_show
type TransitionRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}
