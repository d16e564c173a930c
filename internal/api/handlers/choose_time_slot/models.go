package choose_time_slot

// ChooseTimeSlotRequest HTTP request model
type ChooseTimeSlotRequest struct {
	StartTime string `json:"startTime" validate:"required,datetime=15:04"` // "14:00"
}
