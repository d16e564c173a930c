package choose_date

// ChooseDateRequest HTTP request model
type ChooseDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"` // "2026-11-02"
}
