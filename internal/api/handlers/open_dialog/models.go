package open_dialog

// OpenDialogRequest HTTP request model
type OpenDialogRequest struct {
	ItemID string `json:"itemId" validate:"required"`
}
