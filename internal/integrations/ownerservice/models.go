package ownerservice

// ContactRequest запрос на связь с владельцем
type ContactRequest struct {
	OwnerID string `json:"ownerId"`
	ItemID  string `json:"itemId"`
	UserID  int64  `json:"userId"`
}

// ErrorResponse модель ошибки от сервиса владельцев
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
