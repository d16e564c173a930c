package models

// ContactResponse результат запроса на связь с владельцем
type ContactResponse struct {
	ItemID        string `json:"itemId"`
	OwnerID       string `json:"ownerId"`
	OwnerName     string `json:"ownerName"`
	OwnerVerified bool   `json:"ownerVerified"`
	Delivered     bool   `json:"delivered"` // false, если запрос только записан в лог
}
