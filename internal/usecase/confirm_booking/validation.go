package confirm_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DialogID) == "" {
		return fmt.Errorf("%w: dialogID is required", ErrInvalidInput)
	}

	return nil
}
