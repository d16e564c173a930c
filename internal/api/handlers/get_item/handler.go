package get_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	catalogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/catalog"
)

const msgNotFound = "элемент каталога не найден"

type Handler struct {
	items  ItemSource
	logger Logger
}

func NewHandler(items ItemSource, logger Logger) *Handler {
	return &Handler{
		items:  items,
		logger: logger,
	}
}

// Handle GET /api/v1/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	item, err := h.items.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			h.logger.Warn("GET /items/{id} - Item not found: item_id=%s", itemID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /items/{id} - Failed to get item: item_id=%s, error=%v", itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}
