package get_availability

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса доступности элемента на дату
type Request struct {
	ItemID string    // ID элемента каталога
	Date   time.Time // Дата (без времени)
}

// Response доступность элемента на дату
type Response struct {
	ItemID      string             // ID элемента каталога
	Date        time.Time          // Запрошенная дата
	Bookable    bool               // Дату можно выбрать в диалоге бронирования
	Past        bool               // Дата раньше сегодняшней
	Granularity domain.Granularity // Как бронируется категория: весь день или слоты
	TimeSlots   []domain.TimeSlot  // Слоты на дату, пусто если дата недоступна
	BasePrice   float64            // Базовая цена элемента
	PriceType   domain.PriceType   // Единица базовой цены
}
