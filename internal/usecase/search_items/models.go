package search_items

import "github.com/m04kA/SMC-RentalService/internal/domain"

// Request модель запроса поиска по каталогу.
// nil/пустые поля означают "фильтр не задан"
type Request struct {
	Query       string   // Свободный текст поиска
	Category    string   // ID категории
	Subcategory string   // Подкатегория (точное совпадение)
	MinPrice    *float64 // Нижняя граница цены (включительно)
	MaxPrice    *float64 // Верхняя граница цены (включительно)
	Rating      *float64 // Минимальный средний рейтинг
	Location    string   // Принимается, но не участвует в фильтрации
	Radius      *float64 // Принимается, но не участвует в фильтрации
	SortBy      string   // Ключ сортировки
}

// Response модель ответа поиска
type Response struct {
	Items       []domain.RentalItem  // Отфильтрованные и отсортированные элементы
	Total       int                  // Количество найденных элементов
	NoResults   bool                 // Ничего не найдено - витрина предлагает сбросить фильтры
	PriceBounds domain.PriceRange    // Минимальная и максимальная цена по всему каталогу
	Filters     domain.FilterOptions // Фактически примененные фильтры
	Query       string               // Примененная поисковая строка
	ShareQuery  string               // Каноничная query строка (q, category) для адресной строки
}
