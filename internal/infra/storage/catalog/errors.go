package catalog

import "errors"

var (
	// ErrItemNotFound возвращается, когда элемент каталога не найден
	ErrItemNotFound = errors.New("catalog.repository: item not found")

	// ErrEmptyCatalog возвращается, когда источник не вернул ни одной категории
	ErrEmptyCatalog = errors.New("catalog.repository: catalog has no categories")

	// ErrReadFixture возвращается при ошибке чтения файла каталога
	ErrReadFixture = errors.New("catalog.repository: failed to read fixture")

	// ErrDecode возвращается при ошибке разбора JSON
	ErrDecode = errors.New("catalog.repository: failed to decode payload")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
