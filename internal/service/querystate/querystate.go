package querystate

import (
	"net/url"
	"strings"
)

// Параметры адресной строки, в которых витрина хранит состояние поиска
const (
	ParamQuery    = "q"
	ParamCategory = "category"
)

// State поисковая строка и выбранная категория - единственное сохраняемое состояние витрины
type State struct {
	Query    string
	Category string
}

// IsEmpty true, если ни поиск, ни категория не заданы
func (s State) IsEmpty() bool {
	return s.Query == "" && s.Category == ""
}

// Decode читает состояние из query параметров; остальные параметры игнорируются.
// Поисковая строка возвращается как есть, пробелы значимы.
func Decode(values url.Values) State {
	return State{
		Query:    values.Get(ParamQuery),
		Category: strings.TrimSpace(values.Get(ParamCategory)),
	}
}

// Values возвращает параметры, пустые значения не попадают в адрес
func (s State) Values() url.Values {
	values := url.Values{}
	if s.Query != "" {
		values.Set(ParamQuery, s.Query)
	}
	if s.Category != "" {
		values.Set(ParamCategory, s.Category)
	}
	return values
}

// Encode возвращает каноничную query строку (ключи отсортированы)
func Encode(s State) string {
	return s.Values().Encode()
}
