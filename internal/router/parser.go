package router

import "strings"

// delimiters обрезаются с обоих концов сырого запроса
const delimiters = "? /"

// Parse разбивает сырой запрос (путь URL или строку запроса) на сегменты.
// Результат всегда содержит хотя бы один элемент: пустой ввод дает [""].
// Пустые сегменты внутри запроса сохраняются как есть.
func Parse(raw string) []string {
	return strings.Split(strings.Trim(raw, delimiters), "/")
}
