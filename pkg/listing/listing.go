// Package listing содержит чистые функции поиска и группировки записей,
// на которых построены списки и канбан-доски дашборда.
package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// Predicate - условие равенства по полю-перечислению.
type Predicate[T any] func(item T) bool

// Fields возвращает индексируемые текстовые поля записи.
type Fields[T any] func(item T) []string

// Bucket - одна колонка группировки.
type Bucket[T any] struct {
	Status string
	Items  []T
}

// Fold приводит строку к регистронезависимому виду (полное Unicode case folding).
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Contains сообщает, содержит ли text подстроку query без учёта регистра.
func Contains(text, query string) bool {
	return strings.Contains(Fold(text), Fold(query))
}

// Filter возвращает записи, у которых хотя бы одно поле содержит search
// и выполнены все предикаты. Порядок исходного среза сохраняется.
// Результат никогда не nil.
func Filter[T any](items []T, search string, fields Fields[T], preds ...Predicate[T]) []T {
	query := Fold(strings.TrimSpace(search))
	out := make([]T, 0, len(items))

	for _, item := range items {
		if !matchesAll(item, preds) {
			continue
		}
		if query == "" || matchesSearch(fields(item), query) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

func matchesSearch(fields []string, foldedQuery string) bool {
	for _, f := range fields {
		if strings.Contains(Fold(f), foldedQuery) {
			return true
		}
	}
	return false
}

// Equals строит предикат равенства. Пустое значение или "all" отключает фильтр.
func Equals[T any](value string, field func(item T) string) Predicate[T] {
	if value == "" || value == "all" {
		return nil
	}
	return func(item T) bool { return field(item) == value }
}

// Group раскладывает записи по колонкам в порядке order, включая пустые.
// Внутри колонки сохраняется исходный порядок. Записи со статусом вне
// order в результат не попадают.
func Group[T any](items []T, order []string, status func(item T) string) []Bucket[T] {
	buckets := make([]Bucket[T], len(order))
	index := make(map[string]int, len(order))
	for i, s := range order {
		buckets[i] = Bucket[T]{Status: s, Items: make([]T, 0)}
		index[s] = i
	}

	for _, item := range items {
		if i, ok := index[status(item)]; ok {
			buckets[i].Items = append(buckets[i].Items, item)
		}
	}
	return buckets
}

// Flatten склеивает колонки обратно в порядке их следования.
func Flatten[T any](buckets []Bucket[T]) []T {
	var n int
	for _, b := range buckets {
		n += len(b.Items)
	}
	out := make([]T, 0, n)
	for _, b := range buckets {
		out = append(out, b.Items...)
	}
	return out
}
