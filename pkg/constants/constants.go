// pkg/constants/constants.go
package constants

//============== ЗНАЧЕНИЯ ФИЛЬТРОВ ==============

// FilterAll отключает фильтр по перечислению ("Все статусы").
const FilterAll = "all"

//============== РЕЖИМЫ ОТОБРАЖЕНИЯ ==============

const (
	ViewKanban = "kanban"
	ViewList   = "list"
)

//============== ФОРМАТЫ ВЫГРУЗКИ ==============

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

//============== CACHE KEYS ==============

// Префиксы ключей кеша представлений.
const (
	// Формат: view:handovers:<view>:<status>:<search>
	CacheKeyHandoverView = "view:handovers:%s:%s:%s"

	// Формат: view:clients:<search>
	CacheKeyClientView = "view:clients:%s"

	// Формат: view:equipment:<status>:<search>
	CacheKeyEquipmentView = "view:equipment:%s:%s"

	// Ревизия снимка задач (эпоха процесса и версия) входит в ключ,
	// поэтому переключение статуса делает старые доски недостижимыми,
	// а реплики с общим Redis не читают доски друг друга.
	// Формат: view:tasks:<epoch>.<version>:<priority>:<status>:<search>
	CacheKeyTaskBoard = "view:tasks:%s:%s:%s:%s"
)
