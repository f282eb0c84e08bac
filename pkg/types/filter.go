package types

// Filter - параметры поиска списка.
//
// http://localhost:8080/api/handovers?search=ГорТех&filter[status]=coordination
// http://localhost:8080/api/handovers?search=ГорТех&status=coordination
type Filter struct {
	Search string            `json:"search,omitempty"`
	Filter map[string]string `json:"filter,omitempty"`
}

// Value возвращает значение фильтра по полю или пустую строку.
func (f Filter) Value(field string) string {
	if f.Filter == nil {
		return ""
	}
	return f.Filter[field]
}

// With возвращает копию фильтра с установленным значением поля.
func (f Filter) With(field, value string) Filter {
	out := Filter{Search: f.Search, Filter: make(map[string]string, len(f.Filter)+1)}
	for k, v := range f.Filter {
		out.Filter[k] = v
	}
	if value != "" {
		out.Filter[field] = value
	}
	return out
}
