package models

import "net/url"

// CategoryAll — синтетическая категория «без фильтра».
const CategoryAll = "All"

// Имена query-параметров фильтра на главной и в /api/posts.
const (
	ParamSearch   = "q"
	ParamCategory = "category"
	ParamTag      = "tag"
)

// FilterState — состояние фильтра ленты. Категория и тег взаимно
// сбрасывают друг друга, поиск комбинируется с любым из них.
type FilterState struct {
	SearchText       string `json:"searchText"`
	SelectedCategory string `json:"selectedCategory"`
	SelectedTag      string `json:"selectedTag"`
}

func NewFilterState() FilterState {
	return FilterState{SelectedCategory: CategoryAll}
}

// WithCategory выбирает категорию и сбрасывает тег.
func (f FilterState) WithCategory(category string) FilterState {
	f.SelectedCategory = category
	f.SelectedTag = ""
	return f
}

// WithTag выбирает тег (регистр сохраняется) и сбрасывает категорию в "All".
func (f FilterState) WithTag(tag string) FilterState {
	f.SelectedTag = tag
	f.SelectedCategory = CategoryAll
	return f
}

// WithSearch меняет строку поиска, не трогая фасеты.
func (f FilterState) WithSearch(text string) FilterState {
	f.SearchText = text
	return f
}

func (f FilterState) CategoryActive() bool {
	return f.SelectedCategory != "" && f.SelectedCategory != CategoryAll
}

// Values кодирует состояние в query; значения по умолчанию опускаются.
func (f FilterState) Values() url.Values {
	v := url.Values{}
	if f.SearchText != "" {
		v.Set(ParamSearch, f.SearchText)
	}
	if f.CategoryActive() {
		v.Set(ParamCategory, f.SelectedCategory)
	}
	if f.SelectedTag != "" {
		v.Set(ParamTag, f.SelectedTag)
	}
	return v
}

// URL — ссылка на главную с этим состоянием фильтра.
func (f FilterState) URL() string {
	if q := f.Values().Encode(); q != "" {
		return "/?" + q
	}
	return "/"
}

// ParseFilter восстанавливает состояние из query. Неизвестная категория
// превращается в "All". Если пришли и категория, и тег, побеждает тег —
// так же, как после клика по чипу.
func ParseFilter(q url.Values) FilterState {
	f := NewFilterState().WithSearch(q.Get(ParamSearch))

	if c := q.Get(ParamCategory); IsCategory(c) {
		f = f.WithCategory(c)
	}
	if t := q.Get(ParamTag); t != "" {
		f = f.WithTag(t)
	}
	return f
}
