package services

import (
	"strings"

	"blogfront/internal/models"
)

// FilterPosts возвращает видимые посты в исходном порядке. Пост виден, если
// совпали категория, тег (без учёта регистра, точное совпадение) и поиск
// (подстрока без учёта регистра в заголовке, категории или любом теге).
// Чистая функция: входной срез не меняется.
func FilterPosts(posts []models.BlogPost, f models.FilterState) []models.BlogPost {
	search := strings.ToLower(f.SearchText)

	visible := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		if !categoryMatch(p, f.SelectedCategory) || !tagMatch(p, f.SelectedTag) || !searchMatch(p, search) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

func categoryMatch(p models.BlogPost, category string) bool {
	return category == "" || category == models.CategoryAll || p.Category == category
}

func tagMatch(p models.BlogPost, tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// searchMatch ждёт уже приведённую к нижнему регистру строку.
func searchMatch(p models.BlogPost, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Category), search) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), search) {
			return true
		}
	}
	return false
}
