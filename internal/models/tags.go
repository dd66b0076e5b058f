package models

import "strings"

// TagSuggestions — подсказки в форме редактирования.
var TagSuggestions = []string{"React", "JavaScript", "WebDev", "Design", "Tutorial"}

// TagList — упорядоченный набор тегов формы поста. Одна политика для
// создания и редактирования: дубликаты (с учётом регистра) отклоняются,
// удаление — по значению.
type TagList struct {
	tags []string
}

// NewTagList берёт теги как есть, в том числе пришедшие с сервера.
func NewTagList(tags []string) *TagList {
	l := &TagList{tags: make([]string, 0, len(tags))}
	l.tags = append(l.tags, tags...)
	return l
}

// Add добавляет обрезанный input. Пустой ввод и дубликат игнорируются,
// в этом случае возвращается false.
func (l *TagList) Add(input string) bool {
	tag := strings.TrimSpace(input)
	if tag == "" || l.Contains(tag) {
		return false
	}
	l.tags = append(l.tags, tag)
	return true
}

// Remove удаляет все вхождения тега. Возвращает false, если тега не было.
func (l *TagList) Remove(tag string) bool {
	kept := l.tags[:0]
	removed := false
	for _, t := range l.tags {
		if t == tag {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	l.tags = kept
	return removed
}

func (l *TagList) Contains(tag string) bool {
	for _, t := range l.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Tags — копия текущего списка.
func (l *TagList) Tags() []string {
	out := make([]string, len(l.tags))
	copy(out, l.tags)
	return out
}

func (l *TagList) Len() int { return len(l.tags) }
