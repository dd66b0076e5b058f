package models

import (
	"encoding/json"
	"strings"
)

// Categories — закрытый список категорий, зашитый во фронтенд.
var Categories = []string{"Tech", "Lifestyle", "Business", "Education", "Health"}

func IsCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Author   Author   `json:"author"`
}

// UnmarshalJSON принимает id как "_id" (Mongo-бэкенд) или "id".
func (p *BlogPost) UnmarshalJSON(data []byte) error {
	type plain BlogPost
	var raw struct {
		plain
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = BlogPost(raw.plain)
	if p.ID == "" {
		p.ID = raw.MongoID
	}
	return nil
}

// BlogInput — тело POST/PUT /api/blogs.
type BlogInput struct {
	Title    string   `json:"title"    example:"Go Basics"`
	Content  string   `json:"content"  example:"Getting started with Go"`
	Category string   `json:"category" example:"Tech"`
	Tags     []string `json:"tags"     example:"go,intro"`
}

// Input возвращает поля поста, которые редактирует форма.
func (p BlogPost) Input() BlogInput {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)
	return BlogInput{Title: p.Title, Content: p.Content, Category: p.Category, Tags: tags}
}

// Author — автор поста или комментария. API присылает его то строкой,
// то объектом пользователя.
type Author struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (a *Author) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Author{Username: s}
		return nil
	}
	var raw struct {
		ID       string `json:"id"`
		MongoID  string `json:"_id"`
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.ID = raw.ID
	if a.ID == "" {
		a.ID = raw.MongoID
	}
	a.Username = raw.Username
	if a.Username == "" {
		a.Username = raw.Name
	}
	a.Email = raw.Email
	return nil
}

// Display — имя для подписи под постом/комментарием.
func (a Author) Display() string {
	switch {
	case strings.TrimSpace(a.Username) != "":
		return a.Username
	case a.Email != "":
		return a.Email
	default:
		return "anonymous"
	}
}
