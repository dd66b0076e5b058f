package models

import "encoding/json"

type Comment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Author  Author `json:"author"`
}

// UnmarshalJSON: бэкенд отдаёт автора комментария в поле "user".
func (c *Comment) UnmarshalJSON(data []byte) error {
	type plain Comment
	var raw struct {
		plain
		MongoID string  `json:"_id"`
		User    *Author `json:"user"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Comment(raw.plain)
	if c.ID == "" {
		c.ID = raw.MongoID
	}
	if raw.User != nil && c.Author == (Author{}) {
		c.Author = *raw.User
	}
	return nil
}

type CommentInput struct {
	Content string `json:"content"`
}
