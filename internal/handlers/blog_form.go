package handlers

import (
	"net/http"

	"blogfront/internal/models"
)

// Значения кнопок формы поста.
const (
	opAddTag = "add_tag"
	opSave   = "save"
)

// blogForm — состояние формы поста между POST-запросами: поля и
// несохранённый ввод тега.
type blogForm struct {
	input    models.BlogInput
	tagInput string
}

func parseBlogForm(r *http.Request) blogForm {
	return blogForm{
		input: models.BlogInput{
			Title:    r.PostFormValue("title"),
			Content:  r.PostFormValue("content"),
			Category: r.PostFormValue("category"),
			Tags:     r.PostForm["tags"],
		},
		tagInput: r.PostFormValue("tag_input"),
	}
}

// apply выполняет нажатую кнопку редактора тегов и возвращает true, если
// нажато сохранение. Enter в любом поле приходит как add_tag.
func (f *blogForm) apply(r *http.Request) (save bool) {
	tags := models.NewTagList(f.input.Tags)

	switch {
	case r.PostForm.Has("remove_tag"):
		tags.Remove(r.PostFormValue("remove_tag"))
	case r.PostForm.Has("suggest"):
		f.tagInput = r.PostFormValue("suggest")
	case r.PostFormValue("op") == opSave:
		save = true
	default:
		if tags.Add(f.tagInput) {
			f.tagInput = ""
		}
	}

	f.input.Tags = tags.Tags()
	return save
}
