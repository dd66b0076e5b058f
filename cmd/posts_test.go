package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogfront/internal/models"
	"blogfront/internal/repository"
	"blogfront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostsFilter(t *testing.T) {
	f, err := postsFilter("go", "Tech", "")
	require.NoError(t, err)
	assert.Equal(t, models.FilterState{SearchText: "go", SelectedCategory: "Tech"}, f)

	// тег сбрасывает категорию
	f, err = postsFilter("", "Tech", "diet")
	require.NoError(t, err)
	assert.Equal(t, models.FilterState{SelectedCategory: models.CategoryAll, SelectedTag: "diet"}, f)

	_, err = postsFilter("", "Sports", "")
	assert.Error(t, err)
}

func TestListPosts(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"blogs":[
			{"_id":"1","title":"Go Basics","category":"Tech","tags":["go","intro"],"author":{"username":"ann"}},
			{"_id":"2","title":"Healthy Living","category":"Health","tags":["diet"]}
		]}`))
	}))
	defer srv.Close()

	blogs := services.NewBlogService(repository.NewBlogRepo(repository.NewClient(srv.URL, 5*time.Second)))

	var out bytes.Buffer
	err := listPosts(context.Background(), &out, blogs, models.NewFilterState().WithTag("DIET"), "tok")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Contains(t, out.String(), "Healthy Living")
	assert.NotContains(t, out.String(), "Go Basics")
	assert.Contains(t, out.String(), "1 of 2 posts")
}
