package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogfront/internal/apperr"
	"blogfront/internal/models"
	"blogfront/internal/reqctx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 5*time.Second)
}

func TestClient_InjectsBearerFromContext(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"blogs":[]}`)
	})
	repo := NewBlogRepo(c)

	ctx := reqctx.WithToken(context.Background(), "tok-123")
	_, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	_, err = repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "без токена заголовок не ставится")
}

func TestBlogRepo_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/blogs", r.URL.Path)
		_, _ = io.WriteString(w, `{"blogs":[{"_id":"1","title":"Go Basics","category":"Tech","tags":["go"]}]}`)
	})

	posts, err := NewBlogRepo(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "1", posts[0].ID)
	assert.Equal(t, "Go Basics", posts[0].Title)
}

func TestBlogRepo_GetByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/blogs/abc", r.URL.Path)
		_, _ = io.WriteString(w, `{"blog":{"_id":"abc","title":"T","category":"Health","tags":[]}}`)
	})

	post, err := NewBlogRepo(c).GetByID(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", post.ID)
	assert.Equal(t, "Health", post.Category)
}

func TestBlogRepo_CreateAndUpdate(t *testing.T) {
	var got models.BlogInput
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"_id":"new","title":"Go Basics"}`)
		case http.MethodPut:
			assert.Equal(t, "/api/blogs/42", r.URL.Path)
			_, _ = io.WriteString(w, `{"message":"updated"}`)
		}
	})
	repo := NewBlogRepo(c)
	in := models.BlogInput{Title: "Go Basics", Content: "c", Category: "Tech", Tags: []string{"go"}}

	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "new", created.ID)
	assert.Equal(t, in, got)

	updated, err := repo.Update(context.Background(), "42", in)
	require.NoError(t, err)
	assert.Equal(t, "42", updated.ID, "id берётся из запроса, если ответ его не содержит")
}

func TestBlogRepo_DeleteRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"message":"Not authorized to delete this blog"}`)
	})

	err := NewBlogRepo(c).Delete(context.Background(), "1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindRejected, apperr.KindOf(err))
	assert.Equal(t, http.StatusForbidden, apperr.StatusOf(err))
	assert.Equal(t, "Not authorized to delete this blog", apperr.UserMessage(err, "fallback"))
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewBlogRepo(NewClient(url, time.Second)).List(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNetwork, apperr.KindOf(err))
}

func TestClient_CanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"blogs":[]}`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBlogRepo(c).List(ctx)
	require.Error(t, err)
	assert.True(t, apperr.Canceled(err))
}

func TestCommentRepo(t *testing.T) {
	var posted models.CommentInput
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/blogs/b1/comments", r.URL.Path)
		if r.Method == http.MethodPost {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			w.WriteHeader(http.StatusCreated)
			return
		}
		_, _ = io.WriteString(w, `{"comments":[{"_id":"c1","content":"hi","user":{"username":"bob"}}]}`)
	})
	repo := NewCommentRepo(c)

	require.NoError(t, repo.Add(context.Background(), "b1", models.CommentInput{Content: "hello"}))
	assert.Equal(t, "hello", posted.Content)

	comments, err := repo.List(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "bob", comments[0].Author.Display())
}

func TestAuthRepo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/auth/login":
			var req models.LoginRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"message":"Invalid credentials"}`)
				return
			}
			_, _ = io.WriteString(w, `{"token":"jwt-token"}`)
		case "/api/auth/register":
			w.WriteHeader(http.StatusCreated)
		}
	})
	repo := NewAuthRepo(c)

	token, err := repo.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	_, err = repo.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "wrong"})
	assert.Equal(t, "Invalid credentials", apperr.UserMessage(err, ""))

	assert.NoError(t, repo.Register(context.Background(), models.RegisterRequest{Username: "a", Email: "a@b.c", Password: "p"}))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", errorMessage([]byte(`{"error":"boom"}`)))
	assert.Equal(t, "plain text", errorMessage([]byte("plain text\n")))
	assert.Equal(t, "", errorMessage([]byte("<html>502</html>")))
	assert.Equal(t, "", errorMessage(nil))
}
