// internal/reqctx/reqctx.go
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyToken
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

// WithToken кладёт bearer-токен сессии в контекст запроса.
// Читает его только repository.Client.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, keyToken, token)
}

// Token возвращает токен сессии или пустую строку.
func Token(ctx context.Context) string {
	v, _ := ctx.Value(keyToken).(string)
	return v
}

// Authenticated — есть ли токен в контексте. Срок действия не проверяется.
func Authenticated(ctx context.Context) bool {
	return Token(ctx) != ""
}
