package usecase

import "context"

type sessionKey struct{}

// WithSession кладёт идентификатор сессии админки в контекст
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionFrom возвращает идентификатор сессии или пустую строку
func SessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
