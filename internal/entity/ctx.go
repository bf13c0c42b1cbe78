package entity

import (
	"context"
	"errors"
)

type (
	CtxKeyIP    struct{}
	CtxKeyUser  struct{}
	CtxKeyToken struct{}
)

var errNotInContext = errors.New("value is not in context")

func UserFromContext(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser{}).(User)
	if !ok {
		return User{}, errNotInContext
	}

	return user, nil
}

func SetUserToContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser{}, user)
}

// SetTokenToContext keeps the caller's access token, so calls to the clients backend run
// on the caller's behalf.
func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken{}, token)
}

func TokenFromContext(ctx context.Context) (string, error) {
	token, ok := ctx.Value(CtxKeyToken{}).(string)
	if !ok || token == "" {
		return "", errNotInContext
	}

	return token, nil
}

func SetIPToContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, CtxKeyIP{}, ip)
}

// IPFromContext returns "" when the request went through no IP middleware.
func IPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(CtxKeyIP{}).(string)
	return ip
}
