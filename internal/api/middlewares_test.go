package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/pkg/transport"
)

func TestMiddleware_Auth_NoToken(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	rec := a.do(t, httptest.NewRequest(http.MethodGet, "/api/clients", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_Auth_Cookie(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleUser)

	a.serviceMock.EXPECT().Clients(gomock.Any()).Return([]entity.Client{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: testToken})

	rec := a.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_Auth_PutsTokenInContext(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	user := a.expectUser(entity.RoleUser)

	a.serviceMock.EXPECT().Clients(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]entity.Client, error) {
		token, ok := ctx.Value(entity.CtxKeyToken{}).(string)
		if !ok || token != testToken {
			return nil, fmt.Errorf("unexpected token %q", token)
		}

		got, ok := ctx.Value(entity.CtxKeyUser{}).(entity.User)
		if !ok || got.ID != user.ID {
			return nil, errors.New("user is not in context")
		}

		return []entity.Client{}, nil
	})

	rec := a.do(t, newRequest(t, http.MethodGet, "/api/clients", nil, ""))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_Auth_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user entity.User
		err  error
		code int
	}{
		{"invalid token", entity.User{}, fmt.Errorf("validate: %w", entity.ErrUnauthorized), http.StatusUnauthorized},
		{"auth service down", entity.User{}, errors.New("connection refused"), http.StatusInternalServerError},
		{"blocked user", entity.User{ID: uuid.Must(uuid.NewV4()), IsBlocked: true}, nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewTestAPI(t)
			a.authMock.EXPECT().User(gomock.Any(), testToken).Return(tt.user, tt.err)

			rec := a.do(t, newRequest(t, http.MethodGet, "/api/clients", nil, ""))
			require.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestMiddleware_CanManageClients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role string
		code int
	}{
		{entity.RoleAdmin, http.StatusOK},
		{entity.RoleManager, http.StatusOK},
		{entity.RoleUser, http.StatusForbidden},
		{"", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			t.Parallel()

			a := NewTestAPI(t)
			a.expectUser(tt.role)

			if tt.code == http.StatusOK {
				a.serviceMock.EXPECT().DeleteClient(gomock.Any(), int64(1)).Return(nil, nil)
			}

			rec := a.do(t, newRequest(t, http.MethodDelete, "/api/clients?clientId=1", nil, ""))
			require.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestMiddleware_Log_RequestID(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(transport.RequestIDHeader, "req-1")

	rec := a.do(t, req)
	require.Equal(t, "req-1", rec.Header().Get(transport.RequestIDHeader))

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NotEmpty(t, rec.Header().Get(transport.RequestIDHeader))
}

func TestMiddleware_Cors_Preflight(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/clients", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")

	rec := a.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "https://dashboard.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
