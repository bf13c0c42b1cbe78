package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

func TestClient_User(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/validate" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req ValidateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		if req.Token != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		_ = json.NewEncoder(w).Encode(ValidateResponse{ID: id, Email: "admin@monitor.io", Role: entity.UserRole{Name: entity.RoleAdmin}})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)

	user, err := c.User(context.Background(), "good")
	require.NoError(t, err)
	require.Equal(t, id, user.ID)
	require.Equal(t, entity.RoleAdmin, user.Role.Name)

	_, err = c.User(context.Background(), "bad")
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}
