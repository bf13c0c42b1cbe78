package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/pkg/transport"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   time.Second * 3,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type ValidateRequest struct {
	Token string `json:"accessToken"`
}

type ValidateResponse struct {
	ID        uuid.UUID       `json:"id"`
	LastName  string          `json:"lastName"`
	FirstName string          `json:"firstName"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	IsBlocked bool            `json:"isBlocked"`
}

// User resolves the owner of an access token.
func (c *Client) User(ctx context.Context, token string) (entity.User, error) {
	j, err := json.Marshal(ValidateRequest{Token: token})
	if err != nil {
		return entity.User{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/validate", bytes.NewReader(j))
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return entity.User{}, fmt.Errorf("%w: status %d", entity.ErrUnauthorized, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return entity.User{}, fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	var data ValidateResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.User{
		ID:        data.ID,
		LastName:  data.LastName,
		FirstName: data.FirstName,
		Email:     data.Email,
		Role:      data.Role,
		IsBlocked: data.IsBlocked,
	}, nil
}
