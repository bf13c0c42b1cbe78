package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/httpclients/apiclient"
	"github.com/samandr77/microservices/dashboard/internal/query"
	"github.com/samandr77/microservices/dashboard/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

const (
	QueryClients    = "clients"
	QueryClientInfo = "clientInfo"
)

type Clients interface {
	GetClients(ctx context.Context) (apiclient.Envelope[[]entity.Client], error)
	PostClient(ctx context.Context, form entity.ClientForm) (apiclient.Envelope[json.RawMessage], error)
	GetClientInfo(ctx context.Context, clientID int64) (apiclient.Envelope[entity.ClientInfo], error)
	DeleteClient(ctx context.Context, clientID int64) (apiclient.Envelope[json.RawMessage], error)
	PutClient(ctx context.Context, clientID int64, form entity.ClientForm) (apiclient.Envelope[json.RawMessage], error)
}

type Repository interface {
	SaveAuditEntry(ctx context.Context, entry entity.AuditEntry) error
	AuditEntriesByFilter(ctx context.Context, filter entity.AuditFilter) ([]entity.AuditEntry, int, error)
	DeleteAuditEntriesOlderThan(ctx context.Context, t time.Time) (int64, error)
}

type Producer interface {
	SendClientChanged(ctx context.Context, entry entity.AuditEntry)
}

type Service struct {
	clients  Clients
	repo     Repository
	producer Producer
	queries  *query.Client
}

// New builds the service. producer may be nil when event publishing is off.
func New(clients Clients, repo Repository, producer Producer, queries *query.Client) *Service {
	return &Service{
		clients:  clients,
		repo:     repo,
		producer: producer,
		queries:  queries,
	}
}

func ClientsKey() query.Key {
	return query.Key{Name: QueryClients}
}

func ClientInfoKey(clientID int64) query.Key {
	return query.Key{Name: QueryClientInfo, ID: strconv.FormatInt(clientID, 10)}
}

// callerKey scopes key to the user in ctx. The backend authorizes every read with the
// caller's token, so one user's cached result is never served to another.
func callerKey(ctx context.Context, key query.Key) query.Key {
	user, err := entity.UserFromContext(ctx)
	if err == nil {
		key.Scope = user.ID.String()
	}

	return key
}

// ShouldRetry keeps client errors from being retried by the query cache.
func ShouldRetry(err error) bool {
	return !errors.Is(err, entity.ErrNotFound) &&
		!errors.Is(err, entity.ErrBadRequest) &&
		!errors.Is(err, entity.ErrUnauthorized) &&
		!errors.Is(err, entity.ErrForbidden)
}

func (s *Service) Clients(ctx context.Context) ([]entity.Client, error) {
	env, err := query.Fetch(ctx, s.queries, callerKey(ctx, ClientsKey()), s.clients.GetClients)
	if err != nil {
		return nil, fmt.Errorf("get clients: %w", err)
	}

	return env.Result, nil
}

// ClientInfo reads one client through the query cache. Concurrent reads of the same id
// share one backend request.
func (s *Service) ClientInfo(ctx context.Context, clientID int64) (entity.ClientInfo, error) {
	env, err := query.Fetch(ctx, s.queries, callerKey(ctx, ClientInfoKey(clientID)),
		func(ctx context.Context) (apiclient.Envelope[entity.ClientInfo], error) {
			return s.clients.GetClientInfo(ctx, clientID)
		},
	)
	if err != nil {
		return entity.ClientInfo{}, fmt.Errorf("get client %d info: %w", clientID, err)
	}

	return env.Result, nil
}

func (s *Service) CreateClient(ctx context.Context, form entity.ClientForm) (json.RawMessage, error) {
	if errs := validateNewClientForm(form); errs != nil {
		return nil, errs
	}

	env, err := s.clients.PostClient(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("post client: %w", err)
	}

	s.invalidate(ctx, ClientsKey())
	s.audit(ctx, createdClientID(env.Result), entity.AuditActionCreate)

	return env.Result, nil
}

func (s *Service) UpdateClient(ctx context.Context, clientID int64, form entity.ClientForm) (json.RawMessage, error) {
	if errs := ValidateClientForm(form); errs != nil {
		return nil, errs
	}

	env, err := s.clients.PutClient(ctx, clientID, form)
	if err != nil {
		return nil, fmt.Errorf("put client %d: %w", clientID, err)
	}

	s.invalidate(ctx, ClientsKey(), ClientInfoKey(clientID))
	s.audit(ctx, clientID, entity.AuditActionUpdate)

	return env.Result, nil
}

func (s *Service) DeleteClient(ctx context.Context, clientID int64) (json.RawMessage, error) {
	env, err := s.clients.DeleteClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("delete client %d: %w", clientID, err)
	}

	s.invalidate(ctx, ClientsKey(), ClientInfoKey(clientID))
	s.audit(ctx, clientID, entity.AuditActionDelete)

	return env.Result, nil
}

// InvalidateClient drops cached reads of a client changed outside the dashboard.
func (s *Service) InvalidateClient(ctx context.Context, clientID int64) error {
	return s.queries.Invalidate(ctx, ClientsKey(), ClientInfoKey(clientID))
}

func (s *Service) AuditLog(ctx context.Context, filter entity.AuditFilter) ([]entity.AuditEntry, int, error) {
	if filter.Action != "" && !filter.Action.IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown action %q", entity.ErrBadRequest, filter.Action)
	}

	entries, total, err := s.repo.AuditEntriesByFilter(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("get audit entries: %w", err)
	}

	return entries, total, nil
}

// CleanupAuditLog removes audit entries older than retention.
func (s *Service) CleanupAuditLog(ctx context.Context, retention time.Duration) error {
	deleted, err := s.repo.DeleteAuditEntriesOlderThan(ctx, time.Now().Add(-retention))
	if err != nil {
		return fmt.Errorf("delete audit entries: %w", err)
	}

	slog.InfoContext(ctx, "audit entries removed", "count", deleted)

	return nil
}

func (s *Service) invalidate(ctx context.Context, keys ...query.Key) {
	err := s.queries.Invalidate(ctx, keys...)
	if err != nil {
		slog.ErrorContext(ctx, "invalidate queries", "error", err)
	}
}

// audit records a successful mutation. A failure here does not fail the mutation, which
// already happened on the backend.
func (s *Service) audit(ctx context.Context, clientID int64, action entity.AuditAction) {
	entry := entity.AuditEntry{
		ID:        uuid.Must(uuid.NewV4()),
		ClientID:  clientID,
		Action:    action,
		UserIP:    entity.IPFromContext(ctx),
		RequestID: logger.RequestIDFromCtx(ctx),
		CreatedAt: time.Now().UTC(),
	}

	user, err := entity.UserFromContext(ctx)
	if err == nil {
		entry.UserID = user.ID
		entry.UserEmail = user.Email
	}

	err = s.repo.SaveAuditEntry(ctx, entry)
	if err != nil {
		slog.ErrorContext(ctx, "save audit entry", "error", err, "client_id", clientID, "action", action)
	}

	if s.producer != nil {
		s.producer.SendClientChanged(ctx, entry)
	}
}

func createdClientID(result json.RawMessage) int64 {
	var created struct {
		ClientID int64 `json:"clientId"`
	}

	if len(result) == 0 || json.Unmarshal(result, &created) != nil {
		return 0
	}

	return created.ClientID
}
