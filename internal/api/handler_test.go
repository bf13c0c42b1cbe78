package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/dashboard/internal/api"
	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/httpclients/apiclient"
	"github.com/samandr77/microservices/dashboard/internal/mocks"
	"github.com/samandr77/microservices/dashboard/internal/service"
)

const testToken = "dev"

type TestAPI struct {
	router      http.Handler
	serviceMock *mocks.MockService
	authMock    *mocks.MockAuthService
}

func NewTestAPI(t *testing.T) *TestAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	serviceMock := mocks.NewMockService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	return &TestAPI{
		router:      api.NewRouter(api.NewHandler(serviceMock), api.NewMiddleware(authMock)),
		serviceMock: serviceMock,
		authMock:    authMock,
	}
}

func (a *TestAPI) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

func (a *TestAPI) expectUser(role string) entity.User {
	user := entity.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: "Test first name",
		LastName:  "Test last name",
		Email:     "user@example.com",
		Role:      entity.UserRole{Name: role},
	}

	a.authMock.EXPECT().User(gomock.Any(), testToken).Return(user, nil)

	return user
}

func newRequest(t *testing.T, method, target string, body *bytes.Buffer, contentType string) *http.Request {
	t.Helper()

	if body == nil {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+testToken)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req
}

func clientFormBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ResponseError {
	t.Helper()

	var resp api.ResponseError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	rec := a.do(t, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok\n", rec.Body.String())
}

func TestHandler_GetClients(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleUser)

	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clients := []entity.Client{
		{ClientID: 1, ClientName: "Acme", CreatedAt: createdAt},
		{ClientID: 2, ClientName: "Globex", CreatedAt: createdAt},
	}

	a.serviceMock.EXPECT().Clients(gomock.Any()).Return(clients, nil)

	rec := a.do(t, newRequest(t, http.MethodGet, "/api/clients", nil, ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ClientsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, clients, resp.Result)
}

func TestHandler_GetClients_Empty(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleUser)

	a.serviceMock.EXPECT().Clients(gomock.Any()).Return(nil, nil)

	rec := a.do(t, newRequest(t, http.MethodGet, "/api/clients", nil, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"result":[]}`, rec.Body.String())
}

func TestHandler_GetClients_BackendError(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleUser)

	a.serviceMock.EXPECT().Clients(gomock.Any()).
		Return(nil, &apiclient.Error{Method: http.MethodGet, Path: "/clients", StatusCode: http.StatusInternalServerError})

	rec := a.do(t, newRequest(t, http.MethodGet, "/api/clients", nil, ""))
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandler_GetClientInfo(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleUser)

	info := entity.ClientInfo{
		ClientID:     42,
		ClientName:   "Acme",
		ManagerEmail: "manager@acme.io",
		AccountID:    "acme",
	}

	a.serviceMock.EXPECT().ClientInfo(gomock.Any(), int64(42)).Return(info, nil)

	rec := a.do(t, newRequest(t, http.MethodGet, "/api/clients/info?clientId=42", nil, ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ClientInfoResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, info, resp.Result)
}

func TestHandler_GetClientInfo_InvalidID(t *testing.T) {
	t.Parallel()

	for _, target := range []string{
		"/api/clients/info",
		"/api/clients/info?clientId=",
		"/api/clients/info?clientId=abc",
		"/api/clients/info?clientId=-1",
		"/api/clients/info?clientId=0",
	} {
		t.Run(target, func(t *testing.T) {
			t.Parallel()

			a := NewTestAPI(t)
			a.expectUser(entity.RoleUser)

			rec := a.do(t, newRequest(t, http.MethodGet, target, nil, ""))
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_GetClientInfo_NotFound(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleUser)

	a.serviceMock.EXPECT().ClientInfo(gomock.Any(), int64(7)).
		Return(entity.ClientInfo{}, &apiclient.Error{Method: http.MethodGet, Path: "/clients/info", StatusCode: http.StatusNotFound})

	rec := a.do(t, newRequest(t, http.MethodGet, "/api/clients/info?clientId=7", nil, ""))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CreateClient(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleManager)

	body, contentType := clientFormBody(t, map[string]string{
		entity.FieldClientName:      " Acme ",
		entity.FieldAccountID:       "acme",
		entity.FieldAccountPassword: "secret-password",
		entity.FieldManagerEmail:    "manager@acme.io",
	})

	a.serviceMock.EXPECT().CreateClient(gomock.Any(), entity.ClientForm{
		ClientName:      "Acme",
		AccountID:       "acme",
		AccountPassword: "secret-password",
		ManagerEmail:    "manager@acme.io",
	}).Return(json.RawMessage(`{"clientId":5}`), nil)

	rec := a.do(t, newRequest(t, http.MethodPost, "/api/clients", body, contentType))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.MutationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.JSONEq(t, `{"clientId":5}`, string(resp.Result))
	require.NotEmpty(t, resp.Message)
}

func TestHandler_CreateClient_InvalidForm(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleAdmin)

	body, contentType := clientFormBody(t, map[string]string{entity.FieldAccountID: "acme"})

	a.serviceMock.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
		Return(nil, service.FormErrors{entity.FieldClientName: "required"})

	rec := a.do(t, newRequest(t, http.MethodPost, "/api/clients", body, contentType))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeError(t, rec)
	require.Equal(t, map[string]string{entity.FieldClientName: "required"}, resp.Fields)
}

func TestHandler_CreateClient_Forbidden(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleUser)

	body, contentType := clientFormBody(t, map[string]string{entity.FieldClientName: "Acme"})

	rec := a.do(t, newRequest(t, http.MethodPost, "/api/clients", body, contentType))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_UpdateClient(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleAdmin)

	body, contentType := clientFormBody(t, map[string]string{
		entity.FieldClientName: "Acme Corp",
		entity.FieldAccountID:  "acme",
	})

	a.serviceMock.EXPECT().UpdateClient(gomock.Any(), int64(3), entity.ClientForm{
		ClientName: "Acme Corp",
		AccountID:  "acme",
	}).Return(nil, nil)

	rec := a.do(t, newRequest(t, http.MethodPut, "/api/clients/update?clientId=3", body, contentType))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_UpdateClient_InvalidID(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleAdmin)

	body, contentType := clientFormBody(t, map[string]string{entity.FieldClientName: "Acme"})

	rec := a.do(t, newRequest(t, http.MethodPut, "/api/clients/update", body, contentType))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_DeleteClient(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleAdmin)

	a.serviceMock.EXPECT().DeleteClient(gomock.Any(), int64(9)).Return(nil, nil)

	rec := a.do(t, newRequest(t, http.MethodDelete, "/api/clients?clientId=9", nil, ""))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_DeleteClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", &apiclient.Error{StatusCode: http.StatusNotFound}, http.StatusNotFound},
		{"forbidden upstream", &apiclient.Error{StatusCode: http.StatusForbidden}, http.StatusForbidden},
		{"backend down", &apiclient.Error{StatusCode: http.StatusServiceUnavailable}, http.StatusBadGateway},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewTestAPI(t)
			a.expectUser(entity.RoleAdmin)

			a.serviceMock.EXPECT().DeleteClient(gomock.Any(), int64(9)).Return(nil, tt.err)

			rec := a.do(t, newRequest(t, http.MethodDelete, "/api/clients?clientId=9", nil, ""))
			require.Equal(t, tt.code, rec.Code)

			resp := decodeError(t, rec)
			require.NotEmpty(t, resp.Message)
		})
	}
}

func TestHandler_AuditLog(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	a.expectUser(entity.RoleUser)

	entries := []entity.AuditEntry{{
		ID:        uuid.Must(uuid.NewV4()),
		ClientID:  4,
		Action:    entity.AuditActionDelete,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}}

	a.serviceMock.EXPECT().AuditLog(gomock.Any(), entity.AuditFilter{
		ClientID: 4,
		Action:   entity.AuditActionDelete,
		Page:     2,
		Limit:    10,
	}).Return(entries, 11, nil)

	rec := a.do(t, newRequest(t, http.MethodGet, "/api/audit?clientId=4&action=delete&page=2&limit=10", nil, ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.AuditLogResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, 11, resp.Total)
	require.Equal(t, entries, resp.Result)
}

func TestHandler_AuditLog_InvalidPaging(t *testing.T) {
	t.Parallel()

	for _, query := range []string{"page=0", "limit=101", "limit=x", "clientId=abc"} {
		t.Run(query, func(t *testing.T) {
			t.Parallel()

			a := NewTestAPI(t)
			a.expectUser(entity.RoleUser)

			rec := a.do(t, newRequest(t, http.MethodGet, "/api/audit?"+query, nil, ""))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))
		})
	}
}
