package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

const maxFormMemory = 10 << 20

type Service interface {
	Clients(ctx context.Context) ([]entity.Client, error)
	ClientInfo(ctx context.Context, clientID int64) (entity.ClientInfo, error)
	CreateClient(ctx context.Context, form entity.ClientForm) (json.RawMessage, error)
	UpdateClient(ctx context.Context, clientID int64, form entity.ClientForm) (json.RawMessage, error)
	DeleteClient(ctx context.Context, clientID int64) (json.RawMessage, error)
	AuditLog(ctx context.Context, filter entity.AuditFilter) ([]entity.AuditEntry, int, error)
}

// @title Monitor Dashboard API
// @version 1.0
// @description Client management for the monitoring dashboard.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      서비스 상태 확인
// @Description  서비스가 동작 중인지 확인합니다
// @Tags         health
// @Success      200 {string} string "ok"
// @Failure      500 {object} ResponseError "서비스 오류"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("ok\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "서비스 오류")
	}
}

type ClientsResponse struct {
	Result []entity.Client `json:"result"`
}

// GetClients godoc
// @Summary      고객사 목록
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ClientsResponse
// @Failure      401 {object} ResponseError "인증 실패"
// @Failure      502 {object} ResponseError "고객사 서비스 오류"
// @Router       /clients [get]
func (h *Handler) GetClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.Clients(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "고객사 목록을 불러오지 못했습니다")
		return
	}

	if clients == nil {
		clients = []entity.Client{}
	}

	SendJSON(ctx, w, http.StatusOK, ClientsResponse{Result: clients})
}

type ClientInfoResponse struct {
	Result entity.ClientInfo `json:"result"`
}

// GetClientInfo godoc
// @Summary      고객사 상세 정보
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        clientId query int true "고객사 ID"
// @Success      200 {object} ClientInfoResponse
// @Failure      400 {object} ResponseError "잘못된 요청"
// @Failure      404 {object} ResponseError "고객사를 찾을 수 없습니다"
// @Failure      502 {object} ResponseError "고객사 서비스 오류"
// @Router       /clients/info [get]
func (h *Handler) GetClientInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := parseClientID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "잘못된 고객사 ID입니다")
		return
	}

	info, err := h.s.ClientInfo(ctx, clientID)
	if err != nil {
		SendServiceErr(ctx, w, err, "고객사 정보를 불러오지 못했습니다")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ClientInfoResponse{Result: info})
}

type MutationResponse struct {
	Result  json.RawMessage `json:"result,omitempty" swaggertype:"object"`
	Message string          `json:"message"`
}

// CreateClient godoc
// @Summary      고객사 추가
// @Tags         clients
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        clientName      formData string true  "고객사명"
// @Param        serviceUrl      formData string false "서비스 URL"
// @Param        managerName     formData string false "담당자 이름"
// @Param        managerEmail    formData string false "담당자 이메일"
// @Param        managerPhone    formData string false "담당자 연락처"
// @Param        accountId       formData string true  "계정 ID"
// @Param        accountPassword formData string true  "계정 비밀번호"
// @Param        logo            formData file   false "로고"
// @Success      201 {object} MutationResponse
// @Failure      400 {object} ResponseError "잘못된 요청"
// @Failure      403 {object} ResponseError "권한이 없습니다"
// @Failure      422 {object} ResponseError "입력값 오류"
// @Failure      502 {object} ResponseError "고객사 서비스 오류"
// @Router       /clients [post]
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, err := parseClientForm(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "잘못된 요청입니다")
		return
	}

	res, err := h.s.CreateClient(ctx, form)
	if err != nil {
		SendServiceErr(ctx, w, err, "고객사를 추가하지 못했습니다")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, MutationResponse{Result: res, Message: "고객사가 추가되었습니다"})
}

// UpdateClient godoc
// @Summary      고객사 정보 수정
// @Tags         clients
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        clientId        query    int    true  "고객사 ID"
// @Param        clientName      formData string true  "고객사명"
// @Param        serviceUrl      formData string false "서비스 URL"
// @Param        managerName     formData string false "담당자 이름"
// @Param        managerEmail    formData string false "담당자 이메일"
// @Param        managerPhone    formData string false "담당자 연락처"
// @Param        accountId       formData string true  "계정 ID"
// @Param        accountPassword formData string false "계정 비밀번호"
// @Param        logo            formData file   false "로고"
// @Success      200 {object} MutationResponse
// @Failure      400 {object} ResponseError "잘못된 요청"
// @Failure      403 {object} ResponseError "권한이 없습니다"
// @Failure      404 {object} ResponseError "고객사를 찾을 수 없습니다"
// @Failure      422 {object} ResponseError "입력값 오류"
// @Router       /clients/update [put]
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := parseClientID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "잘못된 고객사 ID입니다")
		return
	}

	form, err := parseClientForm(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "잘못된 요청입니다")
		return
	}

	res, err := h.s.UpdateClient(ctx, clientID, form)
	if err != nil {
		SendServiceErr(ctx, w, err, "고객사 정보를 수정하지 못했습니다")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MutationResponse{Result: res, Message: "고객사 정보가 수정되었습니다"})
}

// DeleteClient godoc
// @Summary      고객사 삭제
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        clientId query int true "고객사 ID"
// @Success      200 {object} MutationResponse
// @Failure      400 {object} ResponseError "잘못된 요청"
// @Failure      403 {object} ResponseError "권한이 없습니다"
// @Failure      404 {object} ResponseError "고객사를 찾을 수 없습니다"
// @Router       /clients [delete]
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := parseClientID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "잘못된 고객사 ID입니다")
		return
	}

	res, err := h.s.DeleteClient(ctx, clientID)
	if err != nil {
		SendServiceErr(ctx, w, err, "고객사를 삭제하지 못했습니다")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MutationResponse{Result: res, Message: "고객사가 삭제되었습니다"})
}

type AuditLogResponse struct {
	Result []entity.AuditEntry `json:"result"`
	Total  int                 `json:"total"`
}

// AuditLog godoc
// @Summary      고객사 변경 이력
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        clientId query int    false "고객사 ID"
// @Param        action   query string false "create, update, delete"
// @Param        page     query int    false "페이지" default(1)
// @Param        limit    query int    false "페이지 크기" default(20)
// @Success      200 {object} AuditLogResponse
// @Failure      400 {object} ResponseError "잘못된 요청"
// @Router       /audit [get]
func (h *Handler) AuditLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseAuditFilter(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "잘못된 요청입니다")
		return
	}

	entries, total, err := h.s.AuditLog(ctx, filter)
	if err != nil {
		SendServiceErr(ctx, w, err, "변경 이력을 불러오지 못했습니다")
		return
	}

	SendJSON(ctx, w, http.StatusOK, AuditLogResponse{Result: entries, Total: total})
}

func parseAuditFilter(r *http.Request) (entity.AuditFilter, error) {
	q := r.URL.Query()

	filter := entity.AuditFilter{
		Action: entity.AuditAction(q.Get("action")),
	}

	if q.Get("clientId") != "" {
		id, err := parseClientID(r)
		if err != nil {
			return entity.AuditFilter{}, err
		}

		filter.ClientID = id
	}

	var err error

	filter.Page, err = parseUint(q.Get("page"), 1)
	if err != nil || filter.Page == 0 {
		return entity.AuditFilter{}, fmt.Errorf("%w: invalid page %q", entity.ErrBadRequest, q.Get("page"))
	}

	filter.Limit, err = parseUint(q.Get("limit"), 20)
	if err != nil || filter.Limit == 0 || filter.Limit > 100 {
		return entity.AuditFilter{}, fmt.Errorf("%w: invalid limit %q", entity.ErrBadRequest, q.Get("limit"))
	}

	return filter, nil
}

func parseClientForm(r *http.Request) (entity.ClientForm, error) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return entity.ClientForm{}, fmt.Errorf("parse form: %w", err)
	}

	form := entity.ClientForm{
		ClientName:      strings.TrimSpace(r.FormValue(entity.FieldClientName)),
		ServiceURL:      strings.TrimSpace(r.FormValue(entity.FieldServiceURL)),
		ManagerName:     strings.TrimSpace(r.FormValue(entity.FieldManagerName)),
		ManagerEmail:    strings.TrimSpace(r.FormValue(entity.FieldManagerEmail)),
		ManagerPhone:    strings.TrimSpace(r.FormValue(entity.FieldManagerPhone)),
		AccountID:       strings.TrimSpace(r.FormValue(entity.FieldAccountID)),
		AccountPassword: r.FormValue(entity.FieldAccountPassword),
	}

	file, header, err := r.FormFile(entity.FieldLogo)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return form, nil
		}

		return entity.ClientForm{}, fmt.Errorf("read logo: %w", err)
	}

	defer file.Close()

	// Read one byte past the limit so an oversized logo fails validation instead of being cut.
	data, err := io.ReadAll(io.LimitReader(file, service.LogoMaxSize+1))
	if err != nil {
		return entity.ClientForm{}, fmt.Errorf("read logo: %w", err)
	}

	if header.Size == 0 && len(data) == 0 {
		return form, nil
	}

	form.Logo = &entity.FormFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}

	return form, nil
}
