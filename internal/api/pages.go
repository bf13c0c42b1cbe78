package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/service"
	"github.com/samandr77/microservices/dashboard/internal/ui"
)

// Dashboard renders the client list, or the empty state when there are no clients yet.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.Clients(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "고객사 목록을 불러오지 못했습니다")
		return
	}

	user, _ := entity.UserFromContext(ctx)

	page := ui.NewDashboardPage(user, clients, openAddClientModal(ctx, w))

	SendHTML(ctx, w, http.StatusOK, page)
}

// OpenAddClientModal is the action of the empty state's add button.
func (h *Handler) OpenAddClientModal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	empty := ui.NewClientNotFound(openAddClientModal(ctx, w))
	empty.Activate()
}

func openAddClientModal(ctx context.Context, w http.ResponseWriter) func() {
	return func() {
		SendHTML(ctx, w, http.StatusOK, ui.NewClientFormModal(entity.ClientForm{}, nil))
	}
}

// SubmitAddClientModal creates a client from the modal. Rejected input re-renders the modal
// with the offending fields marked invalid.
func (h *Handler) SubmitAddClientModal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, err := parseClientForm(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "잘못된 요청입니다")
		return
	}

	_, err = h.s.CreateClient(ctx, form)
	if err != nil {
		modal := ui.NewClientFormModal(form, nil)

		var formErrs service.FormErrors
		if errors.As(err, &formErrs) {
			SendHTML(ctx, w, http.StatusUnprocessableEntity, ui.NewClientFormModal(form, formErrs))
			return
		}

		code := statusCode(err)
		modal.Error = "고객사를 추가하지 못했습니다. 잠시 후 다시 시도해주세요."

		if code == http.StatusForbidden {
			modal.Error = "고객사를 추가할 권한이 없습니다."
		}

		SendHTML(ctx, w, code, modal)

		return
	}

	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusNoContent)
}

// ToggleInput flips the password visibility of the posted input and renders it again.
func (h *Handler) ToggleInput(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		SendErr(ctx, w, http.StatusBadRequest, err, "잘못된 요청입니다")
		return
	}

	in := ui.InputFromToggle(r.Form)
	in.Toggle()

	SendHTML(ctx, w, http.StatusOK, &in)
}
