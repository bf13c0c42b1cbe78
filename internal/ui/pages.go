package ui

import (
	"io"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

// DashboardPage is the client overview. With no clients it shows Empty instead of the list.
type DashboardPage struct {
	User    entity.User
	Clients []entity.Client
	Empty   *ClientNotFound
}

func NewDashboardPage(user entity.User, clients []entity.Client, handleAddModalOpen func()) *DashboardPage {
	p := &DashboardPage{
		User:    user,
		Clients: clients,
	}

	if len(clients) == 0 {
		p.Empty = NewClientNotFound(handleAddModalOpen)
	}

	return p
}

func (p *DashboardPage) AddURL() string {
	return AddClientURL
}

func (p *DashboardPage) Render(w io.Writer) error {
	return render(w, "layout", p)
}

type FormField struct {
	Label string
	Input *Input
	Error string
}

// ClientFormModal is the add-client dialog. Rejected fields render as invalid inputs.
type ClientFormModal struct {
	Fields []FormField
	Error  string
}

// NewClientFormModal fills the dialog from a submitted form. fieldErrors maps field names to
// the reason they were rejected.
func NewClientFormModal(form entity.ClientForm, fieldErrors map[string]string) *ClientFormModal {
	field := func(label, name, typ, value, placeholder, autocomplete string) FormField {
		return FormField{
			Label: label,
			Input: &Input{
				ID:           name,
				Name:         name,
				Type:         typ,
				Value:        value,
				Placeholder:  placeholder,
				AutoComplete: autocomplete,
				IsInvalid:    hasField(fieldErrors, name),
			},
			Error: fieldErrors[name],
		}
	}

	m := &ClientFormModal{
		Fields: []FormField{
			field("고객사명", entity.FieldClientName, "text", form.ClientName, "고객사명을 입력하세요", "organization"),
			field("서비스 URL", entity.FieldServiceURL, "url", form.ServiceURL, "https://", "url"),
			field("담당자 이름", entity.FieldManagerName, "text", form.ManagerName, "", "name"),
			field("담당자 이메일", entity.FieldManagerEmail, "email", form.ManagerEmail, "", "email"),
			field("담당자 연락처", entity.FieldManagerPhone, "tel", form.ManagerPhone, "010-0000-0000", "tel"),
			field("계정 ID", entity.FieldAccountID, "text", form.AccountID, "", "username"),
			field("계정 비밀번호", entity.FieldAccountPassword, "password", "", "", "new-password"),
			field("로고", entity.FieldLogo, "file", "", "", ""),
		},
	}

	m.Fields[0].Input.Required = true
	m.Fields[5].Input.Required = true
	m.Fields[7].Input.Attrs = map[string]string{"accept": "image/*"}

	return m
}

func (m *ClientFormModal) ActionURL() string {
	return CreateClientURL
}

func (m *ClientFormModal) Render(w io.Writer) error {
	return render(w, "client-form-modal", m)
}

func hasField(fields map[string]string, name string) bool {
	_, ok := fields[name]
	return ok
}
