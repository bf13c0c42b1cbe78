package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

func TestClientNotFound_Activate(t *testing.T) {
	t.Parallel()

	calls := 0
	c := NewClientNotFound(func() { calls++ })

	c.Activate()
	require.Equal(t, 1, calls)

	c.Activate()
	c.Activate()
	require.Equal(t, 3, calls)
}

func TestClientNotFound_ActivateWithoutCallback(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { (&ClientNotFound{}).Activate() })
}

func TestClientNotFound_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, NewClientNotFound(func() {}).Render(&buf))

	doc := parse(t, buf.String())

	h1 := findAll(doc, byTag("h1"))
	require.Len(t, h1, 1)
	require.Equal(t, "더 스마트하게. 더 모니터와 함께.", text(h1[0]))
	require.Len(t, findAll(h1[0], byTag("br")), 1)

	h2 := findAll(doc, byTag("h2"))
	require.Len(t, h2, 2)
	require.Equal(t, "고객사를 추가해 더욱 쉬운 모니터링 업무를 경험해보세요.", text(h2[0]))
	require.Equal(t, "하나의 대시보드 화면에서 여러 고객사를 통합 관리할 수 있습니다.", text(h2[1]))

	buttons := findAll(doc, byTag("button"))
	require.Len(t, buttons, 1)
	require.Equal(t, "고객사 추가하기", text(buttons[0]))

	post, _ := attr(buttons[0], "hx-post")
	require.Equal(t, AddClientURL, post)
	require.Len(t, findAll(buttons[0], byAttr("data-icon", "add-circle-fill")), 1)

	imgs := findAll(doc, byTag("img"))
	require.Len(t, imgs, 1)

	class, _ := attr(imgs[0], "class")
	require.Contains(t, class, "w-[520px]")

	src, _ := attr(imgs[0], "src")
	require.Equal(t, DashboardImageURL, src)
}

func TestDashboardPage(t *testing.T) {
	t.Parallel()

	t.Run("empty state", func(t *testing.T) {
		t.Parallel()

		opened := 0
		p := NewDashboardPage(entity.User{Email: "admin@monitor.io"}, nil, func() { opened++ })
		require.NotNil(t, p.Empty)

		var buf bytes.Buffer

		require.NoError(t, p.Render(&buf))

		doc := parse(t, buf.String())
		require.Len(t, findAll(doc, byAttr("data-component", "client-not-found")), 1)
		require.Empty(t, findAll(doc, byAttr("data-component", "client-list")))
		require.Len(t, findAll(doc, byAttr("id", "modal")), 1)

		p.Empty.Activate()
		require.Equal(t, 1, opened)
	})

	t.Run("client list", func(t *testing.T) {
		t.Parallel()

		clients := []entity.Client{
			{ClientID: 1, ClientName: "Acme", ServiceURL: "https://acme.io"},
			{ClientID: 2, ClientName: "Globex"},
		}

		p := NewDashboardPage(entity.User{}, clients, func() {})
		require.Nil(t, p.Empty)

		var buf bytes.Buffer

		require.NoError(t, p.Render(&buf))

		doc := parse(t, buf.String())
		require.Empty(t, findAll(doc, byAttr("data-component", "client-not-found")))

		items := findAll(doc, byTag("li"))
		require.Len(t, items, 2)

		id, _ := attr(items[1], "data-client-id")
		require.Equal(t, "2", id)
		require.Contains(t, text(items[0]), "Acme")
	})
}

func TestClientFormModal(t *testing.T) {
	t.Parallel()

	form := entity.ClientForm{ClientName: "Acme", ManagerEmail: "bad", AccountPassword: "secret"}
	m := NewClientFormModal(form, map[string]string{entity.FieldManagerEmail: "invalid email"})

	var buf bytes.Buffer

	require.NoError(t, m.Render(&buf))

	doc := parse(t, buf.String())

	email := findAll(doc, byAttr("name", entity.FieldManagerEmail))
	require.Len(t, email, 1)

	val, _ := attr(email[0], "value")
	require.Equal(t, "bad", val)

	class, _ := attr(email[0], "class")
	require.Contains(t, class, "outline-red-500")

	name := findAll(doc, byAttr("name", entity.FieldClientName))
	require.Len(t, name, 1)

	class, _ = attr(name[0], "class")
	require.NotContains(t, class, "outline-red-500")

	password := findAll(doc, byAttr("name", entity.FieldAccountPassword))
	require.Len(t, password, 1)

	_, hasValue := attr(password[0], "value")
	require.False(t, hasValue, "password is never echoed back")

	require.Len(t, findAll(doc, byAttr("data-icon", IconError)), 1)
	require.Len(t, findAll(doc, byAttr("data-icon", IconVisibilityOff)), 1)
}
