package ui

import (
	"html/template"
	"io"
)

const DashboardImageURL = "/static/images/dashboard.svg"

// ClientNotFound is the dashboard's empty state, shown while there are no clients.
// Its only behavior is the add button, which runs HandleAddModalOpen.
type ClientNotFound struct {
	HandleAddModalOpen func()
}

func NewClientNotFound(handleAddModalOpen func()) *ClientNotFound {
	return &ClientNotFound{HandleAddModalOpen: handleAddModalOpen}
}

// Activate is what one press of the add button does.
func (c *ClientNotFound) Activate() {
	if c.HandleAddModalOpen != nil {
		c.HandleAddModalOpen()
	}
}

func (c *ClientNotFound) ActionURL() string {
	return AddClientURL
}

func (c *ClientNotFound) ImageURL() string {
	return DashboardImageURL
}

func (c *ClientNotFound) Render(w io.Writer) error {
	return render(w, "client-not-found", c)
}

func (c *ClientNotFound) HTML() (template.HTML, error) {
	return renderHTML("client-not-found", c)
}
