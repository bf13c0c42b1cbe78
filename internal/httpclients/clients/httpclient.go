// Package clients shapes requests to the /clients resource of the clients backend.
package clients

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/httpclients/apiclient"
)

const (
	pathClients    = "/clients"
	pathClientInfo = "/clients/info"
	pathUpdate     = "/clients/update"
)

type Client struct {
	api *apiclient.Client
}

func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

func (c *Client) GetClients(ctx context.Context) (apiclient.Envelope[[]entity.Client], error) {
	return apiclient.Get[[]entity.Client](ctx, c.api, pathClients, nil)
}

func (c *Client) PostClient(ctx context.Context, form entity.ClientForm) (apiclient.Envelope[json.RawMessage], error) {
	body, err := EncodeForm(form)
	if err != nil {
		return apiclient.Envelope[json.RawMessage]{}, err
	}

	return apiclient.Post[json.RawMessage](ctx, c.api, pathClients, body, nil)
}

func (c *Client) GetClientInfo(ctx context.Context, clientID int64) (apiclient.Envelope[entity.ClientInfo], error) {
	return apiclient.Get[entity.ClientInfo](ctx, c.api, pathClientInfo, clientIDParams(clientID))
}

func (c *Client) DeleteClient(ctx context.Context, clientID int64) (apiclient.Envelope[json.RawMessage], error) {
	return apiclient.Delete[json.RawMessage](ctx, c.api, pathClients, clientIDParams(clientID))
}

func (c *Client) PutClient(
	ctx context.Context,
	clientID int64,
	form entity.ClientForm,
) (apiclient.Envelope[json.RawMessage], error) {
	body, err := EncodeForm(form)
	if err != nil {
		return apiclient.Envelope[json.RawMessage]{}, err
	}

	return apiclient.Put[json.RawMessage](ctx, c.api, pathUpdate, body, clientIDParams(clientID))
}

func clientIDParams(clientID int64) url.Values {
	return url.Values{"clientId": {strconv.FormatInt(clientID, 10)}}
}
