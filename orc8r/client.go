// Package orc8r is a typed HTTP client for the network orchestrator's
// tenant and network APIs.
package orc8r

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/kit/errors"
)

// Shared transports for all clients to prevent leaking connections.
var (
	skipVerifyTransport = &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	defaultTransport = &http.Transport{}
)

var _ nms.TenantService = (*Client)(nil)
var _ nms.NetworkRegistry = (*Client)(nil)
var _ nms.AlertService = (*Client)(nil)

// Client speaks to one orchestrator instance.
type Client struct {
	base   *url.URL
	client *http.Client
}

// NewClient returns a client for the orchestrator at base.
func NewClient(base *url.URL, insecureSkipVerify bool) *Client {
	hc := &http.Client{Transport: defaultTransport}
	if insecureSkipVerify {
		hc.Transport = skipVerifyTransport
	}
	return &Client{
		base:   base,
		client: hc,
	}
}

// Tenants returns all tenant records.
func (c *Client) Tenants(ctx context.Context) ([]nms.Tenant, error) {
	var tenants []nms.Tenant
	if err := c.do(ctx, "GET", "/tenants", nil, &tenants); err != nil {
		return nil, &errors.Error{Op: nms.OpTenants, Err: err}
	}
	return tenants, nil
}

// Tenant returns a single tenant record by ID.
func (c *Client) Tenant(ctx context.Context, id int64) (*nms.Tenant, error) {
	var t nms.Tenant
	if err := c.do(ctx, "GET", "/tenants/"+strconv.FormatInt(id, 10), nil, &t); err != nil {
		return nil, &errors.Error{Op: nms.OpTenant, Err: err}
	}
	return &t, nil
}

// CreateTenant creates a tenant record.
func (c *Client) CreateTenant(ctx context.Context, t nms.Tenant) error {
	if err := c.do(ctx, "POST", "/tenants", t, nil); err != nil {
		return &errors.Error{Op: nms.OpCreateTenant, Err: err}
	}
	return nil
}

// UpdateTenant replaces the tenant record with the same ID.
func (c *Client) UpdateTenant(ctx context.Context, t nms.Tenant) error {
	if err := c.do(ctx, "PUT", "/tenants/"+strconv.FormatInt(t.ID, 10), t, nil); err != nil {
		return &errors.Error{Op: nms.OpUpdateTenant, Err: err}
	}
	return nil
}

// DeleteTenant removes the tenant record by ID. A missing record is an error
// here; callers that treat absence as success downgrade ENotFound themselves.
func (c *Client) DeleteTenant(ctx context.Context, id int64) error {
	if err := c.do(ctx, "DELETE", "/tenants/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return &errors.Error{Op: nms.OpDeleteTenant, Err: err}
	}
	return nil
}

// PutAlertRule upserts one alerting rule for the network.
func (c *Client) PutAlertRule(ctx context.Context, networkID string, rule nms.AlertRule) error {
	path := "/networks/" + networkID + "/alerts/" + rule.Alert
	if err := c.do(ctx, "PUT", path, rule, nil); err != nil {
		return &errors.Error{Op: "PutAlertRule", Err: err}
	}
	return nil
}

// NetworkType looks up the classification of a network.
func (c *Client) NetworkType(ctx context.Context, networkID string) (nms.NetworkType, error) {
	var t nms.NetworkType
	path := "/networks/" + networkID + "/type"
	if err := c.do(ctx, "GET", path, nil, &t); err != nil {
		return "", &errors.Error{Op: "NetworkType", Err: err}
	}
	return t, nil
}

// do performs one request and maps the response onto the platform error
// codes: 404 becomes ENotFound, other non-2xx statuses become EUnavailable
// with the remote message, and transport failures become EUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	u := *c.base
	u.Path = u.Path + path

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &errors.Error{Code: errors.EInvalid, Err: err}
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return &errors.Error{Code: errors.EInvalid, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return &errors.Error{Code: errors.EUnavailable, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &errors.Error{Code: errors.EUnavailable, Err: err}
	}

	switch {
	case res.StatusCode/100 == 2:
		if out != nil {
			if err := json.Unmarshal(raw, out); err != nil {
				return &errors.Error{Code: errors.EInternal, Err: err}
			}
		}
		return nil
	case res.StatusCode == http.StatusNotFound:
		return &errors.Error{
			Code: errors.ENotFound,
			Msg:  remoteMessage(raw),
		}
	default:
		return &errors.Error{
			Code: errors.EUnavailable,
			Msg:  fmt.Sprintf("orchestrator returned %d: %s", res.StatusCode, remoteMessage(raw)),
		}
	}
}

func remoteMessage(raw []byte) string {
	var m struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &m); err == nil && m.Message != "" {
		return m.Message
	}
	return string(raw)
}
