package orc8r_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/kit/errors"
	"github.com/magma/magma-sub005/orc8r"
)

type capture struct {
	method string
	path   string
	body   []byte
}

func newTestClient(t *testing.T, status int, payload interface{}) (*orc8r.Client, *capture) {
	t.Helper()
	cap := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.method = r.Method
		cap.path = r.URL.Path
		cap.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if payload != nil {
			_ = json.NewEncoder(w).Encode(payload)
		}
	}))
	t.Cleanup(srv.Close)

	base, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return orc8r.NewClient(base, false), cap
}

func TestClientTenants(t *testing.T) {
	c, cap := newTestClient(t, 200, []nms.Tenant{
		{ID: 1, Name: "acme", Networks: []string{"n1"}},
		{ID: 2, Name: "beta", Networks: nil},
	})

	tenants, err := c.Tenants(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "acme", tenants[0].Name)
	assert.Equal(t, "GET", cap.method)
	assert.Equal(t, "/tenants", cap.path)
}

func TestClientTenant(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c, cap := newTestClient(t, 200, nms.Tenant{ID: 7, Name: "acme", Networks: []string{"n1"}})

		tenant, err := c.Tenant(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), tenant.ID)
		assert.Equal(t, "/tenants/7", cap.path)
	})

	t.Run("missing maps to not found", func(t *testing.T) {
		c, _ := newTestClient(t, 404, map[string]string{"message": "tenant not found"})

		_, err := c.Tenant(context.Background(), 7)
		require.Error(t, err)
		assert.Equal(t, errors.ENotFound, errors.ErrorCode(err))
	})
}

func TestClientCreateTenant(t *testing.T) {
	c, cap := newTestClient(t, 201, nil)

	err := c.CreateTenant(context.Background(), nms.Tenant{ID: 7, Name: "acme", Networks: []string{"n1"}})
	require.NoError(t, err)
	assert.Equal(t, "POST", cap.method)
	assert.Equal(t, "/tenants", cap.path)

	var sent nms.Tenant
	require.NoError(t, json.Unmarshal(cap.body, &sent))
	assert.Equal(t, int64(7), sent.ID)
	assert.Equal(t, []string{"n1"}, sent.Networks)
}

func TestClientUpdateTenant(t *testing.T) {
	c, cap := newTestClient(t, 200, nil)

	err := c.UpdateTenant(context.Background(), nms.Tenant{ID: 7, Name: "acme", Networks: []string{"n1", "n2"}})
	require.NoError(t, err)
	assert.Equal(t, "PUT", cap.method)
	assert.Equal(t, "/tenants/7", cap.path)
}

func TestClientDeleteTenant(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c, cap := newTestClient(t, 204, nil)

		require.NoError(t, c.DeleteTenant(context.Background(), 7))
		assert.Equal(t, "DELETE", cap.method)
		assert.Equal(t, "/tenants/7", cap.path)
	})

	t.Run("missing is reported, not swallowed", func(t *testing.T) {
		c, _ := newTestClient(t, 404, map[string]string{"message": "tenant not found"})

		err := c.DeleteTenant(context.Background(), 7)
		require.Error(t, err)
		assert.Equal(t, errors.ENotFound, errors.ErrorCode(err))
	})
}

func TestClientNetworkType(t *testing.T) {
	c, cap := newTestClient(t, 200, nms.NetworkTypeLTE)

	typ, err := c.NetworkType(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, nms.NetworkTypeLTE, typ)
	assert.Equal(t, "/networks/n1/type", cap.path)
}

func TestClientPutAlertRule(t *testing.T) {
	c, cap := newTestClient(t, 200, nil)

	rule := nms.AlertRule{
		Alert: "High CPU Usage",
		Expr:  `cpu_percent{networkID="n1"} > 75`,
		For:   "5m",
	}
	require.NoError(t, c.PutAlertRule(context.Background(), "n1", rule))
	assert.Equal(t, "PUT", cap.method)
	assert.Equal(t, "/networks/n1/alerts/High CPU Usage", cap.path)

	var sent nms.AlertRule
	require.NoError(t, json.Unmarshal(cap.body, &sent))
	assert.Equal(t, rule.Expr, sent.Expr)
}

func TestClientErrorMapping(t *testing.T) {
	t.Run("5xx maps to unavailable with remote message", func(t *testing.T) {
		c, _ := newTestClient(t, 503, map[string]string{"message": "service melting"})

		_, err := c.Tenants(context.Background())
		require.Error(t, err)
		assert.Equal(t, errors.EUnavailable, errors.ErrorCode(err))
		assert.Contains(t, err.Error(), "service melting")
	})

	t.Run("transport failure maps to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		base, err := url.Parse(srv.URL)
		require.NoError(t, err)
		srv.Close()

		_, terr := orc8r.NewClient(base, false).Tenants(context.Background())
		require.Error(t, terr)
		assert.Equal(t, errors.EUnavailable, errors.ErrorCode(terr))
	})
}
