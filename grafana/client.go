// Package grafana is a typed HTTP client for the grafana admin REST API.
//
// Every method returns a response struct carrying the HTTP status and a
// best-effort decoded payload, and never returns an error: transport
// failures surface as Status 0 and non-2xx responses keep their status with
// the decoded error message. Call sites check statuses instead of handling
// exceptions, which is the contract the provisioning pipeline is built on.
package grafana

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
)

// Shared transports for all clients to prevent leaking connections.
var (
	skipVerifyTransport = &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	defaultTransport = &http.Transport{}
)

// AdminUser is the login the auth proxy header carries on admin-scoped calls.
const AdminUser = "admin"

// AuthProxyHeader identifies the acting user to grafana's auth proxy.
const AuthProxyHeader = "X-WEBAUTH-USER"

// orgHeader scopes datasource and dashboard calls to one grafana org.
const orgHeader = "X-Grafana-Org-Id"

// Client speaks to one grafana instance through its auth proxy.
type Client struct {
	base   *url.URL
	client *http.Client
}

// NewClient returns a client for the grafana instance at base.
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

// HealthResponse is the result of a Health call.
type HealthResponse struct {
	Status  int
	Message string
	Health  Health
}

// Health probes GET /api/health.
func (c *Client) Health(ctx context.Context) HealthResponse {
	var out HealthResponse
	out.Status, out.Message = c.do(ctx, "GET", "/api/health", AdminUser, 0, nil, &out.Health)
	return out
}

// UserResponse is the result of a User lookup.
type UserResponse struct {
	Status  int
	Message string
	User    User
}

// User looks up a global user by login via GET /api/users/lookup.
func (c *Client) User(ctx context.Context, login string) UserResponse {
	var out UserResponse
	path := "/api/users/lookup?loginOrEmail=" + url.QueryEscape(login)
	out.Status, out.Message = c.do(ctx, "GET", path, AdminUser, 0, nil, &out.User)
	return out
}

// CreatedUserResponse is the result of a CreateUser call.
type CreatedUserResponse struct {
	Status  int
	Message string
	User    CreatedUser
}

// CreateUser adds a global user via POST /api/admin/users. Grafana also
// creates a personal org named after the login as a side effect.
func (c *Client) CreateUser(ctx context.Context, u CreateUserRequest) CreatedUserResponse {
	var out CreatedUserResponse
	out.Status, out.Message = c.do(ctx, "POST", "/api/admin/users", AdminUser, 0, u, &out.User)
	return out
}

// OrgResponse is the result of an Org lookup.
type OrgResponse struct {
	Status  int
	Message string
	Org     Org
}

// Org looks up an organization by name via GET /api/orgs/name/:name.
func (c *Client) Org(ctx context.Context, name string) OrgResponse {
	var out OrgResponse
	path := "/api/orgs/name/" + url.PathEscape(name)
	out.Status, out.Message = c.do(ctx, "GET", path, AdminUser, 0, nil, &out.Org)
	return out
}

// AddedOrgResponse is the result of an AddOrg call.
type AddedOrgResponse struct {
	Status  int
	Message string
	Org     AddedOrg
}

// AddOrg creates an organization via POST /api/orgs.
func (c *Client) AddOrg(ctx context.Context, name string) AddedOrgResponse {
	var out AddedOrgResponse
	body := Org{Name: name}
	out.Status, out.Message = c.do(ctx, "POST", "/api/orgs", AdminUser, 0, body, &out.Org)
	return out
}

// MessageResponse is the result of calls that return only an acknowledgement.
type MessageResponse struct {
	Status  int
	Message string
}

// DeleteOrg removes an organization via DELETE /api/orgs/:id.
func (c *Client) DeleteOrg(ctx context.Context, id int64) MessageResponse {
	var out MessageResponse
	path := "/api/orgs/" + strconv.FormatInt(id, 10)
	out.Status, out.Message = c.do(ctx, "DELETE", path, AdminUser, 0, nil, nil)
	return out
}

// OrgUsersResponse is the result of a UsersInOrg call.
type OrgUsersResponse struct {
	Status  int
	Message string
	Users   []OrgUser
}

// UsersInOrg lists the memberships of one org via GET /api/orgs/:id/users.
func (c *Client) UsersInOrg(ctx context.Context, orgID int64) OrgUsersResponse {
	var out OrgUsersResponse
	path := fmt.Sprintf("/api/orgs/%d/users", orgID)
	out.Status, out.Message = c.do(ctx, "GET", path, AdminUser, 0, nil, &out.Users)
	return out
}

// AddUserToOrg adds a membership via POST /api/orgs/:id/users.
func (c *Client) AddUserToOrg(ctx context.Context, orgID int64, u OrgUser) MessageResponse {
	var out MessageResponse
	path := fmt.Sprintf("/api/orgs/%d/users", orgID)
	out.Status, out.Message = c.do(ctx, "POST", path, AdminUser, 0, u, nil)
	return out
}

// DatasourcesResponse is the result of a Datasources call.
type DatasourcesResponse struct {
	Status      int
	Message     string
	Datasources []Datasource
}

// Datasources lists the datasources of the org identified by orgID.
func (c *Client) Datasources(ctx context.Context, orgID int64) DatasourcesResponse {
	var out DatasourcesResponse
	out.Status, out.Message = c.do(ctx, "GET", "/api/datasources", AdminUser, orgID, nil, &out.Datasources)
	return out
}

// DatasourceResponse is the result of a datasource create or update.
type DatasourceResponse struct {
	Status     int
	Message    string
	Datasource Datasource
}

// CreateDatasource adds a datasource to the org identified by orgID.
func (c *Client) CreateDatasource(ctx context.Context, orgID int64, ds Datasource) DatasourceResponse {
	var out DatasourceResponse
	out.Status, out.Message = c.do(ctx, "POST", "/api/datasources", AdminUser, orgID, ds, &out.Datasource)
	return out
}

// UpdateDatasource replaces the datasource identified by id.
func (c *Client) UpdateDatasource(ctx context.Context, orgID, id int64, ds Datasource) DatasourceResponse {
	var out DatasourceResponse
	path := "/api/datasources/" + strconv.FormatInt(id, 10)
	out.Status, out.Message = c.do(ctx, "PUT", path, AdminUser, orgID, ds, &out.Datasource)
	return out
}

// DashboardResponse is the result of a dashboard post.
type DashboardResponse struct {
	Status    int
	Message   string
	Dashboard CreatedDashboard
}

// CreateDashboard posts a dashboard document into the org identified by orgID.
func (c *Client) CreateDashboard(ctx context.Context, orgID int64, post DashboardPost) DashboardResponse {
	var out DashboardResponse
	out.Status, out.Message = c.do(ctx, "POST", "/api/dashboards/db/", AdminUser, orgID, post, &out.Dashboard)
	return out
}

// StarDashboard stars a dashboard on behalf of login. This is the one
// user-scoped call: the auth proxy header carries the user, not admin.
func (c *Client) StarDashboard(ctx context.Context, login string, dashboardID int64) MessageResponse {
	var out MessageResponse
	path := "/api/user/stars/dashboard/" + strconv.FormatInt(dashboardID, 10)
	out.Status, out.Message = c.do(ctx, "POST", path, login, 0, nil, nil)
	return out
}

// do performs one request and normalizes every failure mode into a status
// and message. A transport failure yields status 0. On 2xx the body is
// decoded into out when out is non-nil; decode failures are tolerated since
// callers only depend on the fields they read.
func (c *Client) do(ctx context.Context, method, path, user string, orgID int64, body, out interface{}) (int, string) {
	u := *c.base
	ref, err := url.Parse(path)
	if err != nil {
		return 0, unknownError
	}
	u.Path = u.Path + ref.Path
	u.RawQuery = ref.RawQuery

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, unknownError
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return 0, unknownError
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(AuthProxyHeader, user)
	if orgID > 0 {
		req.Header.Set(orgHeader, strconv.FormatInt(orgID, 10))
	}

	res, err := c.client.Do(req)
	if err != nil {
		return 0, unknownError
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, unknownError
	}

	if res.StatusCode/100 == 2 {
		if out != nil {
			_ = json.Unmarshal(raw, out)
		}
		return res.StatusCode, ""
	}

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Message == "" {
		return res.StatusCode, unknownError
	}
	return res.StatusCode, msg.Message
}

const unknownError = "unknown error"
