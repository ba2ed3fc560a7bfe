package grafana

import "encoding/json"

// Message is the generic body grafana returns for errors and acknowledgements.
type Message struct {
	Message string `json:"message"`
}

// User is a grafana global user.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateUserRequest is the body for POST /api/admin/users.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatedUser is the response to POST /api/admin/users.
type CreatedUser struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Org is a grafana organization. The grafana-assigned ID is unrelated to any
// local organization ID; orgs are correlated by name only.
type Org struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AddedOrg is the response to POST /api/orgs.
type AddedOrg struct {
	OrgID   int64  `json:"orgId"`
	Message string `json:"message"`
}

// OrgUser is a membership record inside one grafana organization.
type OrgUser struct {
	OrgID int64  `json:"orgId,omitempty"`
	ID    int64  `json:"userId,omitempty"`
	Login string `json:"login"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// Membership roles.
const (
	RoleViewer = "Viewer"
	RoleEditor = "Editor"
	RoleAdmin  = "Admin"
)

// SecureJSONData carries the write-only secure fields of a datasource.
type SecureJSONData struct {
	TLSClientCert string `json:"tlsClientCert,omitempty"`
	TLSClientKey  string `json:"tlsClientKey,omitempty"`
}

// JSONData carries the plain datasource settings.
type JSONData struct {
	TLSAuth bool `json:"tlsAuth"`
}

// Datasource is a grafana datasource scoped to one organization.
type Datasource struct {
	ID             int64          `json:"id,omitempty"`
	OrgID          int64          `json:"orgId,omitempty"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Access         string         `json:"access"`
	URL            string         `json:"url"`
	IsDefault      bool           `json:"isDefault"`
	JSONData       JSONData       `json:"jsonData"`
	SecureJSONData SecureJSONData `json:"secureJsonData"`
}

// DashboardPost is the body for POST /api/dashboards/db/.
type DashboardPost struct {
	Dashboard json.RawMessage `json:"dashboard"`
	Overwrite bool            `json:"overwrite"`
	FolderID  int64           `json:"folderId"`
}

// CreatedDashboard is the response to a dashboard post.
type CreatedDashboard struct {
	ID      int64  `json:"id"`
	UID     string `json:"uid"`
	Slug    string `json:"slug"`
	Status  string `json:"status"`
	Version int64  `json:"version"`
}

// Health is the response to GET /api/health.
type Health struct {
	Database string `json:"database"`
	Version  string `json:"version"`
}
