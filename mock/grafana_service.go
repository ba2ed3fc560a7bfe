package mock

import (
	"context"

	"github.com/magma/magma-sub005/grafana"
)

var _ grafana.Service = (*GrafanaService)(nil)

// GrafanaService is a mock grafana admin API.
type GrafanaService struct {
	HealthF           func(ctx context.Context) grafana.HealthResponse
	UserF             func(ctx context.Context, login string) grafana.UserResponse
	CreateUserF       func(ctx context.Context, u grafana.CreateUserRequest) grafana.CreatedUserResponse
	OrgF              func(ctx context.Context, name string) grafana.OrgResponse
	AddOrgF           func(ctx context.Context, name string) grafana.AddedOrgResponse
	DeleteOrgF        func(ctx context.Context, id int64) grafana.MessageResponse
	UsersInOrgF       func(ctx context.Context, orgID int64) grafana.OrgUsersResponse
	AddUserToOrgF     func(ctx context.Context, orgID int64, u grafana.OrgUser) grafana.MessageResponse
	DatasourcesF      func(ctx context.Context, orgID int64) grafana.DatasourcesResponse
	CreateDatasourceF func(ctx context.Context, orgID int64, ds grafana.Datasource) grafana.DatasourceResponse
	UpdateDatasourceF func(ctx context.Context, orgID, id int64, ds grafana.Datasource) grafana.DatasourceResponse
	CreateDashboardF  func(ctx context.Context, orgID int64, post grafana.DashboardPost) grafana.DashboardResponse
	StarDashboardF    func(ctx context.Context, login string, dashboardID int64) grafana.MessageResponse
}

// Health calls HealthF.
func (s *GrafanaService) Health(ctx context.Context) grafana.HealthResponse {
	return s.HealthF(ctx)
}

// User calls UserF.
func (s *GrafanaService) User(ctx context.Context, login string) grafana.UserResponse {
	return s.UserF(ctx, login)
}

// CreateUser calls CreateUserF.
func (s *GrafanaService) CreateUser(ctx context.Context, u grafana.CreateUserRequest) grafana.CreatedUserResponse {
	return s.CreateUserF(ctx, u)
}

// Org calls OrgF.
func (s *GrafanaService) Org(ctx context.Context, name string) grafana.OrgResponse {
	return s.OrgF(ctx, name)
}

// AddOrg calls AddOrgF.
func (s *GrafanaService) AddOrg(ctx context.Context, name string) grafana.AddedOrgResponse {
	return s.AddOrgF(ctx, name)
}

// DeleteOrg calls DeleteOrgF.
func (s *GrafanaService) DeleteOrg(ctx context.Context, id int64) grafana.MessageResponse {
	return s.DeleteOrgF(ctx, id)
}

// UsersInOrg calls UsersInOrgF.
func (s *GrafanaService) UsersInOrg(ctx context.Context, orgID int64) grafana.OrgUsersResponse {
	return s.UsersInOrgF(ctx, orgID)
}

// AddUserToOrg calls AddUserToOrgF.
func (s *GrafanaService) AddUserToOrg(ctx context.Context, orgID int64, u grafana.OrgUser) grafana.MessageResponse {
	return s.AddUserToOrgF(ctx, orgID, u)
}

// Datasources calls DatasourcesF.
func (s *GrafanaService) Datasources(ctx context.Context, orgID int64) grafana.DatasourcesResponse {
	return s.DatasourcesF(ctx, orgID)
}

// CreateDatasource calls CreateDatasourceF.
func (s *GrafanaService) CreateDatasource(ctx context.Context, orgID int64, ds grafana.Datasource) grafana.DatasourceResponse {
	return s.CreateDatasourceF(ctx, orgID, ds)
}

// UpdateDatasource calls UpdateDatasourceF.
func (s *GrafanaService) UpdateDatasource(ctx context.Context, orgID, id int64, ds grafana.Datasource) grafana.DatasourceResponse {
	return s.UpdateDatasourceF(ctx, orgID, id, ds)
}

// CreateDashboard calls CreateDashboardF.
func (s *GrafanaService) CreateDashboard(ctx context.Context, orgID int64, post grafana.DashboardPost) grafana.DashboardResponse {
	return s.CreateDashboardF(ctx, orgID, post)
}

// StarDashboard calls StarDashboardF.
func (s *GrafanaService) StarDashboard(ctx context.Context, login string, dashboardID int64) grafana.MessageResponse {
	return s.StarDashboardF(ctx, login, dashboardID)
}
