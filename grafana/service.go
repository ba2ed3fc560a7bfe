package grafana

import "context"

// Service is the surface of the grafana admin API the engine consumes.
// Client implements it; decorators in the provision package wrap it.
type Service interface {
	Health(ctx context.Context) HealthResponse
	User(ctx context.Context, login string) UserResponse
	CreateUser(ctx context.Context, u CreateUserRequest) CreatedUserResponse
	Org(ctx context.Context, name string) OrgResponse
	AddOrg(ctx context.Context, name string) AddedOrgResponse
	DeleteOrg(ctx context.Context, id int64) MessageResponse
	UsersInOrg(ctx context.Context, orgID int64) OrgUsersResponse
	AddUserToOrg(ctx context.Context, orgID int64, u OrgUser) MessageResponse
	Datasources(ctx context.Context, orgID int64) DatasourcesResponse
	CreateDatasource(ctx context.Context, orgID int64, ds Datasource) DatasourceResponse
	UpdateDatasource(ctx context.Context, orgID, id int64, ds Datasource) DatasourceResponse
	CreateDashboard(ctx context.Context, orgID int64, post DashboardPost) DashboardResponse
	StarDashboard(ctx context.Context, login string, dashboardID int64) MessageResponse
}

var _ Service = (*Client)(nil)
