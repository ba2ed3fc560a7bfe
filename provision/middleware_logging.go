package provision

import (
	"context"
	"time"

	"github.com/magma/magma-sub005/grafana"
	"go.uber.org/zap"
)

// GrafanaLogger is a logging middleware for the grafana service.
type GrafanaLogger struct {
	logger  *zap.Logger
	service grafana.Service
}

// NewGrafanaLogger returns a logging middleware for the grafana service.
func NewGrafanaLogger(log *zap.Logger, s grafana.Service) *GrafanaLogger {
	return &GrafanaLogger{
		logger:  log,
		service: s,
	}
}

var _ grafana.Service = (*GrafanaLogger)(nil)

func (l *GrafanaLogger) observe(call string, start time.Time, status int) {
	l.logger.Debug("grafana call",
		zap.String("call", call),
		zap.Int("status", status),
		zap.Duration("took", time.Since(start)))
}

func (l *GrafanaLogger) Health(ctx context.Context) (r grafana.HealthResponse) {
	defer func(start time.Time) { l.observe("health", start, r.Status) }(time.Now())
	return l.service.Health(ctx)
}

func (l *GrafanaLogger) User(ctx context.Context, login string) (r grafana.UserResponse) {
	defer func(start time.Time) { l.observe("user", start, r.Status) }(time.Now())
	return l.service.User(ctx, login)
}

func (l *GrafanaLogger) CreateUser(ctx context.Context, u grafana.CreateUserRequest) (r grafana.CreatedUserResponse) {
	defer func(start time.Time) { l.observe("create_user", start, r.Status) }(time.Now())
	return l.service.CreateUser(ctx, u)
}

func (l *GrafanaLogger) Org(ctx context.Context, name string) (r grafana.OrgResponse) {
	defer func(start time.Time) { l.observe("org", start, r.Status) }(time.Now())
	return l.service.Org(ctx, name)
}

func (l *GrafanaLogger) AddOrg(ctx context.Context, name string) (r grafana.AddedOrgResponse) {
	defer func(start time.Time) { l.observe("add_org", start, r.Status) }(time.Now())
	return l.service.AddOrg(ctx, name)
}

func (l *GrafanaLogger) DeleteOrg(ctx context.Context, id int64) (r grafana.MessageResponse) {
	defer func(start time.Time) { l.observe("delete_org", start, r.Status) }(time.Now())
	return l.service.DeleteOrg(ctx, id)
}

func (l *GrafanaLogger) UsersInOrg(ctx context.Context, orgID int64) (r grafana.OrgUsersResponse) {
	defer func(start time.Time) { l.observe("users_in_org", start, r.Status) }(time.Now())
	return l.service.UsersInOrg(ctx, orgID)
}

func (l *GrafanaLogger) AddUserToOrg(ctx context.Context, orgID int64, u grafana.OrgUser) (r grafana.MessageResponse) {
	defer func(start time.Time) { l.observe("add_user_to_org", start, r.Status) }(time.Now())
	return l.service.AddUserToOrg(ctx, orgID, u)
}

func (l *GrafanaLogger) Datasources(ctx context.Context, orgID int64) (r grafana.DatasourcesResponse) {
	defer func(start time.Time) { l.observe("datasources", start, r.Status) }(time.Now())
	return l.service.Datasources(ctx, orgID)
}

func (l *GrafanaLogger) CreateDatasource(ctx context.Context, orgID int64, ds grafana.Datasource) (r grafana.DatasourceResponse) {
	defer func(start time.Time) { l.observe("create_datasource", start, r.Status) }(time.Now())
	return l.service.CreateDatasource(ctx, orgID, ds)
}

func (l *GrafanaLogger) UpdateDatasource(ctx context.Context, orgID, id int64, ds grafana.Datasource) (r grafana.DatasourceResponse) {
	defer func(start time.Time) { l.observe("update_datasource", start, r.Status) }(time.Now())
	return l.service.UpdateDatasource(ctx, orgID, id, ds)
}

func (l *GrafanaLogger) CreateDashboard(ctx context.Context, orgID int64, post grafana.DashboardPost) (r grafana.DashboardResponse) {
	defer func(start time.Time) { l.observe("create_dashboard", start, r.Status) }(time.Now())
	return l.service.CreateDashboard(ctx, orgID, post)
}

func (l *GrafanaLogger) StarDashboard(ctx context.Context, login string, dashboardID int64) (r grafana.MessageResponse) {
	defer func(start time.Time) { l.observe("star_dashboard", start, r.Status) }(time.Now())
	return l.service.StarDashboard(ctx, login, dashboardID)
}
