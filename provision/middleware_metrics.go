package provision

import (
	"context"
	"strconv"
	"time"

	"github.com/magma/magma-sub005/grafana"
	"github.com/prometheus/client_golang/prometheus"
)

// GrafanaMetrics is a prometheus middleware for the grafana service.
type GrafanaMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec

	service grafana.Service
}

// NewGrafanaMetrics returns a metrics middleware for the grafana service,
// registering its collectors on reg.
func NewGrafanaMetrics(reg prometheus.Registerer, s grafana.Service) *GrafanaMetrics {
	m := &GrafanaMetrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nms",
			Subsystem: "grafana_client",
			Name:      "calls_total",
			Help:      "Number of calls to the grafana API by method and status.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nms",
			Subsystem: "grafana_client",
			Name:      "call_duration_seconds",
			Help:      "Duration of grafana API calls.",
		}, []string{"method"}),
		service: s,
	}
	reg.MustRegister(m.calls, m.duration)
	return m
}

var _ grafana.Service = (*GrafanaMetrics)(nil)

func (m *GrafanaMetrics) record(method string, start time.Time, status int) {
	m.calls.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func (m *GrafanaMetrics) Health(ctx context.Context) (r grafana.HealthResponse) {
	defer func(start time.Time) { m.record("health", start, r.Status) }(time.Now())
	return m.service.Health(ctx)
}

func (m *GrafanaMetrics) User(ctx context.Context, login string) (r grafana.UserResponse) {
	defer func(start time.Time) { m.record("user", start, r.Status) }(time.Now())
	return m.service.User(ctx, login)
}

func (m *GrafanaMetrics) CreateUser(ctx context.Context, u grafana.CreateUserRequest) (r grafana.CreatedUserResponse) {
	defer func(start time.Time) { m.record("create_user", start, r.Status) }(time.Now())
	return m.service.CreateUser(ctx, u)
}

func (m *GrafanaMetrics) Org(ctx context.Context, name string) (r grafana.OrgResponse) {
	defer func(start time.Time) { m.record("org", start, r.Status) }(time.Now())
	return m.service.Org(ctx, name)
}

func (m *GrafanaMetrics) AddOrg(ctx context.Context, name string) (r grafana.AddedOrgResponse) {
	defer func(start time.Time) { m.record("add_org", start, r.Status) }(time.Now())
	return m.service.AddOrg(ctx, name)
}

func (m *GrafanaMetrics) DeleteOrg(ctx context.Context, id int64) (r grafana.MessageResponse) {
	defer func(start time.Time) { m.record("delete_org", start, r.Status) }(time.Now())
	return m.service.DeleteOrg(ctx, id)
}

func (m *GrafanaMetrics) UsersInOrg(ctx context.Context, orgID int64) (r grafana.OrgUsersResponse) {
	defer func(start time.Time) { m.record("users_in_org", start, r.Status) }(time.Now())
	return m.service.UsersInOrg(ctx, orgID)
}

func (m *GrafanaMetrics) AddUserToOrg(ctx context.Context, orgID int64, u grafana.OrgUser) (r grafana.MessageResponse) {
	defer func(start time.Time) { m.record("add_user_to_org", start, r.Status) }(time.Now())
	return m.service.AddUserToOrg(ctx, orgID, u)
}

func (m *GrafanaMetrics) Datasources(ctx context.Context, orgID int64) (r grafana.DatasourcesResponse) {
	defer func(start time.Time) { m.record("datasources", start, r.Status) }(time.Now())
	return m.service.Datasources(ctx, orgID)
}

func (m *GrafanaMetrics) CreateDatasource(ctx context.Context, orgID int64, ds grafana.Datasource) (r grafana.DatasourceResponse) {
	defer func(start time.Time) { m.record("create_datasource", start, r.Status) }(time.Now())
	return m.service.CreateDatasource(ctx, orgID, ds)
}

func (m *GrafanaMetrics) UpdateDatasource(ctx context.Context, orgID, id int64, ds grafana.Datasource) (r grafana.DatasourceResponse) {
	defer func(start time.Time) { m.record("update_datasource", start, r.Status) }(time.Now())
	return m.service.UpdateDatasource(ctx, orgID, id, ds)
}

func (m *GrafanaMetrics) CreateDashboard(ctx context.Context, orgID int64, post grafana.DashboardPost) (r grafana.DashboardResponse) {
	defer func(start time.Time) { m.record("create_dashboard", start, r.Status) }(time.Now())
	return m.service.CreateDashboard(ctx, orgID, post)
}

func (m *GrafanaMetrics) StarDashboard(ctx context.Context, login string, dashboardID int64) (r grafana.MessageResponse) {
	defer func(start time.Time) { m.record("star_dashboard", start, r.Status) }(time.Now())
	return m.service.StarDashboard(ctx, login, dashboardID)
}
