package mock

import (
	"context"

	nms "github.com/magma/magma-sub005"
)

var _ nms.TenantService = (*TenantService)(nil)

// TenantService is a mock orchestrator tenant service.
type TenantService struct {
	TenantsF      func(ctx context.Context) ([]nms.Tenant, error)
	TenantF       func(ctx context.Context, id int64) (*nms.Tenant, error)
	CreateTenantF func(ctx context.Context, t nms.Tenant) error
	UpdateTenantF func(ctx context.Context, t nms.Tenant) error
	DeleteTenantF func(ctx context.Context, id int64) error
}

// Tenants calls TenantsF.
func (s *TenantService) Tenants(ctx context.Context) ([]nms.Tenant, error) {
	return s.TenantsF(ctx)
}

// Tenant calls TenantF.
func (s *TenantService) Tenant(ctx context.Context, id int64) (*nms.Tenant, error) {
	return s.TenantF(ctx, id)
}

// CreateTenant calls CreateTenantF.
func (s *TenantService) CreateTenant(ctx context.Context, t nms.Tenant) error {
	return s.CreateTenantF(ctx, t)
}

// UpdateTenant calls UpdateTenantF.
func (s *TenantService) UpdateTenant(ctx context.Context, t nms.Tenant) error {
	return s.UpdateTenantF(ctx, t)
}

// DeleteTenant calls DeleteTenantF.
func (s *TenantService) DeleteTenant(ctx context.Context, id int64) error {
	return s.DeleteTenantF(ctx, id)
}

var _ nms.NetworkRegistry = (*NetworkRegistry)(nil)

// NetworkRegistry is a mock network type lookup.
type NetworkRegistry struct {
	NetworkTypeF func(ctx context.Context, networkID string) (nms.NetworkType, error)
}

// NetworkType calls NetworkTypeF.
func (s *NetworkRegistry) NetworkType(ctx context.Context, networkID string) (nms.NetworkType, error) {
	return s.NetworkTypeF(ctx, networkID)
}

var _ nms.AlertService = (*AlertService)(nil)

// AlertService is a mock alert rule sink.
type AlertService struct {
	PutAlertRuleF func(ctx context.Context, networkID string, rule nms.AlertRule) error
}

// PutAlertRule calls PutAlertRuleF.
func (s *AlertService) PutAlertRule(ctx context.Context, networkID string, rule nms.AlertRule) error {
	return s.PutAlertRuleF(ctx, networkID, rule)
}
