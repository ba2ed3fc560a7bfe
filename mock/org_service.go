package mock

import (
	"context"

	nms "github.com/magma/magma-sub005"
)

var _ nms.OrganizationService = (*OrganizationService)(nil)

// OrganizationService is a mock organization service.
type OrganizationService struct {
	FindOrganizationByIDF func(ctx context.Context, id int64) (*nms.Organization, error)
	FindOrganizationF     func(ctx context.Context, filter nms.OrganizationFilter) (*nms.Organization, error)
	FindOrganizationsF    func(ctx context.Context, filter nms.OrganizationFilter) ([]*nms.Organization, int, error)
	CreateOrganizationF   func(ctx context.Context, o *nms.Organization) error
	UpdateOrganizationF   func(ctx context.Context, id int64, upd nms.OrganizationUpdate) (*nms.Organization, error)
	DeleteOrganizationF   func(ctx context.Context, id int64) error
}

// FindOrganizationByID calls FindOrganizationByIDF.
func (s *OrganizationService) FindOrganizationByID(ctx context.Context, id int64) (*nms.Organization, error) {
	return s.FindOrganizationByIDF(ctx, id)
}

// FindOrganization calls FindOrganizationF.
func (s *OrganizationService) FindOrganization(ctx context.Context, filter nms.OrganizationFilter) (*nms.Organization, error) {
	return s.FindOrganizationF(ctx, filter)
}

// FindOrganizations calls FindOrganizationsF.
func (s *OrganizationService) FindOrganizations(ctx context.Context, filter nms.OrganizationFilter) ([]*nms.Organization, int, error) {
	return s.FindOrganizationsF(ctx, filter)
}

// CreateOrganization calls CreateOrganizationF.
func (s *OrganizationService) CreateOrganization(ctx context.Context, o *nms.Organization) error {
	return s.CreateOrganizationF(ctx, o)
}

// UpdateOrganization calls UpdateOrganizationF.
func (s *OrganizationService) UpdateOrganization(ctx context.Context, id int64, upd nms.OrganizationUpdate) (*nms.Organization, error) {
	return s.UpdateOrganizationF(ctx, id, upd)
}

// DeleteOrganization calls DeleteOrganizationF.
func (s *OrganizationService) DeleteOrganization(ctx context.Context, id int64) error {
	return s.DeleteOrganizationF(ctx, id)
}
