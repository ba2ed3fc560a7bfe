// Package reconcile converges the orchestrator's tenant records onto the
// local organization store. Missing tenants are created, mismatched ones are
// updated, and nothing is ever deleted by the sweep itself; tenant deletion
// only happens through the explicit DeleteTenant path driven by an admin
// deleting the organization.
package reconcile

import (
	"context"

	"github.com/hashicorp/go-multierror"
	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/kit/errors"
	"go.uber.org/zap"
)

// Reconciler converges orchestrator tenants with local organizations.
type Reconciler struct {
	orgs    nms.OrganizationService
	tenants nms.TenantService
	log     *zap.Logger

	metrics *metrics
}

// NewReconciler returns a reconciler over the given stores.
func NewReconciler(log *zap.Logger, orgs nms.OrganizationService, tenants nms.TenantService) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{
		orgs:    orgs,
		tenants: tenants,
		log:     log,
	}
}

// ReconcileAll fetches the full remote tenant list once and converges every
// local organization against it. Per-organization failures are collected so
// one bad record does not stall the rest of the sweep.
func (r *Reconciler) ReconcileAll(ctx context.Context) error {
	tenants, err := r.tenants.Tenants(ctx)
	if err != nil {
		return &errors.Error{Op: "reconcile.ReconcileAll", Err: err}
	}

	byID := make(map[int64]nms.Tenant, len(tenants))
	for _, t := range tenants {
		byID[t.ID] = t
	}

	orgs, _, err := r.orgs.FindOrganizations(ctx, nms.OrganizationFilter{})
	if err != nil {
		return &errors.Error{Op: "reconcile.ReconcileAll", Err: err}
	}

	var result *multierror.Error
	for _, org := range orgs {
		if err := r.reconcile(ctx, *org, byID); err != nil {
			r.log.Error("failed to reconcile organization",
				zap.Int64("orgID", org.ID),
				zap.String("org", org.Name),
				zap.Error(err))
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// ReconcileOne converges a single organization, fetching only its tenant.
// It is invoked synchronously after organization create and update.
func (r *Reconciler) ReconcileOne(ctx context.Context, org nms.Organization) error {
	t, err := r.tenants.Tenant(ctx, org.ID)
	switch {
	case err == nil:
		return r.converge(ctx, org, t)
	case errors.ErrorCode(err) == errors.ENotFound:
		return r.converge(ctx, org, nil)
	default:
		return &errors.Error{Op: "reconcile.ReconcileOne", Err: err}
	}
}

// DeleteTenant removes the tenant record for a deleted organization. An
// already-absent tenant is success; any other failure propagates, since this
// path runs inside a synchronous admin action that reports errors directly.
func (r *Reconciler) DeleteTenant(ctx context.Context, id int64) error {
	err := r.tenants.DeleteTenant(ctx, id)
	if err == nil || errors.ErrorCode(err) == errors.ENotFound {
		if r.metrics != nil {
			r.metrics.deletes.Inc()
		}
		return nil
	}
	return &errors.Error{Op: "reconcile.DeleteTenant", Err: err}
}

func (r *Reconciler) reconcile(ctx context.Context, org nms.Organization, byID map[int64]nms.Tenant) error {
	if t, exists := byID[org.ID]; exists {
		return r.converge(ctx, org, &t)
	}
	return r.converge(ctx, org, nil)
}

// converge issues the minimal write for one organization: a create when the
// tenant is absent, an update when it differs, nothing when it matches.
func (r *Reconciler) converge(ctx context.Context, org nms.Organization, t *nms.Tenant) error {
	desired := nms.Tenant{
		ID:       org.ID,
		Name:     org.Name,
		Networks: org.Networks,
	}

	if t == nil {
		if err := r.tenants.CreateTenant(ctx, desired); err != nil {
			return err
		}
		if r.metrics != nil {
			r.metrics.creates.Inc()
		}
		r.log.Info("created tenant",
			zap.Int64("id", desired.ID),
			zap.String("name", desired.Name))
		return nil
	}

	if org.EqualsTenant(*t) {
		return nil
	}

	if err := r.tenants.UpdateTenant(ctx, desired); err != nil {
		return err
	}
	if r.metrics != nil {
		r.metrics.updates.Inc()
	}
	r.log.Info("updated tenant",
		zap.Int64("id", desired.ID),
		zap.String("name", desired.Name))
	return nil
}
