package reconcile_test

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/kit/errors"
	"github.com/magma/magma-sub005/mock"
	"github.com/magma/magma-sub005/reconcile"
)

func orgService(orgs ...*nms.Organization) *mock.OrganizationService {
	return &mock.OrganizationService{
		FindOrganizationsF: func(ctx context.Context, filter nms.OrganizationFilter) ([]*nms.Organization, int, error) {
			return orgs, len(orgs), nil
		},
	}
}

func TestReconcileAll(t *testing.T) {
	acme := &nms.Organization{ID: 1, Name: "acme", Networks: []string{"n1", "n2"}}
	beta := &nms.Organization{ID: 2, Name: "beta", Networks: []string{"n3"}}

	t.Run("creates missing and updates mismatched", func(t *testing.T) {
		var created, updated []nms.Tenant
		tenants := &mock.TenantService{
			TenantsF: func(ctx context.Context) ([]nms.Tenant, error) {
				// acme exists but with an outdated network set; beta is missing.
				return []nms.Tenant{{ID: 1, Name: "acme", Networks: []string{"n1"}}}, nil
			},
			CreateTenantF: func(ctx context.Context, tn nms.Tenant) error {
				created = append(created, tn)
				return nil
			},
			UpdateTenantF: func(ctx context.Context, tn nms.Tenant) error {
				updated = append(updated, tn)
				return nil
			},
		}

		r := reconcile.NewReconciler(zaptest.NewLogger(t), orgService(acme, beta), tenants)
		require.NoError(t, r.ReconcileAll(context.Background()))

		require.Len(t, created, 1)
		assert.Equal(t, int64(2), created[0].ID)
		require.Len(t, updated, 1)
		assert.Equal(t, int64(1), updated[0].ID)
		assert.ElementsMatch(t, []string{"n1", "n2"}, updated[0].Networks)
	})

	t.Run("converged state issues zero writes", func(t *testing.T) {
		tenants := &mock.TenantService{
			TenantsF: func(ctx context.Context) ([]nms.Tenant, error) {
				// Network order differs; the sets are equal.
				return []nms.Tenant{
					{ID: 1, Name: "acme", Networks: []string{"n2", "n1"}},
					{ID: 2, Name: "beta", Networks: []string{"n3"}},
				}, nil
			},
			CreateTenantF: func(ctx context.Context, tn nms.Tenant) error {
				t.Fatalf("unexpected create of tenant %d", tn.ID)
				return nil
			},
			UpdateTenantF: func(ctx context.Context, tn nms.Tenant) error {
				t.Fatalf("unexpected update of tenant %d", tn.ID)
				return nil
			},
		}

		r := reconcile.NewReconciler(zaptest.NewLogger(t), orgService(acme, beta), tenants)
		require.NoError(t, r.ReconcileAll(context.Background()))
	})

	t.Run("case differences in name force an update", func(t *testing.T) {
		var updated []nms.Tenant
		tenants := &mock.TenantService{
			TenantsF: func(ctx context.Context) ([]nms.Tenant, error) {
				return []nms.Tenant{{ID: 1, Name: "Acme", Networks: []string{"n1", "n2"}}}, nil
			},
			UpdateTenantF: func(ctx context.Context, tn nms.Tenant) error {
				updated = append(updated, tn)
				return nil
			},
		}

		r := reconcile.NewReconciler(zaptest.NewLogger(t), orgService(acme), tenants)
		require.NoError(t, r.ReconcileAll(context.Background()))
		require.Len(t, updated, 1)
		assert.Equal(t, "acme", updated[0].Name)
	})

	t.Run("one bad record does not stall the sweep", func(t *testing.T) {
		var created []nms.Tenant
		tenants := &mock.TenantService{
			TenantsF: func(ctx context.Context) ([]nms.Tenant, error) {
				return nil, nil
			},
			CreateTenantF: func(ctx context.Context, tn nms.Tenant) error {
				if tn.ID == 1 {
					return &errors.Error{Code: errors.EUnavailable, Msg: "boom"}
				}
				created = append(created, tn)
				return nil
			},
		}

		r := reconcile.NewReconciler(zaptest.NewLogger(t), orgService(acme, beta), tenants)
		err := r.ReconcileAll(context.Background())
		require.Error(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, int64(2), created[0].ID)
	})
}

func TestReconcileOne(t *testing.T) {
	acme := nms.Organization{ID: 1, Name: "acme", Networks: []string{"n1"}}

	t.Run("creates when tenant is absent", func(t *testing.T) {
		var created []nms.Tenant
		tenants := &mock.TenantService{
			TenantF: func(ctx context.Context, id int64) (*nms.Tenant, error) {
				return nil, &errors.Error{Code: errors.ENotFound}
			},
			CreateTenantF: func(ctx context.Context, tn nms.Tenant) error {
				created = append(created, tn)
				return nil
			},
		}

		r := reconcile.NewReconciler(zaptest.NewLogger(t), orgService(), tenants)
		require.NoError(t, r.ReconcileOne(context.Background(), acme))
		require.Len(t, created, 1)
	})

	t.Run("updates when tenant differs", func(t *testing.T) {
		var updated []nms.Tenant
		tenants := &mock.TenantService{
			TenantF: func(ctx context.Context, id int64) (*nms.Tenant, error) {
				return &nms.Tenant{ID: 1, Name: "acme", Networks: []string{"stale"}}, nil
			},
			UpdateTenantF: func(ctx context.Context, tn nms.Tenant) error {
				updated = append(updated, tn)
				return nil
			},
		}

		r := reconcile.NewReconciler(zaptest.NewLogger(t), orgService(), tenants)
		require.NoError(t, r.ReconcileOne(context.Background(), acme))
		require.Len(t, updated, 1)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		tenants := &mock.TenantService{
			TenantF: func(ctx context.Context, id int64) (*nms.Tenant, error) {
				return nil, &errors.Error{Code: errors.EUnavailable, Msg: "orchestrator down"}
			},
		}

		r := reconcile.NewReconciler(zaptest.NewLogger(t), orgService(), tenants)
		require.Error(t, r.ReconcileOne(context.Background(), acme))
	})
}

func TestDeleteTenant(t *testing.T) {
	t.Run("missing tenant is success", func(t *testing.T) {
		tenants := &mock.TenantService{
			DeleteTenantF: func(ctx context.Context, id int64) error {
				return &errors.Error{Code: errors.ENotFound}
			},
		}

		r := reconcile.NewReconciler(zaptest.NewLogger(t), orgService(), tenants)
		assert.NoError(t, r.DeleteTenant(context.Background(), 1))
	})

	t.Run("other failures propagate loudly", func(t *testing.T) {
		tenants := &mock.TenantService{
			DeleteTenantF: func(ctx context.Context, id int64) error {
				return &errors.Error{Code: errors.EUnavailable, Msg: "orchestrator down"}
			},
		}

		r := reconcile.NewReconciler(zaptest.NewLogger(t), orgService(), tenants)
		err := r.DeleteTenant(context.Background(), 1)
		require.Error(t, err)
		assert.Equal(t, errors.EUnavailable, errors.ErrorCode(err))
	})
}

func TestRunner(t *testing.T) {
	sweeps := make(chan struct{}, 16)
	tenants := &mock.TenantService{
		TenantsF: func(ctx context.Context) ([]nms.Tenant, error) {
			sweeps <- struct{}{}
			return nil, nil
		},
	}

	r := reconcile.NewReconciler(zaptest.NewLogger(t), orgService(), tenants)
	mockClock := clock.NewMock()
	runner := &reconcile.Runner{
		Reconciler: r,
		Interval:   time.Minute,
		Clock:      mockClock,
		Logger:     zaptest.NewLogger(t),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runner.Run(ctx)

	// Initial sweep happens without waiting for a tick.
	select {
	case <-sweeps:
	case <-time.After(5 * time.Second):
		t.Fatal("no initial sweep")
	}

	mockClock.Add(time.Minute)
	select {
	case <-sweeps:
	case <-time.After(5 * time.Second):
		t.Fatal("no sweep after tick")
	}
}
