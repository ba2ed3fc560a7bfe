package nms

import "context"

// Tenant is the orchestrator's external representation of an Organization.
// Tenant.ID mirrors Organization.ID; the reconciler converges the rest.
type Tenant struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Networks []string `json:"networks"`
}

// ops for tenant errors and op logs.
const (
	OpTenants      = "Tenants"
	OpTenant       = "Tenant"
	OpCreateTenant = "CreateTenant"
	OpUpdateTenant = "UpdateTenant"
	OpDeleteTenant = "DeleteTenant"
)

// TenantService represents the orchestrator's tenant resource.
type TenantService interface {
	// Returns all tenants known to the orchestrator.
	Tenants(ctx context.Context) ([]Tenant, error)

	// Returns a single tenant by ID.
	Tenant(ctx context.Context, id int64) (*Tenant, error)

	// Creates a tenant record.
	CreateTenant(ctx context.Context, t Tenant) error

	// Replaces a tenant record.
	UpdateTenant(ctx context.Context, t Tenant) error

	// Removes a tenant record by ID.
	DeleteTenant(ctx context.Context, id int64) error
}

// EqualsTenant reports whether t already reflects o: the name matches
// case-sensitively and the network sets are equal regardless of order or
// duplicates.
func (o Organization) EqualsTenant(t Tenant) bool {
	if o.Name != t.Name {
		return false
	}
	want := networkSet(o.Networks)
	have := networkSet(t.Networks)
	if len(want) != len(have) {
		return false
	}
	for n := range want {
		if _, ok := have[n]; !ok {
			return false
		}
	}
	return true
}

func networkSet(networks []string) map[string]struct{} {
	set := make(map[string]struct{}, len(networks))
	for _, n := range networks {
		set[n] = struct{}{}
	}
	return set
}
