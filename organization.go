package nms

import "context"

// Organization is a locally-stored tenant record. It owns the set of network
// IDs the tenant manages; everything else about the tenant lives in external
// systems and is converged onto this record.
type Organization struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Networks []string `json:"networkIDs"`
}

// ops for organization errors and op logs.
const (
	OpFindOrganizationByID = "FindOrganizationByID"
	OpFindOrganization     = "FindOrganization"
	OpFindOrganizations    = "FindOrganizations"
	OpCreateOrganization   = "CreateOrganization"
	OpUpdateOrganization   = "UpdateOrganization"
	OpDeleteOrganization   = "DeleteOrganization"
)

// OrganizationService represents a service for managing organization data.
type OrganizationService interface {
	// Returns a single organization by ID.
	FindOrganizationByID(ctx context.Context, id int64) (*Organization, error)

	// Returns the first organization that matches filter.
	FindOrganization(ctx context.Context, filter OrganizationFilter) (*Organization, error)

	// Returns a list of organizations that match filter and the total count
	// of matching organizations.
	FindOrganizations(ctx context.Context, filter OrganizationFilter) ([]*Organization, int, error)

	// Creates a new organization and sets o.ID with the new identifier.
	CreateOrganization(ctx context.Context, o *Organization) error

	// Updates a single organization with changeset.
	// Returns the new organization state after update.
	UpdateOrganization(ctx context.Context, id int64, upd OrganizationUpdate) (*Organization, error)

	// Removes an organization by ID.
	DeleteOrganization(ctx context.Context, id int64) error
}

// OrganizationUpdate represents updates to an organization.
// Only fields which are set are updated.
type OrganizationUpdate struct {
	Name     *string
	Networks *[]string
}

// OrganizationFilter represents a set of filters that restrict the returned results.
type OrganizationFilter struct {
	Name *string
	ID   *int64
}
