// Package provision converges a grafana instance onto the desired state for
// one organization: the org itself, the acting user's membership, the managed
// metrics datasource, and the dashboard set for the org's networks.
//
// The pipeline is forward-only. Steps are idempotent check-then-create-or-
// update operations; a failed run is retried by running it again, never by
// rolling back. Progress and the terminating failure are reported through
// nms.Outcome rather than errors.
package provision

import (
	"context"
	"fmt"

	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/grafana"
	"go.uber.org/zap"
)

// Config carries every collaborator the provisioner needs. All state is
// injected here; the package has no globals, so per-tenant credential sets
// are just separate Provisioners.
type Config struct {
	Grafana  grafana.Service
	Networks nms.NetworkRegistry
	Certs    CertSource

	// APIHost is the host the managed datasource queries through.
	APIHost string

	Logger *zap.Logger
}

// Provisioner drives one grafana instance to desired state per request.
type Provisioner struct {
	grafana  grafana.Service
	networks nms.NetworkRegistry
	certs    CertSource
	apiHost  string
	log      *zap.Logger
}

// NewProvisioner returns a provisioner for the given collaborators.
func NewProvisioner(c Config) *Provisioner {
	log := c.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Provisioner{
		grafana:  c.Grafana,
		networks: c.Networks,
		certs:    c.Certs,
		apiHost:  c.APIHost,
		log:      log,
	}
}

// Request identifies the acting user and the organization to provision.
type Request struct {
	UserID       int64
	Organization nms.Organization
}

// Login is the deterministic grafana login for a local user ID.
func Login(userID int64) string {
	return fmt.Sprintf("NMSUser_%d", userID)
}

// Provision runs the full pipeline: user sync, then datasource sync, then
// dashboard sync. Each step requires its predecessor's result, so ordering is
// enforced by the data flow rather than by call position. The first failed
// task aborts the run; tasks completed before it already took effect remotely
// and are reported as-is.
func (p *Provisioner) Provision(ctx context.Context, req Request) nms.Outcome {
	user, out := p.syncUser(ctx, req)
	if !out.Succeeded() {
		return out
	}

	out = out.Merge(p.syncDatasource(ctx, req.Organization, user.orgID))
	if !out.Succeeded() {
		return out
	}

	return out.Merge(p.syncDashboards(ctx, req.Organization, user))
}

// userSyncResult is the precondition the later steps consume: the grafana
// org ID resolved or created by user sync, and the acting user's login.
type userSyncResult struct {
	orgID int64
	login string
}

// ok reports whether a status is a success.
func ok(status int) bool {
	return status/100 == 2
}
