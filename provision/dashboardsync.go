package provision

import (
	"context"
	"fmt"
	"net/http"

	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/dashboards"
	"github.com/magma/magma-sub005/grafana"
	"go.uber.org/zap"
)

// Task names reported by dashboard sync.
const (
	taskGetNetworks     = "Get organization networks"
	taskCreateDashboard = "Create dashboard"
)

// syncDashboards classifies the org's networks, selects the dashboard
// profile, and posts every dashboard in the profile's set. Dashboards are
// posted with overwrite against fixed UIDs on every run; they are refreshed,
// not diffed. Starring is cosmetic and never aborts the run.
func (p *Provisioner) syncDashboards(ctx context.Context, org nms.Organization, user userSyncResult) nms.Outcome {
	var out nms.Outcome

	if len(org.Networks) == 0 {
		return out.Abort(nms.Task{
			Name:    taskGetNetworks,
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("organization %s has no networks", org.Name),
		})
	}

	profile := dashboards.ProfileFor(p.classify(ctx, org.Networks))
	p.log.Debug("selected dashboard profile",
		zap.String("org", org.Name),
		zap.Stringer("profile", profile))

	for _, build := range profile.Builders() {
		doc := build(org.Networks)
		created := p.grafana.CreateDashboard(ctx, user.orgID, grafana.DashboardPost{
			Dashboard: doc.MarshalRaw(),
			Overwrite: true,
		})
		if !ok(created.Status) {
			return out.Abort(nms.Task{
				Name:    fmt.Sprintf("%s %s", taskCreateDashboard, doc.Title),
				Status:  created.Status,
				Message: created.Message,
			})
		}
		out = out.Append(nms.Task{
			Name:    fmt.Sprintf("%s %s", taskCreateDashboard, doc.Title),
			Status:  created.Status,
			Message: fmt.Sprintf("created dashboard %s", doc.Title),
		})

		if star := p.grafana.StarDashboard(ctx, user.login, created.Dashboard.ID); !ok(star.Status) {
			p.log.Warn("failed to star dashboard",
				zap.String("dashboard", doc.Title),
				zap.String("login", user.login),
				zap.Int("status", star.Status),
				zap.String("message", star.Message))
		}
	}

	return out
}

// classify resolves the type of each network sequentially. A lookup failure
// only means the network does not count toward any special profile; the sync
// proceeds regardless.
func (p *Provisioner) classify(ctx context.Context, networkIDs []string) []nms.NetworkType {
	types := make([]nms.NetworkType, 0, len(networkIDs))
	for _, id := range networkIDs {
		t, err := p.networks.NetworkType(ctx, id)
		if err != nil {
			p.log.Warn("network type lookup failed",
				zap.String("networkID", id),
				zap.Error(err))
			continue
		}
		types = append(types, t)
	}
	return types
}
