package provision

import (
	"context"
	"fmt"

	nms "github.com/magma/magma-sub005"
)

// Diagnose enriches a failed outcome with a backend health probe so callers
// can tell a broken pipeline apart from an unreachable backend. Successful
// outcomes pass through untouched.
func (p *Provisioner) Diagnose(ctx context.Context, out nms.Outcome) nms.Outcome {
	if out.Succeeded() {
		return out
	}

	h := p.grafana.Health(ctx)
	task := nms.Task{
		Name:   "Grafana health",
		Status: h.Status,
	}
	if ok(h.Status) {
		task.Message = fmt.Sprintf("backend healthy, database %s, version %s", h.Health.Database, h.Health.Version)
	} else {
		task.Message = h.Message
	}
	out.Completed = append(out.Completed, task)
	return out
}
