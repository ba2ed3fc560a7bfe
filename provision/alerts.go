package provision

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	nms "github.com/magma/magma-sub005"
)

// defaultAlertRules are the rules provisioned for every network.
func defaultAlertRules(networkID string) []nms.AlertRule {
	match := fmt.Sprintf(`{networkID="%s"}`, networkID)
	return []nms.AlertRule{
		{
			Alert: "Certificate Expiring Soon",
			Expr:  `cert_expires_in_hours` + match + ` < 720`,
			For:   "5m",
			Labels: map[string]string{
				"severity": "critical",
				"network":  networkID,
			},
		},
		{
			Alert: "High CPU Usage",
			Expr:  `cpu_percent` + match + ` > 75`,
			For:   "5m",
			Labels: map[string]string{
				"severity": "warning",
				"network":  networkID,
			},
		},
		{
			Alert: "Unexpected Service Restarts",
			Expr:  `increase(unexpected_service_restarts` + match + `[1h]) > 3`,
			Labels: map[string]string{
				"severity": "warning",
				"network":  networkID,
			},
		},
		{
			Alert: "Bootstrap Exception",
			Expr:  `increase(bootstrap_exception` + match + `[1h]) > 0`,
			Labels: map[string]string{
				"severity": "critical",
				"network":  networkID,
			},
		},
	}
}

// SyncAlerts upserts the default alert rules for every network of the
// organization. The per-rule writes are independent, so they fan out
// concurrently and are awaited together; any individual failure surfaces in
// the aggregate error.
func (p *Provisioner) SyncAlerts(ctx context.Context, alerts nms.AlertService, org nms.Organization) error {
	var (
		mu     sync.Mutex
		result *multierror.Error
		wg     sync.WaitGroup
	)

	for _, networkID := range org.Networks {
		for _, rule := range defaultAlertRules(networkID) {
			wg.Add(1)
			go func(networkID string, rule nms.AlertRule) {
				defer wg.Done()
				if err := alerts.PutAlertRule(ctx, networkID, rule); err != nil {
					mu.Lock()
					result = multierror.Append(result, fmt.Errorf("rule %q on network %s: %w", rule.Alert, networkID, err))
					mu.Unlock()
				}
			}(networkID, rule)
		}
	}
	wg.Wait()

	return result.ErrorOrNil()
}
