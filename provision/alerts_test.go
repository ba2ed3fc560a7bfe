package provision_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/mock"
)

func TestSyncAlerts(t *testing.T) {
	f := newFakeGrafana()
	p := newProvisioner(t, f, lteRegistry())
	org := nms.Organization{ID: 7, Name: "acme", Networks: []string{"n1", "n2"}}

	t.Run("writes every rule for every network", func(t *testing.T) {
		var mu sync.Mutex
		written := map[string]int{}
		alerts := &mock.AlertService{
			PutAlertRuleF: func(ctx context.Context, networkID string, rule nms.AlertRule) error {
				mu.Lock()
				defer mu.Unlock()
				written[networkID]++
				return nil
			},
		}

		require.NoError(t, p.SyncAlerts(context.Background(), alerts, org))
		assert.Equal(t, written["n1"], written["n2"])
		assert.Greater(t, written["n1"], 0)
	})

	t.Run("aggregates individual failures", func(t *testing.T) {
		alerts := &mock.AlertService{
			PutAlertRuleF: func(ctx context.Context, networkID string, rule nms.AlertRule) error {
				if networkID == "n2" && rule.Alert == "High CPU Usage" {
					return fmt.Errorf("boom")
				}
				return nil
			},
		}

		err := p.SyncAlerts(context.Background(), alerts, org)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "High CPU Usage")
		assert.Contains(t, err.Error(), "n2")
	})
}
