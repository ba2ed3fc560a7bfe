package dashboards_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magma/magma-sub005/dashboards"
)

func TestNetworkDocument(t *testing.T) {
	doc := dashboards.Network([]string{"n1", "n2"})

	assert.Equal(t, "nms_network", doc.UID)
	assert.Equal(t, "Networks", doc.Title)
	assert.False(t, doc.Editable)
	assert.Contains(t, doc.Tags, "magma")

	require.Len(t, doc.Templating.List, 1)
	v := doc.Templating.List[0]
	assert.Equal(t, "networkID", v.Name)
	assert.Equal(t, "custom", v.Type)
	assert.Equal(t, "n1,n2", v.Query)
	assert.True(t, v.IncludeAll)
	assert.Equal(t, "n1", v.Current.Value)
}

func TestPanelLayout(t *testing.T) {
	doc := dashboards.Gateway([]string{"n1"})
	require.NotEmpty(t, doc.Panels)

	for i, p := range doc.Panels {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, "graph", p.Type)
		assert.Equal(t, (i%2)*12, p.GridPos.X)
		assert.Equal(t, (i/2)*8, p.GridPos.Y)
		assert.NotEmpty(t, p.Targets, "panel %q has no queries", p.Title)
	}
}

func TestEveryBuilderQueriesTheNetworkVariable(t *testing.T) {
	builders := map[string]dashboards.Builder{
		"Network":        dashboards.Network,
		"Gateway":        dashboards.Gateway,
		"Internal":       dashboards.Internal,
		"Subscriber":     dashboards.Subscriber,
		"XWFM":           dashboards.XWFM,
		"Analytics":      dashboards.Analytics,
		"CWFNetwork":     dashboards.CWFNetwork,
		"CWFGateway":     dashboards.CWFGateway,
		"CWFSubscriber":  dashboards.CWFSubscriber,
		"CWFAccessPoint": dashboards.CWFAccessPoint,
	}

	for name, b := range builders {
		t.Run(name, func(t *testing.T) {
			doc := b([]string{"n1"})
			assert.NotEmpty(t, doc.UID)
			require.Len(t, doc.Templating.List, 1)

			found := false
			for _, p := range doc.Panels {
				for _, target := range p.Targets {
					if target.Expr != "" {
						found = true
					}
				}
			}
			assert.True(t, found, "dashboard %q has no query expressions", doc.Title)
		})
	}
}

func TestMarshalRaw(t *testing.T) {
	raw := dashboards.Internal([]string{"n1"}).MarshalRaw()

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Internal", decoded["title"])
	assert.EqualValues(t, 16, decoded["schemaVersion"])
}
