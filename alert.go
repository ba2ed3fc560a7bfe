package nms

import "context"

// AlertRule is a prometheus-style alerting rule scoped to one network.
type AlertRule struct {
	Alert       string            `json:"alert"`
	Expr        string            `json:"expr"`
	For         string            `json:"for,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

// AlertService manages the alerting rules of networks on the orchestrator.
type AlertService interface {
	// PutAlertRule upserts one rule for the network.
	PutAlertRule(ctx context.Context, networkID string, rule AlertRule) error
}
