package provision

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/grafana"
	"go.uber.org/zap"
)

// DatasourcePrefix identifies the one datasource this engine manages inside
// each grafana org. Datasources without the prefix are left untouched.
const DatasourcePrefix = "Metrics"

// Task names reported by datasource sync.
const (
	taskGetCerts         = "Get admin certificates"
	taskGetDatasources   = "Get datasources"
	taskCreateDatasource = "Create datasource"
	taskUpdateDatasource = "Update datasource"
)

// CertSource resolves the admin mTLS credential pair embedded into the
// managed datasource's secure config. The engine never uses the pair itself.
type CertSource interface {
	AdminCerts(ctx context.Context) (cert, key string, err error)
}

// FileCertSource reads PEM-encoded credentials from local files.
type FileCertSource struct {
	CertPath string
	KeyPath  string
}

// AdminCerts reads both PEM files.
func (s FileCertSource) AdminCerts(ctx context.Context) (string, string, error) {
	cert, err := os.ReadFile(s.CertPath)
	if err != nil {
		return "", "", err
	}
	key, err := os.ReadFile(s.KeyPath)
	if err != nil {
		return "", "", err
	}
	return string(cert), string(key), nil
}

// StaticCertSource holds an in-memory credential pair.
type StaticCertSource struct {
	Cert string
	Key  string
}

// AdminCerts returns the stored pair.
func (s StaticCertSource) AdminCerts(ctx context.Context) (string, string, error) {
	if s.Cert == "" || s.Key == "" {
		return "", "", fmt.Errorf("admin certificate pair not configured")
	}
	return s.Cert, s.Key, nil
}

// syncDatasource ensures the managed datasource of the grafana org matches
// desired state, creating it when missing and updating only when the url or
// the credential fields differ. Matching state issues no write at all.
func (p *Provisioner) syncDatasource(ctx context.Context, org nms.Organization, orgID int64) nms.Outcome {
	var out nms.Outcome

	cert, key, err := p.certs.AdminCerts(ctx)
	if err != nil {
		// Local precondition failure: no remote call was made, so the task
		// carries a synthetic 500.
		return out.Abort(nms.Task{
			Name:    taskGetCerts,
			Status:  http.StatusInternalServerError,
			Message: err.Error(),
		})
	}

	desired := p.desiredDatasource(org, orgID, cert, key)

	list := p.grafana.Datasources(ctx, orgID)
	if !ok(list.Status) {
		return out.Abort(nms.Task{Name: taskGetDatasources, Status: list.Status, Message: list.Message})
	}

	var existing *grafana.Datasource
	for i := range list.Datasources {
		if strings.HasPrefix(list.Datasources[i].Name, DatasourcePrefix) {
			existing = &list.Datasources[i]
			break
		}
	}

	if existing == nil {
		created := p.grafana.CreateDatasource(ctx, orgID, desired)
		if !ok(created.Status) {
			return out.Abort(nms.Task{Name: taskCreateDatasource, Status: created.Status, Message: created.Message})
		}
		return out.Append(nms.Task{
			Name:    taskCreateDatasource,
			Status:  created.Status,
			Message: fmt.Sprintf("created datasource %s", desired.Name),
		})
	}

	if !datasourceMatches(*existing, desired) {
		updated := p.grafana.UpdateDatasource(ctx, orgID, existing.ID, desired)
		if !ok(updated.Status) {
			return out.Abort(nms.Task{Name: taskUpdateDatasource, Status: updated.Status, Message: updated.Message})
		}
		return out.Append(nms.Task{
			Name:    taskUpdateDatasource,
			Status:  updated.Status,
			Message: fmt.Sprintf("updated datasource %s", existing.Name),
		})
	}

	p.log.Debug("datasource up to date",
		zap.String("name", existing.Name),
		zap.Int64("grafanaOrgID", orgID))
	return out.Append(nms.Task{
		Name:    taskGetDatasources,
		Status:  list.Status,
		Message: fmt.Sprintf("datasource %s up to date", existing.Name),
	})
}

// desiredDatasource is the configuration the managed datasource must hold.
func (p *Provisioner) desiredDatasource(org nms.Organization, orgID int64, cert, key string) grafana.Datasource {
	return grafana.Datasource{
		OrgID:     orgID,
		Name:      fmt.Sprintf("%s_%d", DatasourcePrefix, orgID),
		Type:      "prometheus",
		Access:    "proxy",
		URL:       fmt.Sprintf("https://%s/metricsd/v1/tenants/%d", p.apiHost, org.ID),
		IsDefault: true,
		JSONData:  grafana.JSONData{TLSAuth: true},
		SecureJSONData: grafana.SecureJSONData{
			TLSClientCert: cert,
			TLSClientKey:  key,
		},
	}
}

// datasourceMatches compares only the fields the engine owns. Updating on
// any other difference would rotate credentials on every run.
func datasourceMatches(existing, desired grafana.Datasource) bool {
	return existing.URL == desired.URL &&
		existing.SecureJSONData.TLSClientCert == desired.SecureJSONData.TLSClientCert &&
		existing.SecureJSONData.TLSClientKey == desired.SecureJSONData.TLSClientKey
}
