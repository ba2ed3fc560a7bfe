package nms_test

import (
	"testing"

	nms "github.com/magma/magma-sub005"
)

func TestOrganizationEqualsTenant(t *testing.T) {
	tests := []struct {
		name   string
		org    nms.Organization
		tenant nms.Tenant
		want   bool
	}{
		{
			name:   "identical",
			org:    nms.Organization{ID: 1, Name: "acme", Networks: []string{"n1", "n2"}},
			tenant: nms.Tenant{ID: 1, Name: "acme", Networks: []string{"n1", "n2"}},
			want:   true,
		},
		{
			name:   "network order is irrelevant",
			org:    nms.Organization{Name: "acme", Networks: []string{"n1", "n2"}},
			tenant: nms.Tenant{Name: "acme", Networks: []string{"n2", "n1"}},
			want:   true,
		},
		{
			name:   "duplicate networks collapse to the same set",
			org:    nms.Organization{Name: "acme", Networks: []string{"n1", "n1", "n2"}},
			tenant: nms.Tenant{Name: "acme", Networks: []string{"n2", "n1"}},
			want:   true,
		},
		{
			name:   "tenant duplicates do not mask a missing network",
			org:    nms.Organization{Name: "acme", Networks: []string{"a", "b"}},
			tenant: nms.Tenant{Name: "acme", Networks: []string{"a", "a"}},
			want:   false,
		},
		{
			name:   "both empty",
			org:    nms.Organization{Name: "acme"},
			tenant: nms.Tenant{Name: "acme"},
			want:   true,
		},
		{
			name:   "name comparison is case sensitive",
			org:    nms.Organization{Name: "acme", Networks: []string{"n1"}},
			tenant: nms.Tenant{Name: "Acme", Networks: []string{"n1"}},
			want:   false,
		},
		{
			name:   "tenant missing a network",
			org:    nms.Organization{Name: "acme", Networks: []string{"n1", "n2"}},
			tenant: nms.Tenant{Name: "acme", Networks: []string{"n1"}},
			want:   false,
		},
		{
			name:   "tenant has an extra network",
			org:    nms.Organization{Name: "acme", Networks: []string{"n1"}},
			tenant: nms.Tenant{Name: "acme", Networks: []string{"n1", "n2"}},
			want:   false,
		},
		{
			name:   "disjoint networks",
			org:    nms.Organization{Name: "acme", Networks: []string{"n1"}},
			tenant: nms.Tenant{Name: "acme", Networks: []string{"n2"}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.org.EqualsTenant(tt.tenant); got != tt.want {
				t.Errorf("EqualsTenant() = %v, want %v", got, tt.want)
			}
		})
	}
}
