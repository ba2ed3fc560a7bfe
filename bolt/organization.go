package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/kit/errors"
	"go.etcd.io/bbolt"
)

var (
	organizationBucket = []byte("organizationsv1")
	organizationIndex  = []byte("organizationindexv1")
)

var _ nms.OrganizationService = (*Client)(nil)

// FindOrganizationByID retrieves an organization by id.
func (c *Client) FindOrganizationByID(ctx context.Context, id int64) (*nms.Organization, error) {
	var o *nms.Organization

	err := c.db.View(func(tx *bbolt.Tx) error {
		org, err := findOrganizationByID(tx, id)
		if err != nil {
			return err
		}
		o = org
		return nil
	})
	if err != nil {
		return nil, err
	}

	return o, nil
}

func findOrganizationByID(tx *bbolt.Tx, id int64) (*nms.Organization, error) {
	v := tx.Bucket(organizationBucket).Get(encodeID(id))
	if len(v) == 0 {
		return nil, &errors.Error{
			Code: errors.ENotFound,
			Op:   nms.OpFindOrganizationByID,
			Msg:  "organization not found",
		}
	}

	var o nms.Organization
	if err := json.Unmarshal(v, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// FindOrganization returns the first organization matching filter.
func (c *Client) FindOrganization(ctx context.Context, filter nms.OrganizationFilter) (*nms.Organization, error) {
	if filter.ID != nil {
		return c.FindOrganizationByID(ctx, *filter.ID)
	}
	if filter.Name == nil {
		return nil, &errors.Error{
			Code: errors.EInvalid,
			Op:   nms.OpFindOrganization,
			Msg:  "no filter parameters provided",
		}
	}

	var o *nms.Organization
	err := c.db.View(func(tx *bbolt.Tx) error {
		org, err := findOrganizationByName(tx, *filter.Name)
		if err != nil {
			return err
		}
		o = org
		return nil
	})
	if err != nil {
		return nil, err
	}

	return o, nil
}

func findOrganizationByName(tx *bbolt.Tx, name string) (*nms.Organization, error) {
	v := tx.Bucket(organizationIndex).Get(organizationIndexKey(name))
	if len(v) == 0 {
		return nil, &errors.Error{
			Code: errors.ENotFound,
			Op:   nms.OpFindOrganization,
			Msg:  fmt.Sprintf("organization name %q not found", name),
		}
	}
	return findOrganizationByID(tx, decodeID(v))
}

// FindOrganizations retrieves all organizations that match filter.
func (c *Client) FindOrganizations(ctx context.Context, filter nms.OrganizationFilter) ([]*nms.Organization, int, error) {
	if filter.ID != nil {
		o, err := c.FindOrganizationByID(ctx, *filter.ID)
		if err != nil {
			return nil, 0, err
		}
		return []*nms.Organization{o}, 1, nil
	}
	if filter.Name != nil {
		o, err := c.FindOrganization(ctx, filter)
		if err != nil {
			return nil, 0, err
		}
		return []*nms.Organization{o}, 1, nil
	}

	var orgs []*nms.Organization
	err := c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(organizationBucket).ForEach(func(k, v []byte) error {
			var o nms.Organization
			if err := json.Unmarshal(v, &o); err != nil {
				return err
			}
			orgs = append(orgs, &o)
			return nil
		})
	})
	if err != nil {
		return nil, 0, err
	}

	return orgs, len(orgs), nil
}

// CreateOrganization creates an organization and assigns it a new ID. Names
// are unique case-insensitively.
func (c *Client) CreateOrganization(ctx context.Context, o *nms.Organization) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		if _, err := findOrganizationByName(tx, o.Name); err == nil {
			return &errors.Error{
				Code: errors.EConflict,
				Op:   nms.OpCreateOrganization,
				Msg:  fmt.Sprintf("organization with name %s already exists", o.Name),
			}
		}

		seq, err := tx.Bucket(organizationBucket).NextSequence()
		if err != nil {
			return err
		}
		o.ID = int64(seq)

		return putOrganization(tx, o)
	})
}

// UpdateOrganization updates an organization according to the changeset.
func (c *Client) UpdateOrganization(ctx context.Context, id int64, upd nms.OrganizationUpdate) (*nms.Organization, error) {
	var o *nms.Organization
	err := c.db.Update(func(tx *bbolt.Tx) error {
		org, err := findOrganizationByID(tx, id)
		if err != nil {
			return err
		}

		if upd.Name != nil && *upd.Name != org.Name {
			if _, err := findOrganizationByName(tx, *upd.Name); err == nil {
				return &errors.Error{
					Code: errors.EConflict,
					Op:   nms.OpUpdateOrganization,
					Msg:  fmt.Sprintf("organization with name %s already exists", *upd.Name),
				}
			}
			if err := tx.Bucket(organizationIndex).Delete(organizationIndexKey(org.Name)); err != nil {
				return err
			}
			org.Name = *upd.Name
		}
		if upd.Networks != nil {
			org.Networks = *upd.Networks
		}

		if err := putOrganization(tx, org); err != nil {
			return err
		}
		o = org
		return nil
	})
	if err != nil {
		return nil, err
	}

	return o, nil
}

// DeleteOrganization removes an organization by id.
func (c *Client) DeleteOrganization(ctx context.Context, id int64) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		org, err := findOrganizationByID(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Bucket(organizationIndex).Delete(organizationIndexKey(org.Name)); err != nil {
			return err
		}
		return tx.Bucket(organizationBucket).Delete(encodeID(id))
	})
}

func putOrganization(tx *bbolt.Tx, o *nms.Organization) error {
	v, err := json.Marshal(o)
	if err != nil {
		return err
	}
	id := encodeID(o.ID)
	if err := tx.Bucket(organizationIndex).Put(organizationIndexKey(o.Name), id); err != nil {
		return err
	}
	return tx.Bucket(organizationBucket).Put(id, v)
}

func organizationIndexKey(name string) []byte {
	return []byte(strings.ToLower(name))
}

func encodeID(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

func decodeID(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}
