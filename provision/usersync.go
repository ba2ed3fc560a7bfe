package provision

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"

	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/grafana"
	"go.uber.org/zap"
)

// Task names reported by user sync.
const (
	taskGetOrg        = "Get grafana organization"
	taskAddOrg        = "Add grafana organization"
	taskGetUser       = "Get grafana user"
	taskCreateUser    = "Create grafana user"
	taskDeletePersOrg = "Delete grafana personal organization"
	taskGetOrgUsers   = "Get users in grafana organization"
	taskAddOrgUser    = "Add user to grafana organization"
)

// syncUser ensures the grafana org for the organization exists, the acting
// user exists globally, and the user is an Editor in the org. It returns the
// grafana org ID for the datasource and dashboard steps.
func (p *Provisioner) syncUser(ctx context.Context, req Request) (userSyncResult, nms.Outcome) {
	var out nms.Outcome
	res := userSyncResult{login: Login(req.UserID)}
	orgName := req.Organization.Name

	// Org: 404 drives the create branch; anything else unexpected aborts.
	switch r := p.grafana.Org(ctx, orgName); {
	case ok(r.Status):
		res.orgID = r.Org.ID
		out = out.Append(nms.Task{
			Name:    taskGetOrg,
			Status:  r.Status,
			Message: fmt.Sprintf("organization %s already exists", orgName),
		})
	case r.Status == http.StatusNotFound:
		a := p.grafana.AddOrg(ctx, orgName)
		if !ok(a.Status) {
			return res, out.Abort(nms.Task{Name: taskAddOrg, Status: a.Status, Message: a.Message})
		}
		res.orgID = a.Org.OrgID
		out = out.Append(nms.Task{
			Name:    taskAddOrg,
			Status:  a.Status,
			Message: fmt.Sprintf("created organization %s", orgName),
		})
	default:
		return res, out.Abort(nms.Task{Name: taskGetOrg, Status: r.Status, Message: r.Message})
	}

	// User: create on absence, then remove the personal org grafana creates
	// as a side effect of the admin user-create call.
	switch u := p.grafana.User(ctx, res.login); {
	case ok(u.Status):
		out = out.Append(nms.Task{
			Name:    taskGetUser,
			Status:  u.Status,
			Message: fmt.Sprintf("user %s already exists", res.login),
		})
	case u.Status == http.StatusNotFound:
		created, createOut := p.createUser(ctx, res.login)
		out = out.Merge(createOut)
		if !out.Succeeded() {
			return res, out
		}
		p.log.Debug("created grafana user",
			zap.String("login", res.login),
			zap.Int64("userID", created.ID))
	default:
		return res, out.Abort(nms.Task{Name: taskGetUser, Status: u.Status, Message: u.Message})
	}

	// Membership: linear scan, add as Editor when absent.
	m := p.grafana.UsersInOrg(ctx, res.orgID)
	if !ok(m.Status) {
		return res, out.Abort(nms.Task{Name: taskGetOrgUsers, Status: m.Status, Message: m.Message})
	}
	for _, member := range m.Users {
		if member.Login == res.login {
			out = out.Append(nms.Task{
				Name:    taskGetOrgUsers,
				Status:  m.Status,
				Message: fmt.Sprintf("user %s already in organization", res.login),
			})
			return res, out
		}
	}

	add := p.grafana.AddUserToOrg(ctx, res.orgID, grafana.OrgUser{
		Login: res.login,
		Role:  grafana.RoleEditor,
	})
	if !ok(add.Status) {
		return res, out.Abort(nms.Task{Name: taskAddOrgUser, Status: add.Status, Message: add.Message})
	}
	out = out.Append(nms.Task{
		Name:    taskAddOrgUser,
		Status:  add.Status,
		Message: fmt.Sprintf("added %s as %s", res.login, grafana.RoleEditor),
	})
	return res, out
}

// createUser adds the global user and deletes the auto-created personal org,
// which is an artifact of the user-create call and never desired state.
func (p *Provisioner) createUser(ctx context.Context, login string) (grafana.CreatedUser, nms.Outcome) {
	var out nms.Outcome

	cu := p.grafana.CreateUser(ctx, grafana.CreateUserRequest{
		Name:     login,
		Login:    login,
		Email:    login,
		Password: randomPassword(),
	})
	if !ok(cu.Status) {
		return cu.User, out.Abort(nms.Task{Name: taskCreateUser, Status: cu.Status, Message: cu.Message})
	}
	out = out.Append(nms.Task{
		Name:    taskCreateUser,
		Status:  cu.Status,
		Message: fmt.Sprintf("created user %s", login),
	})

	personal := p.grafana.Org(ctx, login)
	switch {
	case ok(personal.Status):
		del := p.grafana.DeleteOrg(ctx, personal.Org.ID)
		if !ok(del.Status) {
			return cu.User, out.Abort(nms.Task{Name: taskDeletePersOrg, Status: del.Status, Message: del.Message})
		}
		out = out.Append(nms.Task{
			Name:    taskDeletePersOrg,
			Status:  del.Status,
			Message: fmt.Sprintf("deleted personal organization %s", login),
		})
	case personal.Status == http.StatusNotFound:
		// Already absent.
	default:
		return cu.User, out.Abort(nms.Task{Name: taskDeletePersOrg, Status: personal.Status, Message: personal.Message})
	}

	return cu.User, out
}

// randomPassword generates a throwaway password for created users. Users
// authenticate through the auth proxy, never with this password.
func randomPassword() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
