package services

import (
	"net/http"
	"strconv"

	"github.com/ocserv-admin/ocservctl/models"
)

const usersBase = "/users/"

// OcservUserApi - vpn account endpoints
type OcservUserApi struct {
	s *Services
}

func userPath(pk int, action string) string {
	return strconv.Itoa(pk) + "/" + action
}

// Users lists vpn accounts
func (u *OcservUserApi) Users() (models.UserPagination, error) {
	return request[models.UserPagination](u.s, http.MethodGet, usersBase, "", nil)
}

// CreateUser creates a vpn account, data is sent as is
func (u *OcservUserApi) CreateUser(data any) (models.OcservUser, error) {
	return request[models.OcservUser](u.s, http.MethodPost, usersBase, "", data)
}

// UpdateUser patches the vpn account pk. Pass a map to send only the
// fields being changed.
func (u *OcservUserApi) UpdateUser(pk int, data any) (models.OcservUser, error) {
	return request[models.OcservUser](u.s, http.MethodPatch, usersBase, userPath(pk, ""), data)
}

// DeleteUser removes the vpn account pk
func (u *OcservUserApi) DeleteUser(pk int) (models.OcservUser, error) {
	return request[models.OcservUser](u.s, http.MethodDelete, usersBase, userPath(pk, ""), nil)
}

// DisconnectUser drops the live sessions of the vpn account pk
func (u *OcservUserApi) DisconnectUser(pk int) (models.OcservUser, error) {
	return request[models.OcservUser](u.s, http.MethodPost, usersBase, userPath(pk, "disconnect/"), nil)
}
