package services

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/ocserv-admin/ocservctl/models"
)

const groupsBase = "/groups/"

// OcservGroupApi - vpn group endpoints
type OcservGroupApi struct {
	s *Services
}

// Groups lists vpn groups, filtered by args when it is not empty
func (g *OcservGroupApi) Groups(args string) (models.GroupPagination, error) {
	path := ""
	if args != "" {
		path = "?args=" + url.QueryEscape(args)
	}
	return request[models.GroupPagination](g.s, http.MethodGet, groupsBase, path, nil)
}

// CreateGroup creates a vpn group, data is sent as is
func (g *OcservGroupApi) CreateGroup(data any) (models.OcservGroup, error) {
	return request[models.OcservGroup](g.s, http.MethodPost, groupsBase, "", data)
}

// UpdateGroup patches the vpn group pk. Pass a map to send only the
// fields being changed.
func (g *OcservGroupApi) UpdateGroup(pk int, data any) (models.OcservGroup, error) {
	return request[models.OcservGroup](g.s, http.MethodPatch, groupsBase, strconv.Itoa(pk)+"/", data)
}

// DeleteGroup removes the vpn group pk
func (g *OcservGroupApi) DeleteGroup(pk int) (models.OcservGroup, error) {
	return request[models.OcservGroup](g.s, http.MethodDelete, groupsBase, strconv.Itoa(pk)+"/", nil)
}
