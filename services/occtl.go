package services

import (
	"net/http"
	"net/url"

	"github.com/ocserv-admin/ocservctl/models"
)

const occtlBase = "/occtl/"

// OcctlServiceApi - server control endpoints
type OcctlServiceApi struct {
	s *Services
}

// Command runs the occtl command name with args on the server
func (o *OcctlServiceApi) Command(name, args string) (models.Occtl, error) {
	path := "command/" + url.PathEscape(name) + "/?args=" + url.QueryEscape(args)
	return request[models.Occtl](o.s, http.MethodGet, occtlBase, path, nil)
}

// Reload reloads the ocserv configuration
func (o *OcctlServiceApi) Reload() error {
	_, err := request[any](o.s, http.MethodGet, occtlBase, "reload/", nil)
	return err
}
