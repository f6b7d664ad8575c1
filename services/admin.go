package services

import (
	"net/http"

	"github.com/ocserv-admin/ocservctl/models"
)

const adminBase = "/admin/"

// AdminServiceApi - admin configuration, session and dashboard endpoints
type AdminServiceApi struct {
	s *Services
}

// Config returns the bootstrap configuration
func (a *AdminServiceApi) Config() (models.Config, error) {
	return request[models.Config](a.s, http.MethodGet, adminBase, "config/", nil)
}

// Login exchanges admin credentials for a token
func (a *AdminServiceApi) Login(data models.AdminLogin) (models.LoginResponse, error) {
	return request[models.LoginResponse](a.s, http.MethodPost, adminBase, "login/", data)
}

// Logout ends the current session on the server
func (a *AdminServiceApi) Logout() error {
	_, err := request[any](a.s, http.MethodDelete, adminBase, "logout/", nil)
	return err
}

// CreateConfigs creates the initial admin configuration
func (a *AdminServiceApi) CreateConfigs(data any) (models.Config, error) {
	return request[models.Config](a.s, http.MethodPost, adminBase, "create/", data)
}

// PatchConfiguration updates the admin configuration, the response body is discarded
func (a *AdminServiceApi) PatchConfiguration(data any) error {
	_, err := request[any](a.s, http.MethodPatch, adminBase, "configuration/", data)
	return err
}

// GetConfiguration returns the admin configuration
func (a *AdminServiceApi) GetConfiguration() (models.AdminConfig, error) {
	return request[models.AdminConfig](a.s, http.MethodGet, adminBase, "configuration/", nil)
}

// Dashboard returns the dashboard summary
func (a *AdminServiceApi) Dashboard() (models.Dashboard, error) {
	return request[models.Dashboard](a.s, http.MethodGet, adminBase, "dashboard/", nil)
}
