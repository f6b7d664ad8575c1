// Package functions implements the operations run by the ocservctl commands
package functions

import (
	"net/http"

	"github.com/devilcove/httpclient"
	"github.com/gravitl/netmaker/logger"
	"github.com/ocserv-admin/ocservctl/config"
	"github.com/ocserv-admin/ocservctl/services"
	"github.com/ocserv-admin/ocservctl/state"
)

// Tokens is the token store shared by every command
var Tokens *config.TokenFile

// NewClient - builds the api client from the loaded configuration
func NewClient() *services.Client {
	cfg := config.Current
	httpclient.Client.Timeout = cfg.RequestTimeout()
	if Tokens == nil || Tokens.Path() != cfg.TokenFile {
		Tokens = config.NewTokenFile(cfg.TokenFile)
	}
	logger.Log(3, "using api", cfg.API)
	return services.NewClient(services.Options{
		API:        cfg.API,
		AuthScheme: cfg.AuthScheme,
		Store:      state.NewTerminal(nil),
		Tokens:     Tokens,
		Navigator:  state.NewRedirect(nil),
	})
}

// recovered reports whether the last call was answered with a validation or
// permission error that has already been shown to the user
func recovered(c *services.Client) bool {
	status := c.Status()
	return status == http.StatusBadRequest || status == http.StatusForbidden
}
