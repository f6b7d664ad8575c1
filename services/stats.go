package services

import (
	"net/http"

	"github.com/ocserv-admin/ocservctl/models"
)

const statsBase = "/stats/"

// StatsServiceApi - statistics endpoint
type StatsServiceApi struct {
	s *Services
}

// GetStats returns a statistics snapshot
func (st *StatsServiceApi) GetStats() (models.Stats, error) {
	return request[models.Stats](st.s, http.MethodGet, statsBase, "", nil)
}
