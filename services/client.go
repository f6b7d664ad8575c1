package services

// Client bundles the resource clients sharing one dispatcher
type Client struct {
	*Services
	Admin  *AdminServiceApi
	Users  *OcservUserApi
	Groups *OcservGroupApi
	Occtl  *OcctlServiceApi
	Stats  *StatsServiceApi
}

// NewClient returns the resource clients for the api described by opts
func NewClient(opts Options) *Client {
	s := New(opts)
	return &Client{
		Services: s,
		Admin:    &AdminServiceApi{s: s},
		Users:    &OcservUserApi{s: s},
		Groups:   &OcservGroupApi{s: s},
		Occtl:    &OcctlServiceApi{s: s},
		Stats:    &StatsServiceApi{s: s},
	}
}
