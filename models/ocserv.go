package models

// OcservUser represents a vpn account
type OcservUser struct {
	Raw `json:"-" yaml:"-"`

	ID          int    `json:"id,omitempty" yaml:"id,omitempty"`
	Group       any    `json:"group,omitempty" yaml:"group,omitempty"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password,omitempty" yaml:"password,omitempty"`
	Active      bool   `json:"active" yaml:"active"`
	CreateDate  string `json:"create,omitempty" yaml:"create,omitempty"`
	ExpireDate  string `json:"expire_date,omitempty" yaml:"expire_date,omitempty"`
	Description string `json:"desc,omitempty" yaml:"desc,omitempty"`
	Traffic     any    `json:"traffic" yaml:"traffic"`
	DefaultTraf any    `json:"default_traffic" yaml:"default_traffic"`
	Rx          any    `json:"rx" yaml:"rx"`
	Tx          any    `json:"tx" yaml:"tx"`
	Online      bool   `json:"online" yaml:"online"`
}

// UserPagination is one page of vpn accounts
type UserPagination struct {
	Raw `json:"-" yaml:"-"`

	Page   int          `json:"page" yaml:"page"`
	Pages  int          `json:"pages" yaml:"pages"`
	Total  int          `json:"total" yaml:"total"`
	Result []OcservUser `json:"result" yaml:"result"`
}

// OcservGroup represents a vpn group and its ocserv settings
type OcservGroup struct {
	Raw `json:"-" yaml:"-"`

	ID          int            `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"desc,omitempty" yaml:"desc,omitempty"`
	Configs     map[string]any `json:"configs,omitempty" yaml:"configs,omitempty"`
}

// GroupPagination is one page of vpn groups
type GroupPagination struct {
	Raw `json:"-" yaml:"-"`

	Page   int           `json:"page" yaml:"page"`
	Pages  int           `json:"pages" yaml:"pages"`
	Total  int           `json:"total" yaml:"total"`
	Result []OcservGroup `json:"result" yaml:"result"`
}
