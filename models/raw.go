package models

import "encoding/json"

// Raw keeps the response body a payload was decoded from, so fields this
// client does not model are not lost
type Raw struct {
	body json.RawMessage
}

// SetRaw - stores a copy of body
func (r *Raw) SetRaw(body []byte) {
	r.body = append(json.RawMessage(nil), body...)
}

// Body returns the body as received, nil when the payload was built locally
func (r Raw) Body() json.RawMessage {
	return r.body
}
