package models

// CoachRequest for POST /api/v1/coach
type CoachRequest struct {
	Goal    string  `json:"goal"`
	Module  *string `json:"module,omitempty"`
	Timeout int     `json:"timeout"` // seconds
}

func (r *CoachRequest) SetDefaults() {
	if r.Timeout == 0 {
		r.Timeout = 120
	}
	if r.Timeout < 10 {
		r.Timeout = 10
	}
	if r.Timeout > 600 {
		r.Timeout = 600
	}
}
