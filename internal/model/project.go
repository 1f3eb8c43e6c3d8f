package model

import "time"

// DateLayout is the wire format for every stored calendar date.
const DateLayout = "2006-01-02"

// Project is a tracked initiative. ID is zero until the store assigns it on
// insert; CreatedAt is opaque store-assigned text, only ever ordered on.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	Status      ProjectStatus `json:"status"`
	Budget      float64       `json:"budget"`
	TeamSize    int           `json:"team_size"`
	CreatedAt   string        `json:"created_at"`
}

// ToMap renders the project as a plain key-value mapping for display and
// logging. Dates render as YYYY-MM-DD; a missing end date renders as nil,
// never as an empty string.
func (p *Project) ToMap() map[string]any {
	var id any
	if p.ID != 0 {
		id = p.ID
	}
	var end any
	if p.EndDate != nil {
		end = p.EndDate.Format(DateLayout)
	}
	return map[string]any{
		"id":          id,
		"name":        p.Name,
		"description": p.Description,
		"start_date":  p.StartDate.Format(DateLayout),
		"end_date":    end,
		"status":      p.Status.Label(),
		"budget":      p.Budget,
		"team_size":   p.TeamSize,
	}
}
