package domain

import "strings"

type StatusPresentation struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// PresentStatus maps a status to its badge. Unknown statuses get the muted
// style with a clock icon.
func PresentStatus(s Status) StatusPresentation {
	p := StatusPresentation{
		Label: strings.ToUpper(strings.Replace(string(s), "_", " ", 1)),
		Color: "muted",
		Icon:  "clock",
	}

	switch s {
	case OrderStatusCompleted:
		p.Color = "success"
		p.Icon = "check-circle"
	case OrderStatusInProgress:
		p.Color = "warning"
		p.Icon = "clock"
	case OrderStatusPending:
		p.Color = "destructive"
		p.Icon = "alert-circle"
	}

	return p
}
