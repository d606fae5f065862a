package types

import "time"

// Alert is a transient notice reporting the outcome of an action
type Alert struct {
	Level   AlertLevel
	Message string
	Expires time.Time
}

// AlertLevel indicates the severity of an alert
type AlertLevel int

const (
	AlertNeutral AlertLevel = iota
	AlertSuccess
	AlertError
)

// String returns the string representation of the alert level
func (l AlertLevel) String() string {
	switch l {
	case AlertSuccess:
		return "success"
	case AlertError:
		return "error"
	default:
		return "neutral"
	}
}
