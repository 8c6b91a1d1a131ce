package models

// Status represents the booking availability of a trip listing
type Status string

const (
	StatusAvailable   Status = "available"
	StatusFull        Status = "full"
	StatusClosed      Status = "closed"
	StatusUnspecified Status = "unspecified"
)

// statusTokens maps the raw spreadsheet values onto a Status.
// The sheet historically used open/close, later rows use the full words.
var statusTokens = map[string]Status{
	"open":      StatusAvailable,
	"available": StatusAvailable,
	"full":      StatusFull,
	"close":     StatusClosed,
	"closed":    StatusClosed,
}

// ParseStatus converts a raw cell into a Status.
// Anything not exactly matching a known token is StatusUnspecified.
func ParseStatus(raw string) Status {
	if s, ok := statusTokens[raw]; ok {
		return s
	}
	return StatusUnspecified
}

// Rank orders statuses for display: available < full < closed < unspecified
func (s Status) Rank() int {
	switch s {
	case StatusAvailable:
		return 0
	case StatusFull:
		return 1
	case StatusClosed:
		return 2
	default:
		return 3
	}
}

// Label returns the short label shown on listing cards
func (s Status) Label() string {
	switch s {
	case StatusAvailable:
		return "空きあり"
	case StatusFull:
		return "満船"
	case StatusClosed:
		return "休船"
	default:
		return "-"
	}
}

// AllStatuses lists every status in rank order
func AllStatuses() []Status {
	return []Status{StatusAvailable, StatusFull, StatusClosed, StatusUnspecified}
}
