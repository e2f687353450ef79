package stats

import "blogapi.app/internal/ports"

// PostStats holds the counters kept for one post
type PostStats struct {
	ID            string `json:"id,omitempty"`
	PostID        string `json:"post"`
	ViewsTotal    int64  `json:"views_total"`
	CommentsTotal int64  `json:"comments_total"`
}

// HasRecord reports whether the stats are backed by a stored record.
// Defaults returned on backend failure have no record.
func (s PostStats) HasRecord() bool {
	return s.ID != ""
}

// DefaultStats returns zero counters for a post
func DefaultStats(postID string) PostStats {
	return PostStats{PostID: postID}
}

func fromPorts(d *ports.PostStatsData) PostStats {
	return PostStats{
		ID:            d.ID,
		PostID:        d.PostID,
		ViewsTotal:    d.ViewsTotal,
		CommentsTotal: d.CommentsTotal,
	}
}

// StatField is a sortable counter
type StatField int

const (
	StatFieldUnknown StatField = iota
	StatFieldViews
	StatFieldComments
)

// String returns the record field name
func (f StatField) String() string {
	switch f {
	case StatFieldViews:
		return "views_total"
	case StatFieldComments:
		return "comments_total"
	default:
		return "unknown"
	}
}

// IsValid checks if the field can be sorted on
func (f StatField) IsValid() bool {
	return f == StatFieldViews || f == StatFieldComments
}

// StatFieldFromString converts a record field name to StatField
func StatFieldFromString(s string) StatField {
	switch s {
	case "views_total":
		return StatFieldViews
	case "comments_total":
		return StatFieldComments
	default:
		return StatFieldUnknown
	}
}
