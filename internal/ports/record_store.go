package ports

import "context"

// Record is a raw backend record as decoded from JSON
type Record map[string]interface{}

// String returns the string value stored under key, or "" when missing or not a string
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Int returns the integer value stored under key. JSON numbers decode as float64.
func (r Record) Int(key string) int64 {
	switch v := r[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

// ListQuery holds list parameters understood by the backend
type ListQuery struct {
	Filter  string
	Sort    string
	Fields  string
	Page    int
	PerPage int
}

// ListResult represents one page of records
type ListResult struct {
	Items      []Record
	TotalItems int
}

// RecordStore defines the contract for the backend record store.
// A non-2xx response or transport failure is returned as an error.
type RecordStore interface {
	List(ctx context.Context, collection string, query ListQuery) (*ListResult, error)
	Create(ctx context.Context, collection string, payload map[string]interface{}) (Record, error)
	Patch(ctx context.Context, collection, id string, payload map[string]interface{}) (Record, error)
}
