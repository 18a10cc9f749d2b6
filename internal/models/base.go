package models

// Variables represents an open JSON object for storing arbitrary
// per-tenant extension data alongside the typed fields of a record.
type Variables map[string]interface{}

// Copy returns a shallow copy, never nil.
func (v Variables) Copy() Variables {
	out := make(Variables, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
