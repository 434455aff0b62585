package models

// Permission mirrors one record of the backend permission API. The
// capability set for a session is the Name of every record where Active is
// true; names are unique within one response.
type Permission struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
