package model

// BaseModel carries the fields the flat-file store generates for every
// record. Timestamps are RFC3339Nano strings as persisted.
type BaseModel struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
