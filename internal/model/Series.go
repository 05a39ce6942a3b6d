package model

// SeriesImage is one entry in a series' explicit ordering.
type SeriesImage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Optimized   bool   `json:"optimized"`
	AiGenerated bool   `json:"aiGenerated"`
}

// Series is an ordered, named sub-grouping of a project's images used by the
// publish-to-case-study workflow. Ordering is append-only via the Order field.
type Series struct {
	BaseModel
	ProjectID   string        `json:"projectId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	FlowType    string        `json:"flowType"`
	Images      []SeriesImage `json:"images"`
}
