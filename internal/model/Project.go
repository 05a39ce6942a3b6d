package model

import (
	"github.com/sovanra/uxfolio/internal/constant"
)

// FlowPrivacy gates a single flow behind the NDA check even when the parent
// project is public.
type FlowPrivacy struct {
	NdaRequired bool `json:"ndaRequired"`
}

type Project struct {
	BaseModel
	Title       string                 `json:"title" form:"title" binding:"required,strNotEmpty,cmax=100"`
	Slug        string                 `json:"slug" form:"slug"`
	Description string                 `json:"description" form:"description"`
	Status      constant.ProjectStatus `json:"status" form:"status"`
	NdaRequired bool                   `json:"ndaRequired" form:"ndaRequired"`
	// NdaCode pins the project to one specific access code. Null means any
	// valid code from the table unlocks it.
	NdaCode     *string                `json:"ndaCode" form:"ndaCode"`
	FlowPrivacy map[string]FlowPrivacy `json:"flowPrivacy"`
}

func (p Project) IsPublished() bool {
	return p.Status == constant.ProjectStatusPublished
}

// FlowNeedsNda reports whether the given flow is NDA-gated on top of the
// project-level gate.
func (p Project) FlowNeedsNda(flow constant.Flow) bool {
	fp, ok := p.FlowPrivacy[string(flow)]
	return ok && fp.NdaRequired
}
