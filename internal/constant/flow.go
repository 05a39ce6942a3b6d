package constant

// Flow is one of the fixed UX-process phase buckets every uploaded image is
// assigned to. The set is not user-extensible.
type Flow string

const (
	FlowResearch       Flow = "research"
	FlowIdeation       Flow = "ideation"
	FlowDesign         Flow = "design"
	FlowTesting        Flow = "testing"
	FlowImplementation Flow = "implementation"
	FlowResults        Flow = "results"
	FlowScreens        Flow = "screens"
	FlowProcess        Flow = "process"
)

// FlowOrder is the display order of the gallery flow buckets.
var FlowOrder = []Flow{
	FlowResearch,
	FlowIdeation,
	FlowDesign,
	FlowTesting,
	FlowImplementation,
	FlowResults,
	FlowScreens,
	FlowProcess,
}

func IsValidFlow(f Flow) bool {
	for _, known := range FlowOrder {
		if f == known {
			return true
		}
	}

	return false
}
