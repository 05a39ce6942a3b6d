package uxflow

import "strings"

// Flow is a UX-process phase bucket. Mirrors internal/constant.Flow; kept as
// a plain string here so the package stays dependency-free.
const (
	FlowResearch       = "research"
	FlowIdeation       = "ideation"
	FlowDesign         = "design"
	FlowTesting        = "testing"
	FlowImplementation = "implementation"
	FlowResults        = "results"
	FlowScreens        = "screens"
	FlowProcess        = "process"
)

// Classification is the result of classifying one uploaded file name.
type Classification struct {
	Flow            string   `json:"flow"`
	Tags            []string `json:"tags"`
	Deliverable     string   `json:"deliverable"`
	DeliverableName string   `json:"deliverableName"`
}

type deliverable struct {
	key      string
	name     string
	flow     string
	tags     []string
	keywords []string
}

// deliverables is checked first, in priority order; the first keyword hit
// wins. Order is the tie-break when a file name contains several keywords.
var deliverables = []deliverable{
	{
		key:      "user-research",
		name:     "User Research",
		flow:     FlowResearch,
		tags:     []string{"user-research", "interviews"},
		keywords: []string{"user-research", "user research", "interview", "survey"},
	},
	{
		key:      "personas",
		name:     "Personas",
		flow:     FlowResearch,
		tags:     []string{"personas", "user-research"},
		keywords: []string{"persona"},
	},
	{
		key:      "user-journey",
		name:     "User Journey Map",
		flow:     FlowResearch,
		tags:     []string{"user-journey", "journey-map"},
		keywords: []string{"user-journey", "journey-map", "journey map"},
	},
	{
		key:      "competitive-analysis",
		name:     "Competitive Analysis",
		flow:     FlowResearch,
		tags:     []string{"competitive-analysis", "market-research"},
		keywords: []string{"competitive", "competitor", "market-research"},
	},
	{
		key:      "wireframes",
		name:     "Wireframes",
		flow:     FlowIdeation,
		tags:     []string{"wireframes", "low-fidelity"},
		keywords: []string{"wireframe", "wire-frame", "lofi", "low-fi"},
	},
	{
		key:      "sketches",
		name:     "Sketches",
		flow:     FlowIdeation,
		tags:     []string{"sketches", "ideation"},
		keywords: []string{"sketch", "brainstorm", "crazy8", "crazy-8"},
	},
	{
		key:      "user-flows",
		name:     "User Flows",
		flow:     FlowIdeation,
		tags:     []string{"user-flows", "information-architecture"},
		keywords: []string{"user-flow", "userflow", "sitemap", "site-map", "information-architecture"},
	},
	{
		key:      "mockups",
		name:     "Mockups",
		flow:     FlowDesign,
		tags:     []string{"mockups", "high-fidelity"},
		keywords: []string{"mockup", "mock-up", "hifi", "high-fi", "visual-design"},
	},
	{
		key:      "design-system",
		name:     "Design System",
		flow:     FlowDesign,
		tags:     []string{"design-system", "components"},
		keywords: []string{"design-system", "design system", "style-guide", "styleguide", "component"},
	},
	{
		key:      "prototypes",
		name:     "Prototypes",
		flow:     FlowDesign,
		tags:     []string{"prototypes", "interaction-design"},
		keywords: []string{"prototype", "proto-"},
	},
	{
		key:      "usability-testing",
		name:     "Usability Testing",
		flow:     FlowTesting,
		tags:     []string{"usability-testing", "user-testing"},
		keywords: []string{"usability", "user-test", "usertest", "test-session"},
	},
	{
		key:      "ab-testing",
		name:     "A/B Testing",
		flow:     FlowTesting,
		tags:     []string{"ab-testing", "experiments"},
		keywords: []string{"ab-test", "a-b-test", "variant-"},
	},
	{
		key:      "dev-handoff",
		name:     "Developer Handoff",
		flow:     FlowImplementation,
		tags:     []string{"dev-handoff", "specs"},
		keywords: []string{"handoff", "hand-off", "redline", "red-line", "spec-"},
	},
	{
		key:      "metrics",
		name:     "Metrics & Impact",
		flow:     FlowResults,
		tags:     []string{"metrics", "impact"},
		keywords: []string{"metric", "analytics", "kpi", "conversion", "impact"},
	},
	{
		key:      "process",
		name:     "Process Overview",
		flow:     FlowProcess,
		tags:     []string{"process", "methodology"},
		keywords: []string{"process", "workflow", "timeline", "methodology"},
	},
}

// flowKeywords is the broad fallback checked only when no deliverable
// matched. Iteration order is fixed and doubles as the tie-break.
var flowKeywords = []struct {
	flow     string
	keywords []string
}{
	{FlowResearch, []string{"research", "discovery", "insight", "affinity"}},
	{FlowIdeation, []string{"ideation", "concept", "idea", "explore"}},
	{FlowDesign, []string{"design", "ui-", "visual", "branding", "typography"}},
	{FlowTesting, []string{"test", "validation", "feedback", "iteration"}},
	{FlowImplementation, []string{"implementation", "development", "build", "launch"}},
	{FlowResults, []string{"result", "outcome", "before-after", "growth"}},
	{FlowProcess, []string{"overview", "approach"}},
	{FlowScreens, []string{"screen", "final", "hero"}},
}

// Classify maps an uploaded file name to a flow, tag set and deliverable.
// Matching is case-insensitive substring containment against the deliverable
// table first, then the generic flow keyword table. Unmatched names fall back
// to the screens bucket. Pure function: same input, same output.
func Classify(filename string) Classification {
	name := strings.ToLower(filename)

	for _, d := range deliverables {
		for _, kw := range d.keywords {
			if strings.Contains(name, kw) {
				return Classification{
					Flow:            d.flow,
					Tags:            append([]string(nil), d.tags...),
					Deliverable:     d.key,
					DeliverableName: d.name,
				}
			}
		}
	}

	for _, fk := range flowKeywords {
		for _, kw := range fk.keywords {
			if strings.Contains(name, kw) {
				return Classification{
					Flow:            fk.flow,
					Tags:            []string{fk.flow, "ux-design"},
					Deliverable:     fk.flow,
					DeliverableName: strings.ToUpper(fk.flow[:1]) + fk.flow[1:],
				}
			}
		}
	}

	return Classification{
		Flow:            FlowScreens,
		Tags:            []string{"screenshots", "ux-design"},
		Deliverable:     "screenshots",
		DeliverableName: "Screenshots",
	}
}
