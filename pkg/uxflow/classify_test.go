package uxflow

import (
	"reflect"
	"testing"
)

func TestClassifyDeliverableTable(t *testing.T) {
	tests := []struct {
		name            string
		filename        string
		wantFlow        string
		wantDeliverable string
		wantTag         string
	}{
		{"User research interview", "user-research-interview-01.png", FlowResearch, "user-research", "interviews"},
		{"Wireframe", "wireframe-checkout-flow.png", FlowIdeation, "wireframes", "wireframes"},
		{"Usability testing", "usability-testing-session-2.jpg", FlowTesting, "usability-testing", "user-testing"},
		{"Persona", "Persona_Anna_Final.PNG", FlowResearch, "personas", "personas"},
		{"Design system", "design-system-buttons.png", FlowDesign, "design-system", "components"},
		{"Handoff", "dev-handoff-specs.png", FlowImplementation, "dev-handoff", "specs"},
		{"Metrics", "conversion-funnel-q3.png", FlowResults, "metrics", "impact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.filename)
			if got.Flow != tt.wantFlow {
				t.Errorf("Classify(%q).Flow = %q, want %q", tt.filename, got.Flow, tt.wantFlow)
			}
			if got.Deliverable != tt.wantDeliverable {
				t.Errorf("Classify(%q).Deliverable = %q, want %q", tt.filename, got.Deliverable, tt.wantDeliverable)
			}
			if !containsTag(got.Tags, tt.wantTag) {
				t.Errorf("Classify(%q).Tags = %v, want to contain %q", tt.filename, got.Tags, tt.wantTag)
			}
		})
	}
}

func TestClassifyFlowKeywordFallback(t *testing.T) {
	got := Classify("discovery-phase-notes.png")
	if got.Flow != FlowResearch {
		t.Errorf("Flow = %q, want %q", got.Flow, FlowResearch)
	}
	if got.Deliverable != FlowResearch {
		t.Errorf("Deliverable = %q, want generic %q", got.Deliverable, FlowResearch)
	}
}

func TestClassifyDefault(t *testing.T) {
	got := Classify("IMG_4021.png")

	if got.Flow != FlowScreens {
		t.Errorf("Flow = %q, want %q", got.Flow, FlowScreens)
	}
	if got.Deliverable != "screenshots" {
		t.Errorf("Deliverable = %q, want screenshots", got.Deliverable)
	}
	if !reflect.DeepEqual(got.Tags, []string{"screenshots", "ux-design"}) {
		t.Errorf("Tags = %v", got.Tags)
	}
}

// Deliverable keywords always beat the broader flow keyword table, even when
// the file name contains keywords from both.
func TestClassifyDeliverablePriority(t *testing.T) {
	got := Classify("usability-testing-final-screen.png")
	if got.Flow != FlowTesting || got.Deliverable != "usability-testing" {
		t.Errorf("Classify() = %+v, want usability-testing deliverable", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	lower := Classify("wireframe-home.png")
	upper := Classify("WIREFRAME-HOME.PNG")

	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("Case sensitivity detected: %+v vs %+v", lower, upper)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := Classify("sketch-session-crazy8.jpg")
	second := Classify("sketch-session-crazy8.jpg")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify() not deterministic: %+v vs %+v", first, second)
	}
}

func containsTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
