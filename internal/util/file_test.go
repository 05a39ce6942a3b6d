package util

import (
	"strings"
	"testing"
)

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"Dashes become spaces", "user-research-interview-01.png", "user research interview 01"},
		{"Underscores become spaces", "final_mockup_v2.jpg", "final mockup v2"},
		{"Mixed separators collapse", "a--b__c.png", "a b c"},
		{"Directory is stripped", "img/wireframe-checkout.png", "wireframe checkout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanFileName(tt.fileName); got != tt.want {
				t.Errorf("CleanFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVariantFileName(t *testing.T) {
	got, err := VariantFileName("Wireframe Checkout.PNG", "thumbnail")
	if err != nil {
		t.Fatalf("VariantFileName() error = %v", err)
	}

	if !strings.HasPrefix(got, "wireframe-checkout-") {
		t.Errorf("Expected slugified base prefix, got %s", got)
	}
	if !strings.HasSuffix(got, "-thumbnail.jpg") {
		t.Errorf("Expected size suffix and jpg extension, got %s", got)
	}
}

func TestVariantFileNameEmptyBase(t *testing.T) {
	got, err := VariantFileName("....png", "full")
	if err != nil {
		t.Fatalf("VariantFileName() error = %v", err)
	}

	if !strings.HasPrefix(got, "image-") {
		t.Errorf("Expected fallback base name, got %s", got)
	}
}
