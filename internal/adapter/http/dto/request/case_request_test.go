package request

import (
	"testing"

	"damage_triage/internal/domain/entities"
)

func TestCaseRequest_ToCase(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := CaseRequest{
			Description: "  scratched the door  ",
			CaseImages:  []CaseImageRequest{{ImageID: "img-1", PublicURL: " https://cdn/1.jpg "}},
		}.ToCase()

		if !c.SaveToDB {
			t.Fatalf("saveToDb must default to true")
		}
		if c.Category != DefaultCaseCategory || c.CaseStatus != entities.CaseStatusCreated {
			t.Fatalf("unexpected defaults: %+v", c)
		}
		if c.Description != "scratched the door" || c.CaseImages[0].PublicURL != "https://cdn/1.jpg" {
			t.Fatalf("values not trimmed: %+v", c)
		}
	})

	t.Run("explicit false", func(t *testing.T) {
		save := false
		c := CaseRequest{Description: "x", Category: "motor", SaveToDB: &save}.ToCase()
		if c.SaveToDB || c.Category != "motor" {
			t.Fatalf("unexpected case: %+v", c)
		}
	})

	t.Run("image order is kept", func(t *testing.T) {
		c := CaseRequest{Description: "x", CaseImages: []CaseImageRequest{
			{ImageID: "b", PublicURL: "https://cdn/b.jpg"},
			{ImageID: "a", PublicURL: "https://cdn/a.jpg"},
		}}.ToCase()
		if c.CaseImages[0].ImageID != "b" || c.CaseImages[1].ImageID != "a" {
			t.Fatalf("cover image must stay first: %+v", c.CaseImages)
		}
	})
}

func TestCaseStatusRequest_ResolveStatus(t *testing.T) {
	if got := (CaseStatusRequest{CaseStatus: " Approved "}).ResolveStatus(); got != entities.CaseStatusApproved {
		t.Fatalf("expected approved, got %q", got)
	}
}
