package request

import (
	"damage_triage/internal/domain/entities"
	"strings"
)

const DefaultCaseCategory = "uncategorized"

type CaseImageRequest struct {
	ImageID   string `json:"imageId"`
	PublicURL string `json:"publicUrl" binding:"required"`
}

// CaseRequest is the submission payload of the upload form and the benchmark
// harness. SaveToDB is a pointer so that an absent field means true.
type CaseRequest struct {
	Description string             `json:"description" binding:"required"`
	Category    string             `json:"category"`
	CaseImages  []CaseImageRequest `json:"case_images" binding:"required,min=1,dive"`
	SaveToDB    *bool              `json:"saveToDb"`
}

func (r CaseRequest) ToCase() entities.Case {
	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = DefaultCaseCategory
	}
	save := true
	if r.SaveToDB != nil {
		save = *r.SaveToDB
	}

	images := make([]entities.CaseImage, 0, len(r.CaseImages))
	for _, img := range r.CaseImages {
		images = append(images, entities.CaseImage{
			ImageID:   strings.TrimSpace(img.ImageID),
			PublicURL: strings.TrimSpace(img.PublicURL),
		})
	}

	return entities.Case{
		Description: strings.TrimSpace(r.Description),
		Category:    category,
		CaseImages:  images,
		CaseStatus:  entities.CaseStatusCreated,
		SaveToDB:    save,
	}
}

// CaseStatusRequest is the reviewer decision on a case.
type CaseStatusRequest struct {
	CaseStatus string `json:"case_status" binding:"required"`
}

func (r CaseStatusRequest) ResolveStatus() entities.CaseStatus {
	return entities.CaseStatus(strings.ToLower(strings.TrimSpace(r.CaseStatus)))
}
