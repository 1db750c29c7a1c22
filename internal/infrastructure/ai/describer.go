package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"
)

// Describer turns case photos plus the claimant's words into the neutral,
// standardized damage description that gets embedded.
type Describer struct {
	client *Client
	model  string
}

var _ interfaces.IDescriptionGenerator = (*Describer)(nil)

func NewDescriber(client *Client, model string) *Describer {
	return &Describer{client: client, model: model}
}

func (d *Describer) Describe(ctx context.Context, images []entities.CaseImage, userDescription string) (string, error) {
	if len(images) == 0 {
		return "", errors.New("describe: no images")
	}
	parts := append(imageParts(images), textPart("USER DESCRIPTION: "+userDescription))

	text, err := d.client.complete(ctx, d.model, descriptionSystemPrompt, parts)
	if err != nil {
		return "", fmt.Errorf("describe: %w", err)
	}
	if text == "" {
		return "", fmt.Errorf("describe: %w", ErrEmptyCompletion)
	}
	log.Printf("[ai][describer] description generated images=%d chars=%d", len(images), len(text))
	return text, nil
}

// ProductIdentifier names the product shown in a single downloaded image.
type ProductIdentifier struct {
	client *Client
	model  string
}

var _ interfaces.IProductIdentifier = (*ProductIdentifier)(nil)

func NewProductIdentifier(client *Client, model string) *ProductIdentifier {
	return &ProductIdentifier{client: client, model: model}
}

func (p *ProductIdentifier) IdentifyProduct(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	if len(imageData) == 0 {
		return "", errors.New("identify product: empty image")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	parts := []contentPart{
		{Type: "image_url", ImageURL: &imageURL{URL: dataURL(mimeType, imageData)}},
		textPart("Which product is shown in this photo?"),
	}
	name, err := p.client.complete(ctx, p.model, productSystemPrompt, parts)
	if err != nil {
		return "", fmt.Errorf("identify product: %w", err)
	}
	return name, nil
}
