//go:build unit || e2e

package builder

import (
	"net/url"

	reqdto "resource-form/internal/handler/dto/request"
	"resource-form/internal/usecase/resourceform"
)

type ResourceFormBuilder struct {
	Name        string
	Description string
	Available   bool
	Price       string
	PriceUnit   string
	Action      string
}

func NewResourceFormBuilder() *ResourceFormBuilder {
	return &ResourceFormBuilder{
		Name:        "Meeting Room A",
		Description: "Bright room with a view",
		Available:   true,
		Price:       "12.5",
		PriceUnit:   "hour",
		Action:      "create",
	}
}

func (b *ResourceFormBuilder) With(mutate func(*ResourceFormBuilder)) *ResourceFormBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ResourceFormBuilder) BuildInput() resourceform.Input {
	name := b.Name
	description := b.Description
	available := b.Available
	price := b.Price
	unit := b.PriceUnit
	return resourceform.Input{
		Name:        &name,
		Description: &description,
		Available:   &available,
		Price:       &price,
		PriceUnit:   &unit,
	}
}

func (b *ResourceFormBuilder) BuildSubmitRequestDTO() reqdto.SubmitResourceFormRequest {
	return reqdto.SubmitResourceFormRequest{
		ResourceFormFieldsRequest: b.BuildFieldsRequestDTO(),
		Action:                    b.Action,
	}
}

func (b *ResourceFormBuilder) BuildFieldsRequestDTO() reqdto.ResourceFormFieldsRequest {
	name := b.Name
	description := b.Description
	available := b.Available
	price := b.Price
	unit := b.PriceUnit
	return reqdto.ResourceFormFieldsRequest{
		ResourceName:        &name,
		ResourceDescription: &description,
		ResourceAvailable:   &available,
		ResourcePrice:       &price,
		ResourcePriceUnit:   &unit,
	}
}

// BuildFormValues mirrors what the browser posts: an unchecked checkbox is omitted.
func (b *ResourceFormBuilder) BuildFormValues() url.Values {
	v := url.Values{}
	v.Set("resourceName", b.Name)
	v.Set("resourceDescription", b.Description)
	if b.Available {
		v.Set("resourceAvailable", "on")
	}
	v.Set("resourcePrice", b.Price)
	v.Set("resourcePriceUnit", b.PriceUnit)
	if b.Action != "" {
		v.Set("action", b.Action)
	}
	return v
}

// Fluent builder methods
func (b *ResourceFormBuilder) WithName(name string) *ResourceFormBuilder {
	b.Name = name
	return b
}

func (b *ResourceFormBuilder) WithDescription(description string) *ResourceFormBuilder {
	b.Description = description
	return b
}

func (b *ResourceFormBuilder) WithAvailable(available bool) *ResourceFormBuilder {
	b.Available = available
	return b
}

func (b *ResourceFormBuilder) WithPrice(price string) *ResourceFormBuilder {
	b.Price = price
	return b
}

func (b *ResourceFormBuilder) WithPriceUnit(unit string) *ResourceFormBuilder {
	b.PriceUnit = unit
	return b
}

func (b *ResourceFormBuilder) WithAction(action string) *ResourceFormBuilder {
	b.Action = action
	return b
}

func (b *ResourceFormBuilder) AsInvalid() *ResourceFormBuilder {
	b.Name = "AB"
	return b
}

func (b *ResourceFormBuilder) AsEmpty() *ResourceFormBuilder {
	b.Name = ""
	b.Description = ""
	return b
}
