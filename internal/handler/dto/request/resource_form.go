package request

import (
	"resource-form/internal/domain/resource"
	"resource-form/internal/usecase/resourceform"
)

type OpenResourceFormRequest struct {
	Role string `json:"role" binding:"omitempty,oneof=reserver admin"`
}

// ResourceFormFieldsRequest is a partial update: omitted fields keep their last value.
type ResourceFormFieldsRequest struct {
	ResourceName        *string `json:"resourceName"`
	ResourceDescription *string `json:"resourceDescription"`
	ResourceAvailable   *bool   `json:"resourceAvailable"`
	ResourcePrice       *string `json:"resourcePrice"`
	ResourcePriceUnit   *string `json:"resourcePriceUnit" binding:"omitempty,oneof=hour day week month"`
}

func (r *ResourceFormFieldsRequest) ToInput() resourceform.Input {
	return resourceform.Input{
		Name:        r.ResourceName,
		Description: r.ResourceDescription,
		Available:   r.ResourceAvailable,
		Price:       r.ResourcePrice,
		PriceUnit:   r.ResourcePriceUnit,
	}
}

type SubmitResourceFormRequest struct {
	ResourceFormFieldsRequest
	Action string `json:"action" binding:"omitempty,oneof=create update delete"`
}

func (r *SubmitResourceFormRequest) ToDomain() (resourceform.Input, resource.Action) {
	return r.ToInput(), resource.ParseAction(r.Action)
}

// ResourceFormValues is what the browser posts. Every field of the form is
// always present, except the checkbox which is omitted when unchecked.
type ResourceFormValues struct {
	ResourceName        string `form:"resourceName"`
	ResourceDescription string `form:"resourceDescription"`
	ResourceAvailable   string `form:"resourceAvailable"`
	ResourcePrice       string `form:"resourcePrice"`
	ResourcePriceUnit   string `form:"resourcePriceUnit"`
	Action              string `form:"action"`
}

func (v *ResourceFormValues) ToInput() resourceform.Input {
	available := v.ResourceAvailable != ""
	in := resourceform.Input{
		Name:        &v.ResourceName,
		Description: &v.ResourceDescription,
		Available:   &available,
		Price:       &v.ResourcePrice,
	}
	if v.ResourcePriceUnit != "" {
		in.PriceUnit = &v.ResourcePriceUnit
	}
	return in
}
