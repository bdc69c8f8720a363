package resourceform

import (
	"resource-form/internal/domain/resource"
	"resource-form/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Payload is the flattened draft sent to the echo endpoint.
type Payload struct {
	Action              resource.Action    `json:"action"`
	ResourceName        string             `json:"resourceName" copier:"Name"`
	ResourceDescription string             `json:"resourceDescription" copier:"Description"`
	ResourceAvailable   bool               `json:"resourceAvailable" copier:"Available"`
	ResourcePrice       float64            `json:"resourcePrice" copier:"Price"`
	ResourcePriceUnit   resource.PriceUnit `json:"resourcePriceUnit" copier:"PriceUnit"`
}

func NewPayload(action resource.Action, draft resource.Draft) (Payload, error) {
	var p Payload
	if err := copier.Copy(&p, &draft); err != nil {
		return Payload{}, errs.Wrap(err, "failed to build submission payload")
	}
	p.Action = action
	return p, nil
}
