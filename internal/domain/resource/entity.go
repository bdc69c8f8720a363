package resource

import "strings"

// Draft is the resource as currently entered in the form. It is never stored.
type Draft struct {
	Name        string
	Description string
	Available   bool
	Price       float64
	PriceUnit   PriceUnit
}

func NewDraft(name, description string, available bool, rawPrice, rawUnit string) Draft {
	return Draft{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Available:   available,
		Price:       ParsePrice(rawPrice),
		PriceUnit:   ParsePriceUnit(rawUnit),
	}
}
