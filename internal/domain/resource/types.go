package resource

import "resource-form/internal/pkg/errs"

var (
	ErrEmptyName          = errs.New("resource name cannot be empty")
	ErrNameLength         = errs.New("resource name must be between 5 and 30 characters")
	ErrNameCharacters     = errs.New("resource name may only contain letters, digits and spaces")
	ErrEmptyDescription   = errs.New("resource description cannot be empty")
	ErrDescriptionLength  = errs.New("resource description must be between 10 and 50 characters")
	ErrDescriptionCharset = errs.New("resource description contains characters that are not allowed")

	ErrUnknownRole = errs.New("unknown role")
)

type FieldState string

const (
	FieldNeutral FieldState = "neutral"
	FieldValid   FieldState = "valid"
	FieldInvalid FieldState = "invalid"
)

type PriceUnit string

const (
	PriceUnitHour  PriceUnit = "hour"
	PriceUnitDay   PriceUnit = "day"
	PriceUnitWeek  PriceUnit = "week"
	PriceUnitMonth PriceUnit = "month"
)

var PriceUnits = []PriceUnit{PriceUnitHour, PriceUnitDay, PriceUnitWeek, PriceUnitMonth}

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Role string

const (
	RoleReserver Role = "reserver"
	RoleAdmin    Role = "admin"
)
