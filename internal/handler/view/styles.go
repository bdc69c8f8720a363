package view

import (
	"resource-form/internal/domain/resource"
	"resource-form/internal/usecase/resourceform"
)

const (
	buttonBaseClasses     = "w-full rounded-2xl px-6 py-3 text-sm font-semibold transition-all duration-200 ease-out"
	buttonSkinClasses     = "bg-brand-primary text-white shadow-soft"
	buttonHoverClasses    = "hover:bg-brand-dark/80"
	buttonDisabledClasses = "cursor-not-allowed opacity-50"

	inputBaseClasses    = "mt-2 w-full rounded-2xl border border-black/10 bg-white px-4 py-3 text-sm outline-none focus:ring-2 transition-all duration-200 ease-out"
	inputNeutralClasses = "focus:border-brand-blue focus:ring-brand-blue/30"
	inputValidClasses   = "border-green-500 bg-green-100 focus:ring-green-500/30"
	inputInvalidClasses = "border-red-500 bg-red-100 focus:ring-red-500/30"

	messageBaseClasses    = "mb-4 rounded-xl p-3 text-sm"
	messageSuccessClasses = "bg-green-100 text-green-800"
	messageErrorClasses   = "bg-red-100 text-red-800"
)

// ButtonState is the only place a button's disabled flag and its look are derived,
// so the two cannot drift apart.
func ButtonState(enabled bool) (disabled bool, classes string) {
	if enabled {
		return false, buttonBaseClasses + " " + buttonSkinClasses + " " + buttonHoverClasses
	}
	return true, buttonBaseClasses + " " + buttonSkinClasses + " " + buttonDisabledClasses
}

func InputClasses(state resource.FieldState) string {
	switch state {
	case resource.FieldValid:
		return inputBaseClasses + " " + inputValidClasses
	case resource.FieldInvalid:
		return inputBaseClasses + " " + inputInvalidClasses
	default:
		return inputBaseClasses + " " + inputNeutralClasses
	}
}

// MessageClasses returns the classes of the message area; a nil message keeps it hidden.
func MessageClasses(msg *resourceform.Message) string {
	if msg == nil {
		return messageBaseClasses + " hidden"
	}
	switch msg.Kind {
	case resourceform.MessageSuccess:
		return messageBaseClasses + " " + messageSuccessClasses
	case resourceform.MessageError:
		return messageBaseClasses + " " + messageErrorClasses
	default:
		return messageBaseClasses
	}
}
