package resource

import "strings"

func IsNameValid(s string) bool {
	_, err := NewName(s)
	return err == nil
}

func IsDescriptionValid(s string) bool {
	_, err := NewDescription(s)
	return err == nil
}

// NameState reports neutral for blank input so an untouched field is not shown as failing.
func NameState(s string) FieldState {
	return fieldState(s, IsNameValid)
}

func DescriptionState(s string) FieldState {
	return fieldState(s, IsDescriptionValid)
}

func fieldState(s string, valid func(string) bool) FieldState {
	if strings.TrimSpace(s) == "" {
		return FieldNeutral
	}
	if valid(s) {
		return FieldValid
	}
	return FieldInvalid
}
