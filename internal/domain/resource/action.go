package resource

import "strings"

type ActionButton struct {
	Action  Action
	Label   string
	Submit  bool
	Enabled bool
}

// ButtonsFor returns the action controls for role. Every button starts disabled.
func ButtonsFor(role Role) []ActionButton {
	switch role {
	case RoleReserver:
		return []ActionButton{
			{Action: ActionCreate, Label: "Create", Submit: true},
		}
	case RoleAdmin:
		return []ActionButton{
			{Action: ActionCreate, Label: "Create", Submit: true},
			{Action: ActionUpdate, Label: "Update"},
			{Action: ActionDelete, Label: "Delete"},
		}
	default:
		return nil
	}
}

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleReserver, RoleAdmin:
		return r, nil
	default:
		return "", ErrUnknownRole
	}
}

// ParseAction defaults to create when the submitting control carried no value.
func ParseAction(s string) Action {
	switch a := Action(strings.TrimSpace(s)); a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return a
	default:
		return ActionCreate
	}
}
