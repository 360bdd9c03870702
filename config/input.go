package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionBreak
	ActionThrowKetchup
	ActionThrowMustard
	ActionThrowRelish
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionJump:         "jump",
	ActionBreak:        "break",
	ActionThrowKetchup: "ketchup",
	ActionThrowMustard: "mustard",
	ActionThrowRelish:  "relish",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a lowercase action name back to its ID.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name && ActionID(id) != ActionNone {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}

// CondimentKind identifies one of the three throwable supplies.
type CondimentKind int

const (
	Ketchup CondimentKind = iota
	Mustard
	Relish
	CondimentCount
)

func (k CondimentKind) String() string {
	switch k {
	case Ketchup:
		return "ketchup"
	case Mustard:
		return "mustard"
	case Relish:
		return "relish"
	}
	return "unknown"
}

// ThrowActions maps each condiment to the action that throws it.
var ThrowActions = [CondimentCount]ActionID{
	Ketchup: ActionThrowKetchup,
	Mustard: ActionThrowMustard,
	Relish:  ActionThrowRelish,
}
