package dogfight

import "strings"

// Command is a discrete player input aimed at one dogfight window
type Command int

const (
	CmdNone Command = iota
	CmdStandoff
	CmdCautious
	CmdStandard
	CmdAggressive
	CmdDisengage
	CmdToggleWeapon1
	CmdToggleWeapon2
	CmdMinimize
	CmdRestore
	CmdToggleUfoPreview
	CmdClose
)

var commandNames = map[Command]string{
	CmdNone:             "none",
	CmdStandoff:         "standoff",
	CmdCautious:         "cautious",
	CmdStandard:         "standard",
	CmdAggressive:       "aggressive",
	CmdDisengage:        "disengage",
	CmdToggleWeapon1:    "weapon1",
	CmdToggleWeapon2:    "weapon2",
	CmdMinimize:         "minimize",
	CmdRestore:          "restore",
	CmdToggleUfoPreview: "ufo",
	CmdClose:            "close",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "unknown"
}

// ParseCommand maps a binding name to a command
func ParseCommand(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range commandNames {
		if n == name && c != CmdNone {
			return c, true
		}
	}
	return CmdNone, false
}

// Handle applies one player command. Commands to an ended dogfight are ignored.
func (d *Dogfight) Handle(cmd Command) {
	if d.end {
		return
	}
	switch cmd {
	case CmdStandoff:
		d.setMode(ModeStandoff)
	case CmdCautious:
		d.setMode(ModeCautious)
	case CmdStandard:
		d.setMode(ModeStandard)
	case CmdAggressive:
		d.setMode(ModeAggressive)
	case CmdDisengage:
		d.setMode(ModeDisengage)
	case CmdToggleWeapon1:
		d.toggleWeapon(0)
	case CmdToggleWeapon2:
		d.toggleWeapon(1)
	case CmdMinimize:
		if d.currentDist >= maxDist {
			d.SetMinimized(true)
		} else {
			d.setStatus(StatusMinimiseAtStandoff)
		}
	case CmdRestore:
		d.SetMinimized(false)
	case CmdToggleUfoPreview:
		d.previewVisible = !d.previewVisible
	case CmdClose:
		d.Close()
	}
}
