package commontray

var (
	Title   = "StarScope"
	Tooltip = "StarScope - GitHub Project Intelligence"
)

// Action is a tray menu command.
type Action int

const (
	ActionShow Action = iota
	ActionRefreshAll
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionShow:
		return "Show"
	case ActionRefreshAll:
		return "RefreshAll"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

type ButtonState int

const (
	ButtonDown ButtonState = iota
	ButtonUp
)

// Click is a click on the tray icon itself.
type Click struct {
	Button MouseButton
	State  ButtonState
}

type MenuItem struct {
	Action  Action
	Title   string
	Tooltip string
}

type Menu struct {
	Icon    []byte
	Title   string
	Tooltip string
	Items   []MenuItem
}

// Callbacks carries tray events to the lifecycle loop. Backends that cannot
// observe icon clicks never send on Clicks.
type Callbacks struct {
	Actions chan Action
	Clicks  chan Click
}

func NewCallbacks() Callbacks {
	return Callbacks{
		Actions: make(chan Action, 1),
		Clicks:  make(chan Click, 1),
	}
}

type StarscopeTray interface {
	// Build constructs the icon and menu. It must be called from onReady.
	Build(menu Menu) error
	GetCallbacks() Callbacks
	// Run blocks until Quit is called.
	Run(onReady, onExit func())
	Quit()
}
