package commontray

import (
	"errors"
	"fmt"
)

const (
	ShowMenuTitle       = "Show StarScope"
	RefreshAllMenuTitle = "Refresh All"
	QuitMenuTitle       = "Quit"
)

var ErrInvalidMenu = errors.New("invalid tray menu")

// DefaultMenu is the menu every StarScope tray carries.
func DefaultMenu(icon []byte) Menu {
	return Menu{
		Icon:    icon,
		Title:   Title,
		Tooltip: Tooltip,
		Items: []MenuItem{
			{Action: ActionShow, Title: ShowMenuTitle, Tooltip: "Show the StarScope window"},
			{Action: ActionRefreshAll, Title: RefreshAllMenuTitle, Tooltip: "Refresh all tracked repositories"},
			{Action: ActionQuit, Title: QuitMenuTitle, Tooltip: "Exit StarScope"},
		},
	}
}

// Validate reports menus a backend cannot render.
func (m Menu) Validate() error {
	if len(m.Icon) == 0 {
		return fmt.Errorf("%w: no icon configured", ErrInvalidMenu)
	}
	if len(m.Items) == 0 {
		return fmt.Errorf("%w: no menu items", ErrInvalidMenu)
	}
	seen := make(map[Action]bool, len(m.Items))
	for i, item := range m.Items {
		if item.Title == "" {
			return fmt.Errorf("%w: item %d has no title", ErrInvalidMenu, i)
		}
		if seen[item.Action] {
			return fmt.Errorf("%w: duplicate item for action %s", ErrInvalidMenu, item.Action)
		}
		seen[item.Action] = true
	}
	return nil
}
