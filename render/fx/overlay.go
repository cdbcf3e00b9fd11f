package fx

import (
	"fmt"
	"strings"

	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
)

// OverlayLines is the text shown over the playfield for a state.
func OverlayLines(view *ecs.Snapshot) []string {
	if view == nil {
		return nil
	}
	switch view.State {
	case component.GameMenu:
		return []string{
			"Press ENTER to start",
			"Press W or S to select level",
			fmt.Sprintf("Level %d/%d: %s", view.Level+1, view.LevelCount, strings.TrimSuffix(view.LevelName, ".lvl")),
		}
	case component.GameWin:
		return []string{
			"You WON!!!",
			"Press ENTER to retry or ESC to quit",
		}
	}
	return nil
}
