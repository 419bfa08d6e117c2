// internal/ui/reward_menu.go
package ui

import (
	"fmt"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// RewardMenu draws the two-stage boss reward picker. Options map to the
// number keys 1..3.
type RewardMenu struct{}

func NewRewardMenu() *RewardMenu {
	return &RewardMenu{}
}

// DrawTemp renders the temporary card stage.
func (m *RewardMenu) DrawTemp(screen *ebiten.Image, keys []string) {
	lines := make([]string, 0, len(keys))
	for i, key := range keys {
		if card, ok := defs.TempCardByKey(key); ok {
			lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, card.Name, card.Desc))
		}
	}
	m.drawPanel(screen, "Boss reward: pick a card", lines)
}

// DrawPerm renders the permanent boost stage.
func (m *RewardMenu) DrawPerm(screen *ebiten.Image, keys []string) {
	lines := make([]string, 0, len(keys))
	for i, key := range keys {
		if boost, ok := defs.PermBoostByKey(key); ok {
			lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, boost.Name, boost.Desc))
		}
	}
	m.drawPanel(screen, "Boss reward: pick a boost", lines)
}

func (m *RewardMenu) drawPanel(screen *ebiten.Image, title string, lines []string) {
	face := basicfont.Face7x13
	panelW := float32(420)
	panelH := float32(40 + len(lines)*22)
	x := (float32(config.ScreenWidth) - panelW) / 2
	y := (float32(config.ScreenHeight) - panelH) / 2

	vector.DrawFilledRect(screen, x, y, panelW, panelH, config.FloorColor, false)
	vector.StrokeRect(screen, x, y, panelW, panelH, 2, config.FloorEdgeColor, false)

	text.Draw(screen, title, face, int(x)+16, int(y)+22, config.HUDTextColor)
	for i, line := range lines {
		text.Draw(screen, line, face, int(x)+16, int(y)+46+i*22, config.HUDTextColor)
	}
}
