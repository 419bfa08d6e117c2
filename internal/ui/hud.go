// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin   = 12
	hpBarWidth  = 220
	hpBarHeight = 14
	hudLineStep = 16
)

// HUD draws the in-run overlay: health, shield, wave, score and loadout.
type HUD struct{}

func NewHUD() *HUD {
	return &HUD{}
}

func (h *HUD) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	player := ecs.Player
	face := basicfont.Face7x13

	// Health bar with shield overlay.
	frac := 0.0
	if player.MaxHP > 0 {
		frac = float64(player.HP) / float64(player.MaxHP)
	}
	vector.DrawFilledRect(screen, hudMargin, hudMargin, hpBarWidth, hpBarHeight, config.FloorColor, false)
	vector.DrawFilledRect(screen, hudMargin, hudMargin, float32(hpBarWidth*frac), hpBarHeight, config.PowerUpColors["heal"], false)
	if player.Shield > 0 {
		shieldFrac := float64(player.Shield) / float64(config.ShieldPoints)
		if shieldFrac > 1 {
			shieldFrac = 1
		}
		vector.DrawFilledRect(screen, hudMargin, hudMargin+hpBarHeight+2, float32(hpBarWidth*shieldFrac), 4, config.ShieldColor, false)
	}
	text.Draw(screen, fmt.Sprintf("%d/%d", player.HP, player.MaxHP), face, hudMargin+hpBarWidth+8, hudMargin+hpBarHeight-2, config.HUDTextColor)

	y := hudMargin + hpBarHeight + hudLineStep + 4
	weaponName := player.WeaponKey
	if def, err := defs.WeaponByKey(player.WeaponKey); err == nil {
		weaponName = def.Name
	}
	lines := []string{
		fmt.Sprintf("Wave %d", ecs.Wave.Number),
		fmt.Sprintf("Score %d", ecs.Session.Score),
		weaponName,
		fmt.Sprintf("Ultra %d/%d", player.UltraCharges, player.UltraMaxCharges),
	}
	if ecs.Session.Combo > 1 {
		lines = append(lines, fmt.Sprintf("Combo x%d", ecs.Session.Combo))
	}
	for _, active := range ecs.Session.ActiveCards {
		name := active.Key
		if card, ok := defs.TempCardByKey(active.Key); ok {
			name = card.Name
		}
		lines = append(lines, fmt.Sprintf("%s (%dw)", name, active.WavesRemaining))
	}
	for _, line := range lines {
		text.Draw(screen, line, face, hudMargin, y, config.HUDTextColor)
		y += hudLineStep
	}
}
