// pkg/render/arena.go
package render

import (
	"image"
	"image/color"
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ArenaRenderer draws the isometric arena floor and every live entity as a
// projected circle.
type ArenaRenderer struct {
	centerX float32
	centerY float32
}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{
		centerX: float32(config.ScreenWidth) / 2,
		centerY: float32(config.ScreenHeight)/2 + 40,
	}
}

// Project converts a world position to screen coordinates.
func (r *ArenaRenderer) Project(p utils.Vec2) (float32, float32) {
	sx, sy := utils.IsoProject(p, config.IsoScaleX, config.IsoScaleY)
	return r.centerX + float32(sx), r.centerY + float32(sy)
}

// Unproject converts a screen position back to world coordinates, for
// mouse aim.
func (r *ArenaRenderer) Unproject(sx, sy float64) utils.Vec2 {
	return utils.IsoUnproject(sx-float64(r.centerX), sy-float64(r.centerY), config.IsoScaleX, config.IsoScaleY)
}

// Draw renders the full scene back to front: floor, hazards, pickups,
// projectiles, enemies, player.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(config.BackgroundColor)
	r.drawFloor(screen)

	for id, hazard := range ecs.Hazards {
		r.drawHazard(screen, ecs, id, hazard)
	}
	for id := range ecs.PowerUps {
		r.drawCircleEntity(screen, ecs, id)
	}
	for id := range ecs.Projectiles {
		r.drawCircleEntity(screen, ecs, id)
	}
	for id := range ecs.Enemies {
		r.drawCircleEntity(screen, ecs, id)
	}
	r.drawPlayer(screen, ecs)
}

// drawFloor draws the arena as the projected outline of the world circle.
func (r *ArenaRenderer) drawFloor(screen *ebiten.Image) {
	const steps = 72
	var path vector.Path
	for i := 0; i <= steps; i++ {
		angle := float64(i) / steps * 2 * math.Pi
		sx, sy := r.Project(utils.FromAngle(angle).Scale(config.ArenaRadius))
		if i == 0 {
			path.MoveTo(sx, sy)
		} else {
			path.LineTo(sx, sy)
		}
	}
	path.Close()

	fillPath(screen, &path, config.FloorColor.R, config.FloorColor.G, config.FloorColor.B, config.FloorColor.A)
	strokePath(screen, &path, 2, config.FloorEdgeColor.R, config.FloorEdgeColor.G, config.FloorEdgeColor.B, config.FloorEdgeColor.A)
}

func (r *ArenaRenderer) drawCircleEntity(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID) {
	pos := ecs.Positions[id]
	render := ecs.Renderables[id]
	if pos == nil || render == nil {
		return
	}
	sx, sy := r.Project(pos.Vec())
	vector.DrawFilledCircle(screen, sx, sy, render.Radius, render.Color, true)
	if render.HasStroke {
		vector.StrokeCircle(screen, sx, sy, render.Radius+2, 1.5, config.HUDTextColor, true)
	}
}

func (r *ArenaRenderer) drawHazard(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, hazard *component.Hazard) {
	render := ecs.Renderables[id]
	if render == nil {
		return
	}
	switch hazard.Kind {
	case defs.HazardBeam, defs.HazardThunder:
		ax, ay := r.Project(utils.Vec2{X: hazard.StartX, Y: hazard.StartY})
		bx, by := r.Project(utils.Vec2{X: hazard.EndX, Y: hazard.EndY})
		width := float32(hazard.Radius)
		if !hazard.Armed() {
			width = 1.5
		}
		vector.StrokeLine(screen, ax, ay, bx, by, width, render.Color, true)
	default:
		pos := ecs.Positions[id]
		if pos == nil {
			return
		}
		sx, sy := r.Project(pos.Vec())
		if hazard.Armed() {
			vector.DrawFilledCircle(screen, sx, sy, float32(hazard.Radius), render.Color, true)
		} else {
			vector.StrokeCircle(screen, sx, sy, float32(hazard.Radius), 1.5, render.Color, true)
		}
	}
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, ecs *entity.ECS) {
	player := ecs.Player
	if !player.Alive() {
		return
	}
	sx, sy := r.Project(utils.Vec2{X: player.X, Y: player.Y})
	vector.DrawFilledCircle(screen, sx, sy, float32(config.PlayerRadius), config.PlayerColor, true)
	if player.Shield > 0 {
		vector.StrokeCircle(screen, sx, sy, float32(config.PlayerRadius)+4, 2, config.ShieldColor, true)
	}
	if player.VortexUntil > ecs.GameTime {
		vector.StrokeCircle(screen, sx, sy, float32(player.VortexRadius), 1, config.PowerUpColors["vortex"], true)
	}
}

func fillPath(screen *ebiten.Image, path *vector.Path, cr, cg, cb, ca uint8) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	tintVertices(vs, cr, cg, cb, ca)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

func strokePath(screen *ebiten.Image, path *vector.Path, width float32, cr, cg, cb, ca uint8) {
	var opts vector.StrokeOptions
	opts.Width = width
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &opts)
	tintVertices(vs, cr, cg, cb, ca)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

func tintVertices(vs []ebiten.Vertex, cr, cg, cb, ca uint8) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 255
		vs[i].ColorG = float32(cg) / 255
		vs[i].ColorB = float32(cb) / 255
		vs[i].ColorA = float32(ca) / 255
	}
}
