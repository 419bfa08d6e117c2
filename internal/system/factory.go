// internal/system/factory.go
package system

import (
	"image/color"
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
)

// SpawnEnemy creates an enemy entity of the given kind at a position, with
// stats resolved for the wave and difficulty. Boss kinds also get a Boss
// component with a rolled persona.
func SpawnEnemy(ecs *entity.ECS, rng *utils.PRNGService, kind defs.BehaviorKind, wave int, x, y float64) types.EntityID {
	hp, speed, attackMult := defs.EnemyStats(kind, wave, ecs.Session.Difficulty)

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Enemies[id] = &component.Enemy{
		Kind:       kind,
		MoveSpeed:  speed,
		AttackMult: attackMult,
		Seed:       rng.Angle(),
		StrafeSign: strafeSign(rng),
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:  enemyColor(kind),
		Radius: float32(defs.EnemyRadius(kind)),
	}

	if kind.IsBoss() {
		persona := defs.PersonaRoster[rng.Intn(len(defs.PersonaRoster))]
		ecs.Bosses[id] = &component.Boss{
			Persona: persona,
			Phase:   1,
		}
		ecs.Renderables[id].HasStroke = true
	}
	return id
}

func strafeSign(rng *utils.PRNGService) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

func enemyColor(kind defs.BehaviorKind) color.RGBA {
	if c, ok := config.EnemyColors[string(kind)]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// SpawnProjectile creates a shot entity. Owner zero marks it enemy-owned.
func SpawnProjectile(ecs *entity.ECS, kind defs.ProjectileKind, owner types.EntityID, x, y, angle, speed float64, damage int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{
		X: math.Cos(angle) * speed,
		Y: math.Sin(angle) * speed,
	}
	ecs.Projectiles[id] = &component.Projectile{
		Kind:   kind,
		Damage: damage,
		TTL:    projectileTTL,
		Owner:  owner,
		PrevX:  x,
		PrevY:  y,
	}
	c, ok := config.ProjectileColors[string(kind)]
	if !ok {
		c = config.ProjectileColors[string(defs.ProjectileBullet)]
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:  c,
		Radius: float32(defs.ProjectileRadius(kind)),
	}
	return id
}

// Projectiles despawn after this long even if they never leave the arena.
const projectileTTL = 3.0

// SpawnPowerUp creates a pickup of the given kind. WeaponKey is only used
// for weapon pickups.
func SpawnPowerUp(ecs *entity.ECS, kind defs.PowerUpKind, weaponKey string, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.PowerUps[id] = &component.PowerUp{
		Kind:      kind,
		WeaponKey: weaponKey,
		TTL:       config.PowerUpTTL,
		Magnet:    kind.IsSpecial(),
	}
	c, ok := config.PowerUpColors[string(kind)]
	if !ok {
		c = color.RGBA{255, 255, 255, 255}
	}
	radius := config.PickupRadiusNormal
	if kind.IsSpecial() {
		radius = config.PickupRadiusSpecial
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:     c,
		Radius:    float32(radius * 0.5),
		HasStroke: kind.IsSpecial(),
	}
	return id
}

// SpawnCircleHazard creates a trap or slam hazard centered on (x, y).
func SpawnCircleHazard(ecs *entity.ECS, kind defs.HazardKind, x, y, radius float64, damage int, warn, ttl float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Hazards[id] = &component.Hazard{
		Kind:   kind,
		Damage: damage,
		Radius: radius,
		Warn:   warn,
		TTL:    ttl,
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:  config.HazardWarnColor,
		Radius: float32(radius),
	}
	return id
}

// SpawnLineHazard creates a beam or thunder line hazard along a segment.
// Half-thickness rides in Radius.
func SpawnLineHazard(ecs *entity.ECS, kind defs.HazardKind, start, end utils.Vec2, halfWidth float64, damage int, warn, ttl float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	ecs.Hazards[id] = &component.Hazard{
		Kind:   kind,
		Damage: damage,
		Radius: halfWidth,
		StartX: start.X, StartY: start.Y,
		EndX: end.X, EndY: end.Y,
		Warn: warn,
		TTL:  ttl,
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:  config.HazardWarnColor,
		Radius: float32(halfWidth),
	}
	return id
}
