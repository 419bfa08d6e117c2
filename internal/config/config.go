// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 980
	ScreenHeight = 620
	MaxDeltaTime = 0.06

	// Arena
	ArenaRadius      = 400.0
	PlayerClampScale = 0.90 // player stays slightly inside the rim
	EnemyClampScale  = 0.96

	// Isometric projection
	IsoScaleX = 1.0
	IsoScaleY = 0.5

	// Player stats
	PlayerHP       = 100
	PlayerSpeed    = 175.0
	PlayerFireRate = 0.28
	PlayerRadius   = 14.0

	// Fire rate combination: weapon interval scaled by the player's
	// fire-rate stat relative to the baseline, clamped both ways.
	MinFireInterval = 0.06
	FireRateMultMin = 0.45
	FireRateMultMax = 2.25

	// Waves
	WaveCooldown           = 2.0
	MaxEnemies             = 12
	BossWaveInterval       = 5
	MaxActiveConstructions = 14

	// Combat
	EnemyContactDamage   = 10
	TankDeathBlastRadius = 70.0
	TankDeathBlastDamage = 15
	BossDyingDuration    = 1.2

	// Boss phases: one-way transitions when remaining HP crosses these
	// fractions of max HP.
	BossPhase2HPFrac = 2.0 / 3.0
	BossPhase3HPFrac = 1.0 / 3.0

	// Powerups
	PowerUpCap            = 6
	PowerUpSpawnInterval  = 1.0
	PowerUpSpawnChance    = 0.028
	PowerUpDropChance     = 0.15
	PowerUpTTL            = 18.0
	PickupRadiusNormal    = 16.0
	PickupRadiusSpecial   = 20.0
	MagnetRadiusSpecial   = 190.0
	MagnetPullBaseSpeed   = 220.0
	MagnetPullNearbyGain  = 2.0
	ShieldPoints          = 35
	HealAmount            = 25
	LaserDuration         = 6.0
	VortexDuration        = 7.0
	VortexRadius          = 70.0
	VortexDPS             = 38.0
	DamagePickupBonus     = 5
	SpeedPickupBonus      = 18.0
	FireRatePickupBonus   = 0.04
	FireRatePickupFloor   = 0.12

	// Ultra ability
	UltraMaxCharges    = 2
	UltraCooldown      = 10.0
	UltraDamageBase    = 55
	UltraDamageMult    = 2.7
	UltraBeamThickness = 16.0
	UltraSpawnMinWave  = 4
	UltraWaveGap       = 4
	UltraKillPity      = 30
)

var (
	BackgroundColor = color.RGBA{10, 15, 30, 255}
	FloorColor      = color.RGBA{40, 30, 60, 255}
	FloorEdgeColor  = color.RGBA{100, 80, 150, 255}
	HUDTextColor    = color.RGBA{240, 240, 240, 255}
	PlayerColor     = color.RGBA{120, 220, 255, 255}
	ShieldColor     = color.RGBA{100, 220, 255, 255}
	HazardWarnColor = color.RGBA{255, 200, 120, 160}
	HazardColor     = color.RGBA{255, 140, 90, 220}

	PowerUpColors = map[string]color.RGBA{
		"heal":     {120, 255, 120, 255},
		"damage":   {255, 120, 120, 255},
		"speed":    {120, 180, 255, 255},
		"firerate": {255, 255, 120, 255},
		"shield":   {100, 220, 255, 255},
		"laser":    {255, 120, 255, 255},
		"vortex":   {200, 160, 255, 255},
		"weapon":   {230, 230, 255, 255},
		"ultra":    {255, 240, 180, 255},
	}

	EnemyColors = map[string]color.RGBA{
		"chaser":          {255, 80, 80, 255},
		"ranged":          {80, 150, 255, 255},
		"charger":         {255, 180, 80, 255},
		"swarm":           {220, 100, 220, 255},
		"tank":            {100, 220, 100, 255},
		"spitter":         {255, 220, 80, 255},
		"flyer":           {150, 180, 255, 255},
		"engineer":        {80, 240, 180, 255},
		"boss_thunder":    {180, 210, 255, 255},
		"boss_laser":      {255, 140, 255, 255},
		"boss_trapmaster": {255, 180, 100, 255},
		"boss_swarmqueen": {230, 140, 255, 255},
		"boss_brute":      {255, 100, 100, 255},
	}

	ProjectileColors = map[string]color.RGBA{
		"bullet":  {255, 245, 190, 255},
		"spread":  {255, 200, 100, 255},
		"missile": {200, 100, 100, 255},
		"plasma":  {150, 100, 255, 255},
	}
)
