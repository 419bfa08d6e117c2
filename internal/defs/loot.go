// internal/defs/loot.go
package defs

// PowerUpDropTable weights pickups rolled when an enemy dies.
var PowerUpDropTable = []LootEntry{
	{Key: string(PowerUpHeal), Weight: 24},
	{Key: string(PowerUpDamage), Weight: 16},
	{Key: string(PowerUpSpeed), Weight: 14},
	{Key: string(PowerUpFireRate), Weight: 14},
	{Key: string(PowerUpShield), Weight: 14},
	{Key: string(PowerUpLaser), Weight: 6},
	{Key: string(PowerUpVortex), Weight: 6},
	{Key: string(PowerUpWeapon), Weight: 6},
}

// PowerUpBossBonusTable weights the extra drop on a boss kill. The weapon
// slot is already guaranteed separately, so no weapon entry here: the bonus
// pickup is always of a different kind.
var PowerUpBossBonusTable = []LootEntry{
	{Key: string(PowerUpHeal), Weight: 24},
	{Key: string(PowerUpDamage), Weight: 16},
	{Key: string(PowerUpSpeed), Weight: 14},
	{Key: string(PowerUpFireRate), Weight: 14},
	{Key: string(PowerUpShield), Weight: 14},
	{Key: string(PowerUpLaser), Weight: 6},
	{Key: string(PowerUpVortex), Weight: 6},
}

// PowerUpDirectorTable weights pickups seeded by the ambient director.
// No weapon drops here; weapons come from kills and bosses.
var PowerUpDirectorTable = []LootEntry{
	{Key: string(PowerUpHeal), Weight: 30},
	{Key: string(PowerUpDamage), Weight: 16},
	{Key: string(PowerUpSpeed), Weight: 16},
	{Key: string(PowerUpFireRate), Weight: 16},
	{Key: string(PowerUpShield), Weight: 14},
	{Key: string(PowerUpLaser), Weight: 4},
	{Key: string(PowerUpVortex), Weight: 4},
}
