// internal/types/types.go
package types

// EntityID identifies a single entity in the ECS. Zero is "no entity".
type EntityID uint64
