// Package asset defines the unit and structure types of the game, the
// capabilities a player can activate, and the asset handles shared by the
// renderers.
package asset

import "strings"

// Type identifies a unit or structure.
type Type int

// Asset types
const (
	TypeNone Type = iota
	TypePeasant
	TypeFootman
	TypeArcher
	TypeRanger
	TypeGoldMine
	TypeTownHall
	TypeKeep
	TypeCastle
	TypeFarm
	TypeBarracks
	TypeLumberMill
	TypeBlacksmith
	TypeScoutTower
	TypeGuardTower
	TypeCannonTower
	typeCount
)

var typeNames = [typeCount]string{
	"None",
	"Peasant",
	"Footman",
	"Archer",
	"Ranger",
	"GoldMine",
	"TownHall",
	"Keep",
	"Castle",
	"Farm",
	"Barracks",
	"LumberMill",
	"Blacksmith",
	"ScoutTower",
	"GuardTower",
	"CannonTower",
}

// String returns the type name used in map files.
func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "None"
	}
	return typeNames[t]
}

// TypeFromName parses a type name, case-insensitively.
func TypeFromName(name string) (Type, bool) {
	for i, n := range typeNames {
		if strings.EqualFold(n, name) {
			return Type(i), true
		}
	}
	return TypeNone, false
}

// Size returns the footprint of the type in tiles.
func (t Type) Size() int {
	switch t {
	case TypeGoldMine, TypeTownHall, TypeKeep, TypeCastle, TypeLumberMill,
		TypeBlacksmith, TypeBarracks:
		return 3
	case TypeFarm, TypeScoutTower, TypeGuardTower, TypeCannonTower:
		return 2
	case TypeNone:
		return 0
	default:
		return 1
	}
}

// IsStructure reports whether the type is a building.
func (t Type) IsStructure() bool {
	return t.Size() > 1
}

// Capability is an action a selected asset can perform.
type Capability int

// Capabilities
const (
	CapabilityNone Capability = iota
	CapabilityBuildPeasant
	CapabilityBuildFootman
	CapabilityBuildArcher
	CapabilityBuildRanger
	CapabilityBuildFarm
	CapabilityBuildTownHall
	CapabilityBuildBarracks
	CapabilityBuildLumberMill
	CapabilityBuildBlacksmith
	CapabilityBuildKeep
	CapabilityBuildCastle
	CapabilityBuildScoutTower
	CapabilityBuildGuardTower
	CapabilityBuildCannonTower
	CapabilityMove
	CapabilityRepair
	CapabilityMine
	CapabilityBuildSimple
	CapabilityAttack
	CapabilityStandGround
	CapabilityPatrol
	CapabilityCancel
)

// placementTypes maps the build capabilities that place a new structure on
// the map to that structure. Upgrades (Keep, Castle, towers) and unit
// training are absent: they never need a placement preview.
var placementTypes = map[Capability]Type{
	CapabilityBuildFarm:       TypeFarm,
	CapabilityBuildTownHall:   TypeTownHall,
	CapabilityBuildBarracks:   TypeBarracks,
	CapabilityBuildLumberMill: TypeLumberMill,
	CapabilityBuildBlacksmith: TypeBlacksmith,
	CapabilityBuildScoutTower: TypeScoutTower,
}

// PlacementType returns the structure previewed while c is active, or
// TypeNone when c does not place anything.
func PlacementType(c Capability) Type {
	if t, ok := placementTypes[c]; ok {
		return t
	}
	return TypeNone
}
