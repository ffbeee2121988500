package entities

// Stat names for the numeric fields of a StatsRecord
const (
	StatArmorClass    = "armor_class"
	StatHitPoints     = "hit_points"
	StatAttackBonus   = "attack_bonus"
	StatAverageDamage = "average_damage"
)

// LeveledAttribute is a named attribute with its score and modifier
type LeveledAttribute struct {
	Name     string
	Score    int
	Modifier int
}

// Save is a named saving throw bonus
type Save struct {
	Name  string
	Bonus int
}

// StatsRecord is the statistics block of a character in one rule system.
// Attributes and Saves keep the order they were listed in.
type StatsRecord struct {
	Level         int
	ArmorClass    int
	HitPoints     int
	AttackBonus   int
	Damage        string // dice notation, e.g. "2d6+4"
	AverageDamage int
	Attributes    []LeveledAttribute
	Saves         []Save
	OtherDetails  []string
}
