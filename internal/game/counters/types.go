package counters

// CounterType names a kind of counter.
type CounterType string

const (
	CounterTypeCharge     CounterType = "charge"
	CounterTypeShield     CounterType = "shield"
	CounterTypePoison     CounterType = "poison"
	CounterTypeStun       CounterType = "stun"
	CounterTypeLevel      CounterType = "level"
	CounterTypeGrowth     CounterType = "growth"
	CounterTypeDoom       CounterType = "doom"
	CounterTypeQuest      CounterType = "quest"
	CounterTypeTime       CounterType = "time"
	CounterTypeGold       CounterType = "gold"
	CounterTypeEnergy     CounterType = "energy"
	CounterTypeExperience CounterType = "experience"
)

// String returns the string representation of the counter type.
func (ct CounterType) String() string {
	return string(ct)
}
