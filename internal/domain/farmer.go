package domain

// MaxSkillLevel is the highest level a farmer skill can reach
const MaxSkillLevel = 10

// Farmer is the player whose skills affect harvests
type Farmer struct {
	Name  string `json:"name"`
	Level int    `json:"farming_level"`
}

// FarmingLevel returns the farmer's farming skill level
func (f *Farmer) FarmingLevel() int {
	return f.Level
}
