package config

// UnitTypesConfig is the unit library: every type a scenario may field.
type UnitTypesConfig struct {
	UnitTypes []UnitTypeDef `yaml:"unit_types"`
}

// UnitTypeDef declares one unit type. Efficiency maps enemy type ids to the
// base damage rate per round; leaving a type out means units of this type
// cannot target it at all.
type UnitTypeDef struct {
	ID         string             `yaml:"id"`
	Name       string             `yaml:"name"`
	Health     float64            `yaml:"health"`
	Efficiency map[string]float64 `yaml:"efficiency"`
	Note       string             `yaml:"note"`
}

// ByID indexes the defined types.
func (c *UnitTypesConfig) ByID() map[string]UnitTypeDef {
	idx := make(map[string]UnitTypeDef, len(c.UnitTypes))
	for _, def := range c.UnitTypes {
		idx[def.ID] = def
	}
	return idx
}
