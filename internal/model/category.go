package model

// Category names one of the tracked resource kinds.
type Category string

const (
	CategoryEnergy Category = "energy"
	CategoryWater  Category = "water"
	CategoryWaste  Category = "waste"
)

// Categories returns the fixed tracked categories in declaration order.
func Categories() []Category {
	return []Category{CategoryEnergy, CategoryWater, CategoryWaste}
}

// Unit returns the display unit for a category, or "" if unknown.
func (c Category) Unit() string {
	switch c {
	case CategoryEnergy:
		return "kWh"
	case CategoryWater:
		return "liters"
	case CategoryWaste:
		return "kg"
	default:
		return ""
	}
}

// Label returns the category name with its first letter capitalized,
// for user-facing output.
func (c Category) Label() string {
	s := string(c)
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
