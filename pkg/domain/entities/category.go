package entities

// Category identifies a fixed supply category
type Category string

const (
	CategoryWater     Category = "water"
	CategoryFood      Category = "food"
	CategoryMedical   Category = "medical"
	CategoryHygiene   Category = "hygiene"
	CategoryEnergy    Category = "energy"
	CategoryTools     Category = "tools"
	CategoryDocuments Category = "documents"
	CategoryPets      Category = "pets"
)

// AllCategories returns every category in stable display order
func AllCategories() []Category {
	return []Category{
		CategoryWater,
		CategoryFood,
		CategoryMedical,
		CategoryHygiene,
		CategoryEnergy,
		CategoryTools,
		CategoryDocuments,
		CategoryPets,
	}
}

// IsValid reports whether c is one of the fixed category ids
func (c Category) IsValid() bool {
	switch c {
	case CategoryWater, CategoryFood, CategoryMedical, CategoryHygiene,
		CategoryEnergy, CategoryTools, CategoryDocuments, CategoryPets:
		return true
	default:
		return false
	}
}

// Unit identifies a fixed unit of measure for supply quantities
type Unit string

const (
	UnitPieces    Unit = "pcs"
	UnitLiters    Unit = "l"
	UnitKilograms Unit = "kg"
	UnitGrams     Unit = "g"
	UnitCans      Unit = "cans"
	UnitPacks     Unit = "packs"
)

// IsValid reports whether u is one of the fixed unit symbols
func (u Unit) IsValid() bool {
	switch u {
	case UnitPieces, UnitLiters, UnitKilograms, UnitGrams, UnitCans, UnitPacks:
		return true
	default:
		return false
	}
}
