package models

// Cylinder is a priced cylinder variant. It is a value object embedded
// into bookings, not a stored entity with its own identity.
type Cylinder struct {
	Type   string  `gorm:"not null" json:"type"`
	Weight float64 `gorm:"not null" json:"weight"`
	Price  float64 `gorm:"not null" json:"price"`
}

// The agency sells three fixed cylinder variants.
func Domestic14Kg() Cylinder {
	return Cylinder{Type: "14.2 KG Domestic", Weight: 14.2, Price: 903.00}
}

func Domestic5Kg() Cylinder {
	return Cylinder{Type: "5 KG Domestic", Weight: 5.0, Price: 349.00}
}

func Commercial19Kg() Cylinder {
	return Cylinder{Type: "19 KG Commercial", Weight: 19.0, Price: 1850.00}
}

// CylinderCatalog maps the API codes to the canonical cylinder variants.
var CylinderCatalog = map[string]func() Cylinder{
	"14.2kg": Domestic14Kg,
	"5kg":    Domestic5Kg,
	"19kg":   Commercial19Kg,
}

// CylinderByCode looks up a catalog cylinder by its code.
func CylinderByCode(code string) (Cylinder, bool) {
	factory, ok := CylinderCatalog[code]
	if !ok {
		return Cylinder{}, false
	}
	return factory(), true
}
