package models

// Person holds the contact fields shared by customers and employees.
// It is embedded by composition rather than inherited.
type Person struct {
	Name    string `gorm:"not null" json:"name"`
	Phone   string `gorm:"not null" json:"phone"`
	Email   string `gorm:"not null" json:"email"`
	Address string `gorm:"not null" json:"address"`
}
