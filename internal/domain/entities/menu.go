package entities

import "time"

// Menu (cardápio) is a named collection of items. Items are owned exclusively
// by their menu and are removed with it.
type Menu struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	Items     []MenuItem `json:"items" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
	BudgetID  *uint      `json:"budget_id"`
	EventID   *uint      `json:"event_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100;not null"`
	Category string `json:"category" gorm:"size:100"`
	MenuID   uint   `json:"menu_id" gorm:"not null"`
}

// Copy returns a detached duplicate of the menu and its items.
func (m Menu) Copy() Menu {
	items := make([]MenuItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, MenuItem{Name: it.Name, Category: it.Category})
	}
	return Menu{Name: m.Name, Items: items}
}
