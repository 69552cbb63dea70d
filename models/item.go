package models

// Item is a single catalog entry identified by its name.
type Item struct {
	// Name is the natural primary key of the item.
	Name string `json:"name"`

	// Price is the current price of the item.
	Price float64 `json:"price"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
