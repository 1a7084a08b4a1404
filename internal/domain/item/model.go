package item

import "time"

// Item is the single persisted entity.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Draft carries the user-editable fields of an item. It is the request body
// for both create and update; update replaces both fields.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Draft returns the editable fields of the item.
func (it Item) Draft() Draft {
	return Draft{Title: it.Title, Description: it.Description}
}
