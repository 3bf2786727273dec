package entities

// Category is a thematic grouping of questions with display metadata.
type Category struct {
	ID    string `json:"id"`    // stable identifier used in callbacks
	Name  string `json:"name"`  // display name
	Color string `json:"color"` // display color hint
	Icon  string `json:"icon"`  // emoji shown next to the name
}

// Label returns the button label for the category.
func (c Category) Label() string {
	if c.Icon == "" {
		return c.Name
	}
	return c.Icon + " " + c.Name
}
