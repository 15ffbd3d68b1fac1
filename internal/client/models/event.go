package models

// Position is a geographical point.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Event is a volunteer event with its location and details.
// All fields except ID and Position are optional on the wire.
type Event struct {
	ID          string   `json:"id"`
	Position    Position `json:"position"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date,omitempty"`
	CreatedBy   string   `json:"createdBy,omitempty"`
}
