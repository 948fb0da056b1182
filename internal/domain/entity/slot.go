package entity

// Slot is one bookable opening for a doctor on a given date, as computed by
// the hospital API. Slots are fetched fresh per query and never stored.
type Slot struct {
	ID   int    `json:"id"`
	Time string `json:"time"`
}

// DaySlots groups the open slots of a single calendar date.
type DaySlots struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}
