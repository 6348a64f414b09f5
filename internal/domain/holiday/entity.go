package holiday

// Holiday is a non-working day from the HR API calendar. Only the date
// participates in reconciliation; the name is carried for display.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}
