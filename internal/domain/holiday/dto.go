package holiday

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

type ListResponse struct {
	TotalCount int               `json:"total_count"`
	Holidays   []HolidayResponse `json:"holidays"`
}
