package calendar

// EventRequest данные бронирования для создания события в календаре
type EventRequest struct {
	Title          string   `json:"title"`
	Date           string   `json:"date"`       // YYYY-MM-DD
	StartTime      string   `json:"start_time"` // HH:MM
	EndTime        string   `json:"end_time"`   // HH:MM
	CustomerName   string   `json:"customer_name"`
	CustomerEmail  string   `json:"customer_email,omitempty"`
	CustomerPhone  string   `json:"customer_phone,omitempty"`
	PackageName    string   `json:"package_name"`
	NumberOfPeople int      `json:"number_of_people"`
	Extras         []string `json:"extras,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// EventResponse ответ сервиса календаря при создании события
type EventResponse struct {
	EventID string `json:"event_id"`
}

// ErrorResponse модель ошибки от сервиса календаря
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
