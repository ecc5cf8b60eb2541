package mailer

// Logger определяет интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingEmail денормализованные данные бронирования для писем
type BookingEmail struct {
	BookingID       int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Date            string // DD.MM.YYYY для писем
	StartTime       string // HH:MM
	EndTime         string // HH:MM
	PackageName     string
	NumberOfPersons int
	Extras          []ExtraLine
	SelectedFood    string
	SpecialRequests string
	TotalPrice      float64
}

// ExtraLine строка дополнительной услуги в письме
type ExtraLine struct {
	Name  string
	Price float64
}
