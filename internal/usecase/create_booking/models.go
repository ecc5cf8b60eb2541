package create_booking

import (
	"time"

	"github.com/avanturapark/booking-service/internal/domain"
	"github.com/avanturapark/booking-service/pkg/types"
)

// Channel источник запроса на бронирование
type Channel string

const (
	// ChannelPublic публичная форма на сайте: строгие проверки,
	// обязательные контактные данные
	ChannelPublic Channel = "public"

	// ChannelAdmin ручное бронирование персоналом: мягкие проверки,
	// переполнение допускается с предупреждением
	ChannelAdmin Channel = "admin"
)

// Request модель запроса на создание бронирования
type Request struct {
	Channel         Channel              // Источник: public или admin
	Date            time.Time            // Дата бронирования (без времени)
	StartTime       types.TimeString     // Время начала слота (например, "14:30")
	PackageID       int64                // ID выбранного пакета
	NumberOfPersons int                  // Размер группы
	CustomerName    string               // Имя клиента
	CustomerEmail   string               // E-mail (обязателен для public)
	CustomerPhone   string               // Телефон (обязателен для public)
	SpecialRequests string               // Пожелания клиента (опционально)
	SelectedFood    string               // Выбор еды для пакетов с питанием
	ExtraIDs        []int64              // ID дополнительных услуг
	Status          domain.BookingStatus // Начальный статус (только admin; по умолчанию pending)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	PackageID       int64
	PackageName     string
	NumberOfPersons int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	SpecialRequests string
	SelectedFood    string
	Extras          []domain.ExtraSelection
	TotalPrice      float64
	PaymentMethod   string
	Status          string

	// CapacityWarning заполняется для admin-бронирований, превысивших
	// вместимость парка
	CapacityWarning string

	CreatedAt time.Time
	UpdatedAt time.Time
}
