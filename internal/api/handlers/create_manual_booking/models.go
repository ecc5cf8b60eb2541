package create_manual_booking

import (
	"time"

	"github.com/avanturapark/booking-service/internal/domain"
	createBooking "github.com/avanturapark/booking-service/internal/usecase/create_booking"
	"github.com/avanturapark/booking-service/pkg/types"
)

// CreateManualBookingRequest HTTP request model.
// Контактные данные опциональны: персонал принимает бронирования по телефону.
type CreateManualBookingRequest struct {
	BookingDate     string  `json:"bookingDate"` // "2026-08-29"
	StartTime       string  `json:"startTime"`   // "14:30"
	PackageID       int64   `json:"packageId"`
	NumberOfPersons int     `json:"numberOfPersons"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail,omitempty"`
	CustomerPhone   string  `json:"customerPhone,omitempty"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	SelectedFood    string  `json:"selectedFood,omitempty"`
	ExtraIDs        []int64 `json:"extraIds,omitempty"`
	Status          string  `json:"status,omitempty"` // pending или confirmed, по умолчанию pending
}

// ExtraResponse дополнительная услуга в ответе
type ExtraResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64           `json:"id"`
	BookingDate     string          `json:"bookingDate"`
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	PackageID       int64           `json:"packageId"`
	PackageName     string          `json:"packageName"`
	NumberOfPersons int             `json:"numberOfPersons"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	SelectedFood    string          `json:"selectedFood,omitempty"`
	Extras          []ExtraResponse `json:"extras"`
	TotalPrice      float64         `json:"totalPrice"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	CapacityWarning string          `json:"capacityWarning,omitempty"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateManualBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Channel:         createBooking.ChannelAdmin,
		Date:            bookingDate,
		StartTime:       startTime,
		PackageID:       r.PackageID,
		NumberOfPersons: r.NumberOfPersons,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		SpecialRequests: r.SpecialRequests,
		SelectedFood:    r.SelectedFood,
		ExtraIDs:        r.ExtraIDs,
		Status:          domain.BookingStatus(r.Status),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	extras := make([]ExtraResponse, 0, len(resp.Extras))
	for _, e := range resp.Extras {
		extras = append(extras, ExtraResponse{Name: e.Name, Price: e.Price})
	}

	return &BookingResponse{
		ID:              resp.ID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		PackageID:       resp.PackageID,
		PackageName:     resp.PackageName,
		NumberOfPersons: resp.NumberOfPersons,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		CustomerPhone:   resp.CustomerPhone,
		SpecialRequests: resp.SpecialRequests,
		SelectedFood:    resp.SelectedFood,
		Extras:          extras,
		TotalPrice:      resp.TotalPrice,
		PaymentMethod:   resp.PaymentMethod,
		Status:          resp.Status,
		CapacityWarning: resp.CapacityWarning,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
