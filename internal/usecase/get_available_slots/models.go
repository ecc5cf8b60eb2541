package get_available_slots

import (
	"time"

	"github.com/avanturapark/booking-service/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date            time.Time // Дата (без времени)
	PackageID       int64     // ID пакета: определяет длительность и дни недели
	NumberOfPersons int       // Размер группы (по умолчанию 1)
}

// SlotInfo информация о слоте для формы бронирования
type SlotInfo struct {
	StartTime  types.TimeString
	EndTime    types.TimeString
	FreePlaces int
	MaxPlaces  int
	Available  bool // группа запрошенного размера помещается
	NearlyFull bool // осталось 10 мест или меньше
}

// Response модель ответа со слотами на дату
type Response struct {
	Date      time.Time
	PackageID int64
	Blocked   bool   // день закрыт для публичных бронирований
	Reason    string // причина блокировки, если есть
	Slots     []SlotInfo
}
