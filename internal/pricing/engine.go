// Package pricing computes booking totals. Pure functions, full float64
// precision internally; rounding to cents happens only at presentation.
package pricing

import (
	"github.com/avanturapark/booking-service/internal/domain"
)

// ComputeTotal вычисляет итоговую цену бронирования
//
// Правила:
//   - flat_group пакеты: от GroupMinPersons персон вся цена заменяется на
//     persons * GroupRatePerPerson (групповой тариф, бывший хардкод
//     "4-Stunden Ticket"), иначе базовая цена
//   - hourly: базовая цена умножается на число персон
//   - party: базовая цена покрывает 8 персон; свыше 8 доплата за каждого,
//     от 10 персон один человек бесплатно (обе корректировки независимы
//     и при persons >= 10 применяются одновременно)
//   - day_ticket и прочие: базовая цена как есть
//   - выбранные extras добавляются плоской суммой (не умножаются на персон)
func ComputeTotal(pkg *domain.Package, numberOfPersons int, extras []domain.ExtraSelection) float64 {
	total := baseTotal(pkg, numberOfPersons)

	for _, extra := range extras {
		total += extra.Price
	}

	return total
}

func baseTotal(pkg *domain.Package, persons int) float64 {
	// Групповой тариф вытесняет обычный расчет целиком
	if pkg.PricingMode == domain.PricingFlatGroup && persons >= pkg.GroupMinPersons && pkg.GroupMinPersons > 0 {
		return float64(persons) * pkg.GroupRatePerPerson
	}

	total := pkg.Price

	switch pkg.Type {
	case domain.PackageHourly:
		total *= float64(persons)

	case domain.PackageParty:
		if persons > domain.PartyBasePersons {
			total += float64(persons-domain.PartyBasePersons) * pkg.ExtraPersonPrice()
		}
		// Geburtstagskind gratis ab 10 Personen
		if persons >= domain.PartyFreePersonFrom {
			total -= pkg.ExtraPersonPrice()
		}
	}

	return total
}

// Round2 округляет до центов; использовать только при форматировании ответа
func Round2(v float64) float64 {
	if v < 0 {
		return float64(int64(v*100-0.5)) / 100
	}
	return float64(int64(v*100+0.5)) / 100
}
