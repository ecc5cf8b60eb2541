package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPackage_Duration(t *testing.T) {
	assert.Equal(t, 2.0, (&Package{}).Duration())
	assert.Equal(t, 4.0, (&Package{DurationHours: 4}).Duration())
	assert.Equal(t, 1.5, (&Package{DurationHours: 1.5}).Duration())
}

func TestPackage_ExtraPersonPrice(t *testing.T) {
	assert.Equal(t, DefaultPricePerExtraPerson, (&Package{}).ExtraPersonPrice())
	assert.Equal(t, 25.0, (&Package{PricePerExtraPerson: 25}).ExtraPersonPrice())
}

func TestPackage_RequiresFoodSelection(t *testing.T) {
	assert.False(t, (&Package{}).RequiresFoodSelection())
	// IncludesFood без вариантов выбора не требует selected_food
	assert.False(t, (&Package{IncludesFood: true}).RequiresFoodSelection())
	assert.True(t, (&Package{IncludesFood: true, FoodOptions: []string{"Pizza", "Schnitzel"}}).RequiresFoodSelection())
}

func TestPackage_HasFoodOption(t *testing.T) {
	pkg := &Package{FoodOptions: []string{"Pizza", "Schnitzel"}}
	assert.True(t, pkg.HasFoodOption("Pizza"))
	assert.False(t, pkg.HasFoodOption("Burger"))
	assert.False(t, pkg.HasFoodOption(""))
}

func TestPackage_AvailableOn(t *testing.T) {
	pkg := &Package{AvailableDays: FriToSun}

	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.True(t, pkg.AvailableOn(friday))
	assert.False(t, pkg.AvailableOn(monday))

	unrestricted := &Package{AvailableDays: AllDays}
	assert.True(t, unrestricted.AvailableOn(monday))
}

func TestIsValidPackageType(t *testing.T) {
	assert.True(t, IsValidPackageType(PackageHourly))
	assert.True(t, IsValidPackageType(PackageParty))
	assert.True(t, IsValidPackageType(PackageDayTicket))
	assert.False(t, IsValidPackageType("season"))
}
