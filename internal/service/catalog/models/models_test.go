package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanturapark/booking-service/internal/domain"
)

func validPackageRequest() *PackageRequest {
	return &PackageRequest{
		Name:  "Geburtstagsparty Basic",
		Type:  "party",
		Price: 199,
	}
}

func TestPackageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *PackageRequest)
		wantErr bool
	}{
		{name: "valid minimal", mutate: func(*PackageRequest) {}},
		{name: "blank name", mutate: func(r *PackageRequest) { r.Name = "  " }, wantErr: true},
		{name: "unknown type", mutate: func(r *PackageRequest) { r.Type = "season" }, wantErr: true},
		{name: "negative price", mutate: func(r *PackageRequest) { r.Price = -1 }, wantErr: true},
		{name: "negative duration", mutate: func(r *PackageRequest) { r.DurationHours = -2 }, wantErr: true},
		{name: "min above max", mutate: func(r *PackageRequest) { r.MinPersons = 10; r.MaxPersons = 5 }, wantErr: true},
		{name: "food without options", mutate: func(r *PackageRequest) { r.IncludesFood = true }, wantErr: true},
		{name: "food with options", mutate: func(r *PackageRequest) {
			r.IncludesFood = true
			r.FoodOptions = []string{"Pizza"}
		}},
		{name: "unknown pricing mode", mutate: func(r *PackageRequest) { r.PricingMode = "dynamic" }, wantErr: true},
		{name: "flat_group without rate", mutate: func(r *PackageRequest) { r.PricingMode = "flat_group" }, wantErr: true},
		{name: "flat_group complete", mutate: func(r *PackageRequest) {
			r.PricingMode = "flat_group"
			r.GroupRatePerPerson = 18
			r.GroupMinPersons = 10
		}},
		{name: "unknown weekday", mutate: func(r *PackageRequest) { r.AvailableDays = []string{"funday"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPackageRequest()
			tt.mutate(req)

			err := req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPackageRequest_ToDomain_Defaults(t *testing.T) {
	req := validPackageRequest()

	pkg, err := req.ToDomain()
	require.NoError(t, err)

	assert.Equal(t, domain.PricingStandard, pkg.PricingMode)
	assert.Equal(t, domain.AllDays, pkg.AvailableDays)
	assert.True(t, pkg.IsActive)
}

func TestPackageRequest_ToDomain_Explicit(t *testing.T) {
	inactive := false
	req := validPackageRequest()
	req.Name = "  Abenteuer-Tag  "
	req.AvailableDays = []string{"fri", "sat", "sun"}
	req.IsActive = &inactive

	pkg, err := req.ToDomain()
	require.NoError(t, err)

	assert.Equal(t, "Abenteuer-Tag", pkg.Name)
	assert.Equal(t, domain.FriToSun, pkg.AvailableDays)
	assert.False(t, pkg.IsActive)
}

func TestExtraRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ExtraRequest{Name: "Tortenservice", Price: 15}).Validate())
	assert.ErrorIs(t, (&ExtraRequest{Name: "", Price: 15}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&ExtraRequest{Name: "Deko", Price: -1}).Validate(), ErrValidation)
}

func TestFromDomainPackage_AppliesDefaults(t *testing.T) {
	pkg := &domain.Package{
		ID:            1,
		Name:          "Spielspaß pro Stunde",
		Type:          domain.PackageHourly,
		Price:         10,
		PricingMode:   domain.PricingStandard,
		AvailableDays: domain.AllDays,
		IsActive:      true,
	}

	resp := FromDomainPackage(pkg)

	// Ответ отдает эффективные значения, а не нулевые поля хранилища
	assert.Equal(t, domain.DefaultDurationHours, resp.DurationHours)
	assert.Equal(t, domain.DefaultPricePerExtraPerson, resp.PricePerExtraPerson)
	assert.Len(t, resp.AvailableDays, 7)
}
