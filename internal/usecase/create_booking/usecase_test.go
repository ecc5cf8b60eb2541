package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanturapark/booking-service/internal/domain"
	blockedRepo "github.com/avanturapark/booking-service/internal/infra/storage/blockedday"
	extraRepo "github.com/avanturapark/booking-service/internal/infra/storage/extras"
	packageRepo "github.com/avanturapark/booking-service/internal/infra/storage/packages"
	"github.com/avanturapark/booking-service/pkg/types"
)

// --- фейки зависимостей ---

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	b := *booking
	b.ID = int64(len(f.created) + 1)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = append(f.created, &b)
	return &b, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakePackageRepo struct {
	packages map[int64]*domain.Package
}

func (f *fakePackageRepo) GetByID(_ context.Context, id int64) (*domain.Package, error) {
	pkg, ok := f.packages[id]
	if !ok {
		return nil, packageRepo.ErrPackageNotFound
	}
	return pkg, nil
}

type fakeExtraRepo struct {
	extras map[int64]*domain.Extra
}

func (f *fakeExtraRepo) GetByID(_ context.Context, id int64) (*domain.Extra, error) {
	extra, ok := f.extras[id]
	if !ok {
		return nil, extraRepo.ErrExtraNotFound
	}
	return extra, nil
}

type fakeBlockedDayRepo struct {
	blocked map[string]*domain.BlockedDay
}

func (f *fakeBlockedDayRepo) GetByDate(_ context.Context, date time.Time) (*domain.BlockedDay, error) {
	day, ok := f.blocked[date.Format(domain.DateFormat)]
	if !ok {
		return nil, blockedRepo.ErrBlockedDayNotFound
	}
	return day, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	createdCalls   int
	confirmedCalls int
}

func (f *fakeNotifier) BookingCreated(_ *domain.Booking)   { f.createdCalls++ }
func (f *fakeNotifier) BookingConfirmed(_ *domain.Booking) { f.confirmedCalls++ }

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- окружение теста ---

var (
	// 2026-03-07 суббота, 2026-03-09 понедельник
	testSaturday = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	testMonday   = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	testNow      = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

type testEnv struct {
	uc          *UseCase
	bookingRepo *fakeBookingRepo
	packages    *fakePackageRepo
	extras      *fakeExtraRepo
	blocked     *fakeBlockedDayRepo
	notifier    *fakeNotifier
}

func newTestEnv() *testEnv {
	env := &testEnv{
		bookingRepo: &fakeBookingRepo{},
		packages: &fakePackageRepo{packages: map[int64]*domain.Package{
			1: {
				ID:            1,
				Name:          "Spielspaß pro Stunde",
				Type:          domain.PackageHourly,
				Price:         10,
				DurationHours: 2,
				AvailableDays: domain.AllDays,
				PricingMode:   domain.PricingStandard,
				IsActive:      true,
			},
			2: {
				ID:                  2,
				Name:                "Geburtstagsparty Basic",
				Type:                domain.PackageParty,
				Price:               199,
				DurationHours:       3,
				MinPersons:          6,
				MaxPersons:          20,
				PricePerExtraPerson: 20,
				IncludesFood:        true,
				FoodOptions:         []string{"Pizza", "Schnitzel"},
				AvailableDays:       domain.FriToSun,
				PricingMode:         domain.PricingStandard,
				IsActive:            true,
			},
			3: {
				ID:            3,
				Name:          "Stillgelegtes Paket",
				Type:          domain.PackageHourly,
				Price:         10,
				AvailableDays: domain.AllDays,
				IsActive:      false,
			},
		}},
		extras: &fakeExtraRepo{extras: map[int64]*domain.Extra{
			10: {ID: 10, Name: "Tortenservice", Price: 15, IsActive: true},
			11: {ID: 11, Name: "Alte Deko", Price: 5, IsActive: false},
		}},
		blocked:  &fakeBlockedDayRepo{blocked: map[string]*domain.BlockedDay{}},
		notifier: &fakeNotifier{},
	}

	env.uc = NewUseCase(env.bookingRepo, env.packages, env.extras, env.blocked, &fakeTxManager{}, env.notifier, nopLogger{})
	env.uc.timeProvider = &fixedTime{t: testNow}
	return env
}

func publicRequest() *Request {
	return &Request{
		Channel:         ChannelPublic,
		Date:            testSaturday,
		StartTime:       "14:00",
		PackageID:       1,
		NumberOfPersons: 3,
		CustomerName:    "Anna Huber",
		CustomerEmail:   "anna@example.at",
		CustomerPhone:   "+43 660 1234567",
	}
}

// --- тесты ---

func TestExecute_PublicHappyPath(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), publicRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, types.TimeString("16:00"), resp.EndTime)
	assert.Equal(t, 30.0, resp.TotalPrice) // hourly: 10 * 3
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.PaymentOnSite, resp.PaymentMethod)
	assert.Empty(t, resp.CapacityWarning)

	assert.Equal(t, 1, env.notifier.createdCalls)
	assert.Equal(t, 0, env.notifier.confirmedCalls)
}

func TestExecute_PartyWithFoodAndExtras(t *testing.T) {
	env := newTestEnv()

	req := publicRequest()
	req.PackageID = 2
	req.NumberOfPersons = 10
	req.SelectedFood = "Pizza"
	req.ExtraIDs = []int64{10}

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// party: 199 + 2*20 доплата - 20 бесплатный + 15 extra
	assert.Equal(t, 199+2*20-20+15.0, resp.TotalPrice)
	assert.Equal(t, types.TimeString("17:00"), resp.EndTime)
	require.Len(t, resp.Extras, 1)
	assert.Equal(t, "Tortenservice", resp.Extras[0].Name)
}

func TestExecute_AdminConfirmedStatus(t *testing.T) {
	env := newTestEnv()

	req := publicRequest()
	req.Channel = ChannelAdmin
	req.Status = domain.StatusConfirmed

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, env.notifier.createdCalls)
	assert.Equal(t, 1, env.notifier.confirmedCalls)
}

func TestExecute_PublicCannotSetStatus(t *testing.T) {
	env := newTestEnv()

	req := publicRequest()
	req.Status = domain.StatusConfirmed

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PublicRequiresContact(t *testing.T) {
	env := newTestEnv()

	req := publicRequest()
	req.CustomerEmail = ""
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = publicRequest()
	req.CustomerPhone = "  "
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AdminWithoutContact(t *testing.T) {
	env := newTestEnv()

	// Персонал принимает бронирования по телефону без контактных данных
	req := publicRequest()
	req.Channel = ChannelAdmin
	req.CustomerEmail = ""
	req.CustomerPhone = ""

	_, err := env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_PastDate(t *testing.T) {
	env := newTestEnv()

	req := publicRequest()
	req.Date = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC) // суббота в прошлом

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)

	// Персонал дооформляет прошедшие визиты
	req.Channel = ChannelAdmin
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_PastDateOnIneligibleDay(t *testing.T) {
	env := newTestEnv()

	// 2026-02-23 понедельник в прошлом: пакет Fr-So отклоняется
	// по дню недели, прошедшая дата проверяется позже
	req := publicRequest()
	req.PackageID = 2
	req.NumberOfPersons = 8
	req.SelectedFood = "Pizza"
	req.Date = time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPackageNotAvailableOnDay)
	assert.NotErrorIs(t, err, ErrDateInPast)
}

func TestExecute_PackageNotFound(t *testing.T) {
	env := newTestEnv()

	req := publicRequest()
	req.PackageID = 99
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPackageNotFound)

	// Неактивный пакет неотличим от отсутствующего
	req.PackageID = 3
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestExecute_PackageNotAvailableOnDay(t *testing.T) {
	env := newTestEnv()

	req := publicRequest()
	req.PackageID = 2 // только Fr-So
	req.Date = testMonday
	req.StartTime = "14:00"
	req.NumberOfPersons = 8
	req.SelectedFood = "Pizza"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPackageNotAvailableOnDay)
}

func TestExecute_PersonsOutOfRange(t *testing.T) {
	env := newTestEnv()

	req := publicRequest()
	req.PackageID = 2
	req.SelectedFood = "Pizza"

	req.NumberOfPersons = 5 // min 6
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPersonsOutOfRange)

	req.NumberOfPersons = 21 // max 20
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPersonsOutOfRange)
}

func TestExecute_FoodSelection(t *testing.T) {
	env := newTestEnv()

	req := publicRequest()
	req.PackageID = 2
	req.NumberOfPersons = 8

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrFoodSelectionRequired)

	req.SelectedFood = "Burger"
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidFoodSelection)
}

func TestExecute_InvalidTimeSlot(t *testing.T) {
	env := newTestEnv()

	// 10:30 не входит в сетку будней (открытие 13:00)
	req := publicRequest()
	req.Date = testMonday
	req.StartTime = "10:30"
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	// 14:15 не на 30-минутной сетке
	req = publicRequest()
	req.StartTime = "14:15"
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	// 17:30 в сетке, но 2-часовой пакет не успевает до 18:30
	req = publicRequest()
	req.StartTime = "17:30"
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_BlockedDay(t *testing.T) {
	env := newTestEnv()
	env.blocked.blocked["2026-03-07"] = &domain.BlockedDay{
		ID: 1, Date: testSaturday, Reason: "Privatveranstaltung",
	}

	_, err := env.uc.Execute(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrDayBlocked)

	// Персонал бронирует закрытые дни под частные мероприятия
	req := publicRequest()
	req.Channel = ChannelAdmin
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_InactiveExtra(t *testing.T) {
	env := newTestEnv()

	req := publicRequest()
	req.ExtraIDs = []int64{11}

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrExtraNotFound)
}

func TestExecute_NoCapacity(t *testing.T) {
	env := newTestEnv()
	env.bookingRepo.existing = []*domain.Booking{
		{StartTime: "13:00", EndTime: "16:00", NumberOfPersons: 34, Status: domain.StatusConfirmed},
	}

	req := publicRequest()
	req.NumberOfPersons = 2

	_, err := env.uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCapacity)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Requested)
	assert.Equal(t, 1, capErr.FreePlaces)

	// Альтернативы не пересекаются с занятым интервалом и не содержат
	// запрошенный слот
	require.NotEmpty(t, capErr.Alternatives)
	assert.NotContains(t, capErr.Alternatives, types.TimeString("14:00"))
	assert.Contains(t, capErr.Alternatives, types.TimeString("16:00"))
	assert.Contains(t, capErr.Alternatives, types.TimeString("10:30"))

	// Побочные эффекты при отказе не ставятся в очередь
	assert.Equal(t, 0, env.notifier.createdCalls)
	assert.Empty(t, env.bookingRepo.created)
}

func TestExecute_AdminOverbooking(t *testing.T) {
	env := newTestEnv()
	env.bookingRepo.existing = []*domain.Booking{
		{StartTime: "13:00", EndTime: "16:00", NumberOfPersons: 34, Status: domain.StatusConfirmed},
	}

	req := publicRequest()
	req.Channel = ChannelAdmin
	req.NumberOfPersons = 5

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, resp.CapacityWarning, "Kapazität überschritten")
	assert.Contains(t, resp.CapacityWarning, "nur 1 Plätze frei")
	require.Len(t, env.bookingRepo.created, 1)
}

func TestExecute_CancelledBookingsReleaseCapacity(t *testing.T) {
	env := newTestEnv()
	env.bookingRepo.existing = []*domain.Booking{
		{StartTime: "13:00", EndTime: "16:00", NumberOfPersons: 35, Status: domain.StatusCancelled},
	}

	_, err := env.uc.Execute(context.Background(), publicRequest())
	assert.NoError(t, err)
}

func TestCapacityError_Unwrap(t *testing.T) {
	err := &CapacityError{Requested: 10, FreePlaces: 3}
	assert.True(t, errors.Is(err, ErrNoCapacity))
}
