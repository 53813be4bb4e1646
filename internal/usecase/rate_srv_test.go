package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
	"hotel-pms/internal/dto/request"
)

type fakeRateRepo struct {
	repository.RateRepository
	byID map[uuid.UUID]*entity.RoomRate

	created *entity.RoomRate
	updated *entity.RoomRate
	deleted []uuid.UUID
}

func (f *fakeRateRepo) Create(_ context.Context, rate *entity.RoomRate) error {
	f.created = rate
	return nil
}

func (f *fakeRateRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RoomRate, error) {
	return f.byID[id], nil
}

func (f *fakeRateRepo) Update(_ context.Context, rate *entity.RoomRate) error {
	f.updated = rate
	return nil
}

func (f *fakeRateRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newRateFixture(rooms *fakeRoomRepo, rates *fakeRateRepo) RateService {
	repo := &repository.Repository{
		Room: rooms,
		Rate: rates,
	}
	return NewRateService(repo, zap.NewNop())
}

func TestDeriveAmounts(t *testing.T) {
	rate := &entity.RoomRate{Subtotal: dec("1000.00")}
	rate.DeriveAmounts()

	// 16% tax, 4% service fee over the subtotal
	assertDecEqual(t, "160.00", rate.Tax)
	assertDecEqual(t, "40.00", rate.ServiceFee)
	assertDecEqual(t, "1200.00", rate.Total)
}

func TestCreateRate_DerivesAmountsFromSubtotal(t *testing.T) {
	room := availableRoom("301", entity.RoomTypeSuiteA, "2500.00")
	rooms := &fakeRoomRepo{byID: map[uuid.UUID]*entity.Room{room.ID: room}}
	rates := &fakeRateRepo{}
	svc := newRateFixture(rooms, rates)

	resp, err := svc.CreateRate(context.Background(), &request.CreateRateRequest{
		RoomID:   room.ID.String(),
		Name:     "Tarifa base",
		Type:     "BASE",
		Subtotal: "2500.00",
	})

	require.NoError(t, err)
	require.NotNil(t, rates.created)
	assertDecEqual(t, "400.00", rates.created.Tax)
	assertDecEqual(t, "100.00", rates.created.ServiceFee)
	assertDecEqual(t, "3000.00", rates.created.Total)
	assert.True(t, rates.created.IsActive)
	assert.False(t, rates.created.IsDefault)

	assert.Equal(t, "2500.00", resp.Subtotal)
	assert.Equal(t, "3000.00", resp.Total)
}

func TestCreateRate_UnknownRoom(t *testing.T) {
	svc := newRateFixture(&fakeRoomRepo{}, &fakeRateRepo{})

	_, err := svc.CreateRate(context.Background(), &request.CreateRateRequest{
		RoomID:   uuid.New().String(),
		Name:     "Tarifa base",
		Type:     "BASE",
		Subtotal: "2500.00",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateRate_RejectsNegativeSubtotal(t *testing.T) {
	room := availableRoom("301", entity.RoomTypeSuiteA, "2500.00")
	rooms := &fakeRoomRepo{byID: map[uuid.UUID]*entity.Room{room.ID: room}}
	rates := &fakeRateRepo{}
	svc := newRateFixture(rooms, rates)

	_, err := svc.CreateRate(context.Background(), &request.CreateRateRequest{
		RoomID:   room.ID.String(),
		Name:     "Tarifa base",
		Type:     "BASE",
		Subtotal: "-10.00",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "subtotal must be a non-negative decimal")
	assert.Nil(t, rates.created)
}

func TestCreateRate_ValidatesWindowAndNights(t *testing.T) {
	room := availableRoom("301", entity.RoomTypeSuiteA, "2500.00")
	rooms := &fakeRoomRepo{byID: map[uuid.UUID]*entity.Room{room.ID: room}}
	svc := newRateFixture(rooms, &fakeRateRepo{})

	from, to := "2026-06-10", "2026-06-01"
	_, err := svc.CreateRate(context.Background(), &request.CreateRateRequest{
		RoomID:    room.ID.String(),
		Name:      "Temporada alta",
		Type:      "SEASONAL",
		Subtotal:  "3000.00",
		ValidFrom: &from,
		ValidTo:   &to,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid_to must not be before valid_from")

	minN, maxN := 5, 2
	_, err = svc.CreateRate(context.Background(), &request.CreateRateRequest{
		RoomID:    room.ID.String(),
		Name:      "Temporada alta",
		Type:      "SEASONAL",
		Subtotal:  "3000.00",
		MinNights: &minN,
		MaxNights: &maxN,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_nights must not be below min_nights")
}

func TestUpdateRate_RecomputesDerivedAmounts(t *testing.T) {
	rate := &entity.RoomRate{
		Base:     entity.Base{ID: uuid.New()},
		RoomID:   uuid.New(),
		Name:     "Tarifa base",
		Type:     entity.RateTypeBase,
		Subtotal: dec("1000.00"),
		IsActive: true,
	}
	rate.DeriveAmounts()
	rates := &fakeRateRepo{byID: map[uuid.UUID]*entity.RoomRate{rate.ID: rate}}
	svc := newRateFixture(&fakeRoomRepo{}, rates)

	newSubtotal := "2000.00"
	resp, err := svc.UpdateRate(context.Background(), rate.ID.String(), &request.UpdateRateRequest{
		Subtotal: &newSubtotal,
	})

	require.NoError(t, err)
	require.NotNil(t, rates.updated)
	assertDecEqual(t, "320.00", rates.updated.Tax)
	assertDecEqual(t, "80.00", rates.updated.ServiceFee)
	assertDecEqual(t, "2400.00", rates.updated.Total)
	assert.Equal(t, "2400.00", resp.Total)
}

func TestDeleteRate(t *testing.T) {
	rate := &entity.RoomRate{
		Base:     entity.Base{ID: uuid.New()},
		Subtotal: dec("1000.00"),
	}
	rates := &fakeRateRepo{byID: map[uuid.UUID]*entity.RoomRate{rate.ID: rate}}
	svc := newRateFixture(&fakeRoomRepo{}, rates)

	require.NoError(t, svc.DeleteRate(context.Background(), rate.ID.String()))
	assert.Equal(t, []uuid.UUID{rate.ID}, rates.deleted)

	err := svc.DeleteRate(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
