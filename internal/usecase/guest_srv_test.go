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

func (f *fakeGuestRepo) FindAll(_ context.Context) ([]*entity.Guest, error) {
	return f.all, nil
}

func (f *fakeGuestRepo) FindPage(_ context.Context, limit, offset int) ([]*entity.Guest, error) {
	if offset > len(f.all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.all) {
		end = len(f.all)
	}
	return f.all[offset:end], nil
}

func (f *fakeGuestRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.all)), nil
}

func (f *fakeGuestRepo) Create(_ context.Context, guest *entity.Guest) error {
	f.all = append(f.all, guest)
	return nil
}

func newGuestFixture(guests *fakeGuestRepo) GuestService {
	repo := &repository.Repository{Guest: guests}
	return NewGuestService(repo, zap.NewNop())
}

func namedGuest(first, last, email string) *entity.Guest {
	return &entity.Guest{
		Base:      entity.Base{ID: uuid.New()},
		FirstName: first,
		LastName:  last,
		Email:     email,
	}
}

func TestCreateGuest_RejectsDuplicateEmail(t *testing.T) {
	existing := namedGuest("Ana", "Reyes", "ana.reyes@example.com")
	guests := &fakeGuestRepo{
		all:     []*entity.Guest{existing},
		byEmail: map[string]*entity.Guest{existing.Email: existing},
	}
	svc := newGuestFixture(guests)

	_, err := svc.CreateGuest(context.Background(), &request.CreateGuestRequest{
		FirstName: "Ana",
		LastName:  "Reyes",
		Email:     "ana.reyes@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.Len(t, guests.all, 1)
}

func TestListGuests_Paginates(t *testing.T) {
	guests := &fakeGuestRepo{all: []*entity.Guest{
		namedGuest("Ana", "Reyes", "ana@example.com"),
		namedGuest("Bruno", "Salas", "bruno@example.com"),
		namedGuest("Carla", "Torres", "carla@example.com"),
	}}
	svc := newGuestFixture(guests)

	page, err := svc.ListGuests(context.Background(), "", request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	page, err = svc.ListGuests(context.Background(), "", request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "carla@example.com", page.Data[0].Email)
}

func TestListGuests_SearchPagesOverFilteredSet(t *testing.T) {
	guests := &fakeGuestRepo{all: []*entity.Guest{
		namedGuest("Ana", "Reyes", "ana@example.com"),
		namedGuest("Anabel", "Rios", "anabel@example.com"),
		namedGuest("Bruno", "Salas", "bruno@example.com"),
	}}
	svc := newGuestFixture(guests)

	page, err := svc.ListGuests(context.Background(), "ana", request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(2), page.Pagination.Total)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}
