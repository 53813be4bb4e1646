package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
	"hotel-pms/internal/dto/request"
)

// Fakes embed the repository interfaces so only the methods a test exercises
// need an implementation.

type fakeRoomRepo struct {
	repository.RoomRepository
	all             []*entity.Room
	availableByType map[entity.RoomType][]*entity.Room
	byID            map[uuid.UUID]*entity.Room
}

func (f *fakeRoomRepo) FindAvailableByType(_ context.Context, roomType entity.RoomType, _, _ time.Time) ([]*entity.Room, error) {
	return f.availableByType[roomType], nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.byID[id], nil
}

type fakeBookingRepo struct {
	repository.BookingRepository
	byID            map[uuid.UUID]*entity.Booking
	list            []*entity.Booking
	activeWithRooms []*entity.BookingWithRooms

	created            *entity.Booking
	createdGuest       *entity.Guest
	createdAssignments []*entity.BookingRoom
	createCalls        int

	statusUpdates map[uuid.UUID]entity.BookingStatus
	notesUpdates  map[uuid.UUID]string
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.byID[id], nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, _, _ *time.Time) ([]*entity.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) FindActiveWithRoomsOn(_ context.Context, _ time.Time) ([]*entity.BookingWithRooms, error) {
	return f.activeWithRooms, nil
}

func (f *fakeBookingRepo) CreateWithAssignments(_ context.Context, guest *entity.Guest, booking *entity.Booking, assignments []*entity.BookingRoom) error {
	f.createCalls++
	f.createdGuest = guest
	f.created = booking
	f.createdAssignments = assignments
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[uuid.UUID]entity.BookingStatus)
	}
	f.statusUpdates[bookingID] = status
	return nil
}

func (f *fakeBookingRepo) UpdateNotes(_ context.Context, bookingID uuid.UUID, notes string) error {
	if f.notesUpdates == nil {
		f.notesUpdates = make(map[uuid.UUID]string)
	}
	f.notesUpdates[bookingID] = notes
	return nil
}

type fakeGuestRepo struct {
	repository.GuestRepository
	all     []*entity.Guest
	byID    map[uuid.UUID]*entity.Guest
	byEmail map[string]*entity.Guest
}

func (f *fakeGuestRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Guest, error) {
	return f.byID[id], nil
}

func (f *fakeGuestRepo) FindByEmail(_ context.Context, email string) (*entity.Guest, error) {
	return f.byEmail[email], nil
}

type fakeBookingEventRepo struct {
	repository.BookingEventRepository
	events []*entity.BookingEvent
}

func (f *fakeBookingEventRepo) Create(_ context.Context, event *entity.BookingEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeBookingEventRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.BookingEvent, error) {
	var out []*entity.BookingEvent
	for _, event := range f.events {
		if event.BookingID == bookingID {
			out = append(out, event)
		}
	}
	return out, nil
}

func availableRoom(number string, roomType entity.RoomType, price string) *entity.Room {
	return &entity.Room{
		Base:          entity.Base{ID: uuid.New()},
		RoomNumber:    number,
		Type:          roomType,
		Capacity:      2,
		PricePerNight: dec(price),
		Status:        entity.RoomStatusLibre,
		Floor:         1,
		IsAvailable:   true,
	}
}

func newBookingFixture(rooms *fakeRoomRepo, bookings *fakeBookingRepo, guests *fakeGuestRepo, events *fakeBookingEventRepo) BookingService {
	repo := &repository.Repository{
		Room:         rooms,
		Booking:      bookings,
		Guest:        guests,
		BookingEvent: events,
	}
	return NewBookingService(repo, nil, zap.NewNop())
}

func createRequest(rooms []request.RoomTypeRequest) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		Guest: request.GuestRequest{
			FirstName: "Laura",
			LastName:  "Mendoza",
			Email:     "laura.mendoza@example.com",
		},
		Rooms:          rooms,
		CheckInDate:    "2026-03-10",
		CheckOutDate:   "2026-03-13",
		NumberOfGuests: 2,
	}
}

func TestCreateBooking_InsufficientAvailabilityFailsWithoutWriting(t *testing.T) {
	rooms := &fakeRoomRepo{
		availableByType: map[entity.RoomType][]*entity.Room{
			entity.RoomTypeSencilla: {
				availableRoom("101", entity.RoomTypeSencilla, "850.00"),
				availableRoom("102", entity.RoomTypeSencilla, "850.00"),
			},
		},
	}
	bookings := &fakeBookingRepo{}
	guests := &fakeGuestRepo{}
	svc := newBookingFixture(rooms, bookings, guests, &fakeBookingEventRepo{})

	req := createRequest([]request.RoomTypeRequest{{RoomType: "SENCILLA", Quantity: 5}})
	resp, err := svc.CreateBooking(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "insufficient rooms of type SENCILLA: requested 5, available 2")
	assert.Equal(t, 0, bookings.createCalls)
}

func TestCreateBooking_AssignsRoomsAndTotals(t *testing.T) {
	sencilla1 := availableRoom("101", entity.RoomTypeSencilla, "850.00")
	sencilla2 := availableRoom("102", entity.RoomTypeSencilla, "850.00")
	doble := availableRoom("201", entity.RoomTypeDoble, "1200.00")
	rooms := &fakeRoomRepo{
		availableByType: map[entity.RoomType][]*entity.Room{
			entity.RoomTypeSencilla: {sencilla1, sencilla2},
			entity.RoomTypeDoble:    {doble},
		},
	}
	bookings := &fakeBookingRepo{}
	guests := &fakeGuestRepo{}
	svc := newBookingFixture(rooms, bookings, guests, &fakeBookingEventRepo{})

	req := createRequest([]request.RoomTypeRequest{
		{RoomType: "SENCILLA", Quantity: 2},
		{RoomType: "DOBLE", Quantity: 1},
	})
	resp, err := svc.CreateBooking(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 1, bookings.createCalls)

	// unknown email, so the guest is created inside the same transaction
	require.NotNil(t, bookings.createdGuest)
	assert.Equal(t, "laura.mendoza@example.com", bookings.createdGuest.Email)

	require.Len(t, bookings.createdAssignments, 3)
	priceByRoom := map[uuid.UUID]string{
		sencilla1.ID: "850.00",
		sencilla2.ID: "850.00",
		doble.ID:     "1200.00",
	}
	for _, br := range bookings.createdAssignments {
		assert.Equal(t, bookings.created.ID, br.BookingID)
		assert.Equal(t, priceByRoom[br.RoomID], br.PriceAtTime.StringFixed(2))
	}

	// 3 nights: (850 + 850 + 1200) * 3 = 8700
	assert.Equal(t, "8700.00", bookings.created.TotalPrice.StringFixed(2))
	assert.Equal(t, entity.BookingStatusConfirmed, bookings.created.Status)
	assert.Equal(t, "8700.00", resp.TotalPrice)
	assert.Len(t, resp.Rooms, 3)
}

func TestCreateBooking_RepeatedTypeEntriesGetDistinctRooms(t *testing.T) {
	room1 := availableRoom("101", entity.RoomTypeSencilla, "850.00")
	room2 := availableRoom("102", entity.RoomTypeSencilla, "850.00")
	rooms := &fakeRoomRepo{
		availableByType: map[entity.RoomType][]*entity.Room{
			entity.RoomTypeSencilla: {room1, room2},
		},
	}
	bookings := &fakeBookingRepo{}
	svc := newBookingFixture(rooms, bookings, &fakeGuestRepo{}, &fakeBookingEventRepo{})

	req := createRequest([]request.RoomTypeRequest{
		{RoomType: "SENCILLA", Quantity: 1},
		{RoomType: "SENCILLA", Quantity: 1},
	})
	_, err := svc.CreateBooking(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, bookings.createdAssignments, 2)
	seen := map[uuid.UUID]int{}
	for _, br := range bookings.createdAssignments {
		seen[br.RoomID]++
	}
	for roomID, count := range seen {
		assert.Equal(t, 1, count, "room %s assigned %d times", roomID, count)
	}

	// a third entry has nothing left to take
	req = createRequest([]request.RoomTypeRequest{
		{RoomType: "SENCILLA", Quantity: 1},
		{RoomType: "SENCILLA", Quantity: 2},
	})
	_, err = svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient rooms of type SENCILLA: requested 2, available 1")
}

func TestCreateBooking_ReusesGuestMatchedByEmail(t *testing.T) {
	existing := &entity.Guest{
		Base:      entity.Base{ID: uuid.New()},
		FirstName: "Laura",
		LastName:  "Mendoza",
		Email:     "laura.mendoza@example.com",
	}
	rooms := &fakeRoomRepo{
		availableByType: map[entity.RoomType][]*entity.Room{
			entity.RoomTypeSencilla: {availableRoom("101", entity.RoomTypeSencilla, "850.00")},
		},
	}
	bookings := &fakeBookingRepo{}
	guests := &fakeGuestRepo{byEmail: map[string]*entity.Guest{existing.Email: existing}}
	svc := newBookingFixture(rooms, bookings, guests, &fakeBookingEventRepo{})

	req := createRequest([]request.RoomTypeRequest{{RoomType: "SENCILLA", Quantity: 1}})
	resp, err := svc.CreateBooking(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, bookings.createdGuest)
	assert.Equal(t, existing.ID, bookings.created.GuestID)
	assert.Equal(t, existing.ID.String(), resp.GuestID)
}

func TestCreateBooking_UnknownGuestIDIsBrokenReference(t *testing.T) {
	rooms := &fakeRoomRepo{
		availableByType: map[entity.RoomType][]*entity.Room{
			entity.RoomTypeSencilla: {availableRoom("101", entity.RoomTypeSencilla, "850.00")},
		},
	}
	bookings := &fakeBookingRepo{}
	svc := newBookingFixture(rooms, bookings, &fakeGuestRepo{byID: map[uuid.UUID]*entity.Guest{}}, &fakeBookingEventRepo{})

	missing := uuid.New().String()
	req := createRequest([]request.RoomTypeRequest{{RoomType: "SENCILLA", Quantity: 1}})
	req.Guest = request.GuestRequest{GuestID: &missing}

	_, err := svc.CreateBooking(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrForeignKey)
	assert.Equal(t, 0, bookings.createCalls)
}

func TestCreateBooking_CheckOutMustFollowCheckIn(t *testing.T) {
	svc := newBookingFixture(&fakeRoomRepo{}, &fakeBookingRepo{}, &fakeGuestRepo{}, &fakeBookingEventRepo{})

	req := createRequest([]request.RoomTypeRequest{{RoomType: "SENCILLA", Quantity: 1}})
	req.CheckOutDate = req.CheckInDate

	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check_out_date must be after check_in_date")
}

func TestListBookings_FiltersStatusAndSortsByCheckIn(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC) }
	later := &entity.Booking{
		Base: entity.Base{ID: uuid.New()}, BookingCode: "RSV-LATER",
		GuestID: uuid.New(), CheckInDate: day(20), CheckOutDate: day(22),
		Status: entity.BookingStatusConfirmed,
	}
	earlier := &entity.Booking{
		Base: entity.Base{ID: uuid.New()}, BookingCode: "RSV-EARLIER",
		GuestID: uuid.New(), CheckInDate: day(10), CheckOutDate: day(12),
		Status: entity.BookingStatusConfirmed,
	}
	cancelled := &entity.Booking{
		Base: entity.Base{ID: uuid.New()}, BookingCode: "RSV-CANCELLED",
		GuestID: uuid.New(), CheckInDate: day(15), CheckOutDate: day(16),
		Status: entity.BookingStatusCancelled,
	}
	bookings := &fakeBookingRepo{list: []*entity.Booking{later, earlier, cancelled}}
	svc := newBookingFixture(&fakeRoomRepo{}, bookings, &fakeGuestRepo{}, &fakeBookingEventRepo{})

	listed, err := svc.ListBookings(context.Background(), nil, nil, "confirmed", "")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "RSV-EARLIER", listed[0].BookingCode)
	assert.Equal(t, "RSV-LATER", listed[1].BookingCode)

	listed, err = svc.ListBookings(context.Background(), nil, nil, "", "desc")
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "RSV-LATER", listed[0].BookingCode)
	assert.Equal(t, "RSV-EARLIER", listed[2].BookingCode)
}

func TestUpdateStatus_UnknownBooking(t *testing.T) {
	bookings := &fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{}}
	svc := newBookingFixture(&fakeRoomRepo{}, bookings, &fakeGuestRepo{}, &fakeBookingEventRepo{})

	err := svc.UpdateStatus(context.Background(), uuid.New().String(), &request.UpdateBookingStatusRequest{Status: "checked_in"})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	err = svc.UpdateStatus(context.Background(), "not-a-uuid", &request.UpdateBookingStatusRequest{Status: "checked_in"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateNotes_UnknownBooking(t *testing.T) {
	bookings := &fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{}}
	svc := newBookingFixture(&fakeRoomRepo{}, bookings, &fakeGuestRepo{}, &fakeBookingEventRepo{})

	err := svc.UpdateNotes(context.Background(), uuid.New().String(), &request.UpdateBookingNotesRequest{Notes: "late arrival"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBooking_RejectsFinishedStates(t *testing.T) {
	cancelled := &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		BookingCode: "RSV-AAA111",
		Status:      entity.BookingStatusCancelled,
	}
	checkedOut := &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		BookingCode: "RSV-BBB222",
		Status:      entity.BookingStatusCheckedOut,
	}
	bookings := &fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{
		cancelled.ID:  cancelled,
		checkedOut.ID: checkedOut,
	}}
	svc := newBookingFixture(&fakeRoomRepo{}, bookings, &fakeGuestRepo{}, &fakeBookingEventRepo{})

	err := svc.CancelBooking(context.Background(), cancelled.ID.String(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already cancelled")

	err = svc.CancelBooking(context.Background(), checkedOut.ID.String(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already checked out")
	assert.Empty(t, bookings.statusUpdates)
}

func TestCancelBooking_WritesStatusAndAuditEvent(t *testing.T) {
	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		BookingCode: "RSV-CCC333",
		Status:      entity.BookingStatusConfirmed,
	}
	bookings := &fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{booking.ID: booking}}
	events := &fakeBookingEventRepo{}
	svc := newBookingFixture(&fakeRoomRepo{}, bookings, &fakeGuestRepo{}, events)

	userID := uuid.New()
	err := svc.CancelBooking(context.Background(), booking.ID.String(), &userID)

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, bookings.statusUpdates[booking.ID])
	require.Len(t, events.events, 1)
	assert.Equal(t, booking.ID, events.events[0].BookingID)
	assert.Equal(t, entity.EventOther, events.events[0].Type)
	require.NotNil(t, events.events[0].UserID)
	assert.Equal(t, userID, *events.events[0].UserID)
}

func TestAddEvent_RecordsAndLists(t *testing.T) {
	booking := &entity.Booking{
		Base:   entity.Base{ID: uuid.New()},
		Status: entity.BookingStatusCheckedIn,
	}
	bookings := &fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{booking.ID: booking}}
	events := &fakeBookingEventRepo{}
	svc := newBookingFixture(&fakeRoomRepo{}, bookings, &fakeGuestRepo{}, events)

	notes := "llegada tarde"
	resp, err := svc.AddEvent(context.Background(), booking.ID.String(), nil, &request.CreateBookingEventRequest{
		Type:  "CHECKIN",
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EventCheckIn, resp.Type)

	listed, err := svc.ListEvents(context.Background(), booking.ID.String())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, resp.ID, listed[0].ID)
}
