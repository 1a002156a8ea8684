package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetUserBookingsWithDetails(ctx context.Context, userID int64, limit, offset int) ([]repository.UserBookingDetails, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.UserBookingDetails), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus, cancelledAt *time.Time) error {
	args := m.Called(ctx, bookingID, status, cancelledAt)
	return args.Error(0)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockCatalog) IsBookable(ctx context.Context, room *domain.Room) (bool, error) {
	args := m.Called(ctx, room)
	return args.Bool(0), args.Error(1)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedNow(s *Service, t time.Time) {
	s.now = func() time.Time { return t }
}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:            10,
		HotelID:       5,
		Name:          "Room 1",
		RoomType:      domain.RoomDouble,
		PricePerNight: 100,
		Capacity:      2,
		IsAvailable:   true,
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	room := testRoom()
	mockCatalog.On("GetRoom", mock.Anything, int64(10)).Return(room, nil)
	mockCatalog.On("IsBookable", mock.Anything, room).Return(true, nil)

	checkIn := date(2024, 6, 1)
	checkOut := date(2024, 6, 3)
	mockBookings.On("HasOverlap", mock.Anything, int64(10), checkIn, checkOut).Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockCatalog)
	fixedNow(service, date(2024, 5, 1))

	b, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   10,
		UserID:   42,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 200.0, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, int64(5), b.HotelID)
	assert.Equal(t, 2, b.Nights())
}

func TestService_CreateBooking_EmptyRange(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockCatalog))
	fixedNow(service, date(2024, 5, 1))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   10,
		UserID:   42,
		CheckIn:  date(2024, 6, 1),
		CheckOut: date(2024, 6, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestService_CreateBooking_ReversedRange(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockCatalog))
	fixedNow(service, date(2024, 5, 1))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   10,
		UserID:   42,
		CheckIn:  date(2024, 6, 3),
		CheckOut: date(2024, 6, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestService_CreateBooking_PastDate(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockCatalog))
	fixedNow(service, date(2024, 6, 2))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   10,
		UserID:   42,
		CheckIn:  date(2024, 6, 1),
		CheckOut: date(2024, 6, 3),
	})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestService_CreateBooking_SameDayCheckInAllowed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	room := testRoom()
	mockCatalog.On("GetRoom", mock.Anything, int64(10)).Return(room, nil)
	mockCatalog.On("IsBookable", mock.Anything, room).Return(true, nil)
	mockBookings.On("HasOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockCatalog)
	// late in the day; the date part still equals check-in
	fixedNow(service, time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   10,
		UserID:   42,
		CheckIn:  date(2024, 6, 1),
		CheckOut: date(2024, 6, 2),
	})
	assert.NoError(t, err)
}

func TestService_CreateBooking_UnknownRoom(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)
	mockCatalog.On("GetRoom", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockCatalog)
	fixedNow(service, date(2024, 5, 1))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   77,
		UserID:   42,
		CheckIn:  date(2024, 6, 1),
		CheckOut: date(2024, 6, 3),
	})
	assert.ErrorIs(t, err, ErrRoomNotBookable)
}

func TestService_CreateBooking_RoomWithdrawn(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	room := testRoom()
	room.IsAvailable = false
	mockCatalog.On("GetRoom", mock.Anything, int64(10)).Return(room, nil)
	mockCatalog.On("IsBookable", mock.Anything, room).Return(false, nil)

	service := NewService(mockBookings, mockCatalog)
	fixedNow(service, date(2024, 5, 1))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   10,
		UserID:   42,
		CheckIn:  date(2024, 6, 1),
		CheckOut: date(2024, 6, 3),
	})
	assert.ErrorIs(t, err, ErrRoomNotBookable)
}

func TestService_CreateBooking_Overlap(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	room := testRoom()
	mockCatalog.On("GetRoom", mock.Anything, int64(10)).Return(room, nil)
	mockCatalog.On("IsBookable", mock.Anything, room).Return(true, nil)
	mockBookings.On("HasOverlap", mock.Anything, int64(10), date(2024, 6, 2), date(2024, 6, 4)).Return(true, nil)

	service := NewService(mockBookings, mockCatalog)
	fixedNow(service, date(2024, 5, 1))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   10,
		UserID:   42,
		CheckIn:  date(2024, 6, 2),
		CheckOut: date(2024, 6, 4),
	})
	assert.ErrorIs(t, err, ErrDateConflict)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_ExclusionConstraintViolation(t *testing.T) {
	// 23P01 is the EXCLUDE constraint's own SQLSTATE; 23505 the unique-index
	// variant. Both must land as the same conflict rejection.
	for _, code := range []string{"23P01", "23505"} {
		mockBookings := new(MockBookingRepository)
		mockCatalog := new(MockCatalog)

		room := testRoom()
		mockCatalog.On("GetRoom", mock.Anything, int64(10)).Return(room, nil)
		mockCatalog.On("IsBookable", mock.Anything, room).Return(true, nil)
		mockBookings.On("HasOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)
		mockBookings.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
			Code:           code,
			ConstraintName: "idx_no_overbooking",
		})

		service := NewService(mockBookings, mockCatalog)
		fixedNow(service, date(2024, 5, 1))

		_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
			RoomID:   10,
			UserID:   42,
			CheckIn:  date(2024, 6, 1),
			CheckOut: date(2024, 6, 3),
		})
		assert.ErrorIs(t, err, ErrDateConflict, "code %s", code)
	}
}

func TestService_CreateBooking_UnrelatedConstraintNotMasked(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	room := testRoom()
	mockCatalog.On("GetRoom", mock.Anything, int64(10)).Return(room, nil)
	mockCatalog.On("IsBookable", mock.Anything, room).Return(true, nil)
	mockBookings.On("HasOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "bookings_pkey",
	})

	service := NewService(mockBookings, mockCatalog)
	fixedNow(service, date(2024, 5, 1))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   10,
		UserID:   42,
		CheckIn:  date(2024, 6, 1),
		CheckOut: date(2024, 6, 3),
	})
	assert.NotErrorIs(t, err, ErrDateConflict)
}

// fakeBookingStore backs the concurrency test with a real check-then-insert
// window so the per-room lock is what prevents the double admission.
type fakeBookingStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings []domain.Booking
}

func (f *fakeBookingStore) HasOverlap(_ context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.RoomID != roomID || b.Status == domain.BookingCancelled {
			continue
		}
		if b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingStore) Create(_ context.Context, b *domain.Booking) error {
	// widen the race window between check and insert
	time.Sleep(5 * time.Millisecond)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	b.ID = f.nextID
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookingStore) GetUserBookingsWithDetails(_ context.Context, _ int64, _, _ int) ([]repository.UserBookingDetails, error) {
	return nil, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, bookingID int64, status domain.BookingStatus, cancelledAt *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].Status = status
			if cancelledAt != nil {
				f.bookings[i].CancelledAt = cancelledAt
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestService_CreateBooking_ConcurrentOverlappingRequests(t *testing.T) {
	store := &fakeBookingStore{}
	mockCatalog := new(MockCatalog)
	room := testRoom()
	mockCatalog.On("GetRoom", mock.Anything, int64(10)).Return(room, nil)
	mockCatalog.On("IsBookable", mock.Anything, room).Return(true, nil)

	service := NewService(store, mockCatalog)
	fixedNow(service, date(2024, 5, 1))

	req := CreateBookingRequest{
		RoomID:   10,
		UserID:   42,
		CheckIn:  date(2024, 6, 1),
		CheckOut: date(2024, 6, 3),
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.CreateBooking(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var okCount, conflictCount int
	for _, err := range errs {
		switch err {
		case nil:
			okCount++
		case ErrDateConflict:
			conflictCount++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, okCount)
	assert.Equal(t, 1, conflictCount)
	assert.Len(t, store.bookings, 1)
}

func TestService_CreateBooking_BackToBackStays(t *testing.T) {
	store := &fakeBookingStore{}
	mockCatalog := new(MockCatalog)
	room := testRoom()
	mockCatalog.On("GetRoom", mock.Anything, int64(10)).Return(room, nil)
	mockCatalog.On("IsBookable", mock.Anything, room).Return(true, nil)

	service := NewService(store, mockCatalog)
	fixedNow(service, date(2024, 5, 1))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID: 10, UserID: 1, CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 3),
	})
	assert.NoError(t, err)

	// checkout day == next check-in day: no conflict
	_, err = service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID: 10, UserID: 2, CheckIn: date(2024, 6, 3), CheckOut: date(2024, 6, 5),
	})
	assert.NoError(t, err)
	assert.Len(t, store.bookings, 2)
}

func TestService_CreateBooking_CancelledBookingFreesRange(t *testing.T) {
	store := &fakeBookingStore{}
	mockCatalog := new(MockCatalog)
	room := testRoom()
	mockCatalog.On("GetRoom", mock.Anything, int64(10)).Return(room, nil)
	mockCatalog.On("IsBookable", mock.Anything, room).Return(true, nil)

	service := NewService(store, mockCatalog)
	fixedNow(service, date(2024, 5, 1))

	first, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID: 10, UserID: 1, CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 3),
	})
	assert.NoError(t, err)

	_, err = service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID: 10, UserID: 2, CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 3),
	})
	assert.ErrorIs(t, err, ErrDateConflict)

	_, err = service.Transition(context.Background(), first.ID, domain.BookingCancelled)
	assert.NoError(t, err)

	_, err = service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID: 10, UserID: 2, CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 3),
	})
	assert.NoError(t, err)
}
