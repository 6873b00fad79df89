package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/payments"
)

// ======================================================
// STUBS
// ======================================================

type stubRepo struct {
	services map[uint]*models.Service
	bookings map[uint]*models.Booking

	nextID      uint
	updates     []models.Booking
	hardDeleted []uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		services: map[uint]*models.Service{},
		bookings: map[uint]*models.Booking{},
	}
}

func (r *stubRepo) GetActiveService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	return s, nil
}

func (r *stubRepo) Create(_ context.Context, b *models.Booking) error {
	r.nextID++
	b.ID = r.nextID
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *stubRepo) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	copied := *b
	return &copied, nil
}

func (r *stubRepo) Update(_ context.Context, b *models.Booking) error {
	copied := *b
	r.bookings[b.ID] = &copied
	r.updates = append(r.updates, copied)
	return nil
}

func (r *stubRepo) HardDelete(_ context.Context, id uint) error {
	if _, ok := r.bookings[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	delete(r.bookings, id)
	r.hardDeleted = append(r.hardDeleted, id)
	return nil
}

func (r *stubRepo) ListByUser(_ context.Context, userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID && !b.Deleted() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubRepo) ListAll(_ context.Context, status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Deleted() {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubRepo) ListByAssignee(_ context.Context, personnelID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.AssignedToID != nil && *b.AssignedToID == personnelID && !b.Deleted() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubRepo) ListDeleted(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Deleted() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubRepo) Stats(_ context.Context) (*domain.Stats, error) {
	return &domain.Stats{}, nil
}

type stubIntentClient struct {
	createdAmount   int64
	createdCurrency string
	createdMetadata map[string]string

	createResp   *payments.Intent
	createErr    error
	retrieveResp *payments.Intent
	retrieveErr  error
}

func (s *stubIntentClient) CreateIntent(_ context.Context, amount int64, currency string, metadata map[string]string) (*payments.Intent, error) {
	s.createdAmount = amount
	s.createdCurrency = currency
	s.createdMetadata = metadata
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createResp, nil
}

func (s *stubIntentClient) RetrieveIntent(_ context.Context, _ string) (*payments.Intent, error) {
	if s.retrieveErr != nil {
		return nil, s.retrieveErr
	}
	return s.retrieveResp, nil
}

var (
	client   = Actor{ID: 1, Role: models.RoleClient}
	stranger = Actor{ID: 2, Role: models.RoleClient}
	admin    = Actor{ID: 9, Role: models.RoleAdmin}
)

func seedBooking(r *stubRepo, b models.Booking) uint {
	r.nextID++
	b.ID = r.nextID
	if b.Status == "" {
		b.Status = string(domain.StatusPending)
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = string(domain.PaymentPending)
	}
	copied := b
	r.bookings[b.ID] = &copied
	return b.ID
}

// ======================================================
// CREATE
// ======================================================

func TestCreateBookingSnapshotsPrice(t *testing.T) {
	repo := newStubRepo()
	repo.services[5] = &models.Service{ID: 5, Price: 80, IsActive: true}

	uc := NewCreateBooking(repo, nil)
	b, err := uc.Execute(context.Background(), client, CreateBookingInput{
		ServiceID: 5,
		Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Time:      "09:00",
		Address:   "12 rue de la Paix",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.TotalPrice != 80 {
		t.Fatalf("expected price snapshot 80, got %v", b.TotalPrice)
	}
	if b.Status != string(domain.StatusPending) || b.PaymentStatus != string(domain.PaymentPending) {
		t.Fatalf("unexpected initial state: %s / %s", b.Status, b.PaymentStatus)
	}
	if b.PaymentMethod != string(domain.MethodCash) {
		t.Fatalf("expected default cash payment, got %q", b.PaymentMethod)
	}

	// A later catalog price change must not touch the snapshot.
	repo.services[5].Price = 999
	stored, _ := repo.GetByID(context.Background(), b.ID)
	if stored.TotalPrice != 80 {
		t.Fatalf("snapshot changed after service edit: %v", stored.TotalPrice)
	}
}

func TestCreateBookingUnknownService(t *testing.T) {
	uc := NewCreateBooking(newStubRepo(), nil)
	_, err := uc.Execute(context.Background(), client, CreateBookingInput{ServiceID: 404})
	if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestCreateBookingRejectsUnknownPaymentMethod(t *testing.T) {
	repo := newStubRepo()
	repo.services[5] = &models.Service{ID: 5, Price: 80}

	uc := NewCreateBooking(repo, nil)
	_, err := uc.Execute(context.Background(), client, CreateBookingInput{
		ServiceID:     5,
		PaymentMethod: "cheque",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidPaymentMethod) {
		t.Fatalf("expected invalid_payment_method, got %v", err)
	}
}

// ======================================================
// PAYMENT INTENT
// ======================================================

func TestCreatePaymentIntentOwnerOnly(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID, TotalPrice: 80})

	uc := NewCreatePaymentIntent(repo, &stubIntentClient{}, "eur")
	_, err := uc.Execute(context.Background(), stranger, id)
	if !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCreatePaymentIntentConvertsAndPersists(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID, TotalPrice: 80.5})

	intents := &stubIntentClient{
		createResp: &payments.Intent{ID: "pi_123", ClientSecret: "secret_123"},
	}

	uc := NewCreatePaymentIntent(repo, intents, "eur")
	result, err := uc.Execute(context.Background(), client, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if intents.createdAmount != 8050 {
		t.Fatalf("expected 8050 cents, got %d", intents.createdAmount)
	}
	if intents.createdCurrency != "eur" {
		t.Fatalf("expected eur, got %q", intents.createdCurrency)
	}
	if intents.createdMetadata["bookingId"] != "1" || intents.createdMetadata["userId"] != "1" {
		t.Fatalf("unexpected metadata: %v", intents.createdMetadata)
	}

	if result.ClientSecret != "secret_123" || result.BookingID != id {
		t.Fatalf("unexpected result: %+v", result)
	}

	stored, _ := repo.GetByID(context.Background(), id)
	if stored.StripePaymentIntentID != "pi_123" {
		t.Fatalf("intent id not persisted: %q", stored.StripePaymentIntentID)
	}
}

func TestCreatePaymentIntentUpstreamFailure(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID, TotalPrice: 80})

	uc := NewCreatePaymentIntent(repo, &stubIntentClient{createErr: errors.New("provider down")}, "eur")
	if _, err := uc.Execute(context.Background(), client, id); err == nil {
		t.Fatal("expected upstream error to surface")
	}
	if len(repo.updates) != 0 {
		t.Fatal("booking must not be written when the provider call fails")
	}
}

// ======================================================
// CONFIRM PAYMENT
// ======================================================

func TestConfirmPaymentRejectsMismatchedIntent(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID, StripePaymentIntentID: "pi_123"})

	uc := NewConfirmPayment(repo, &stubIntentClient{}, nil)
	_, err := uc.Execute(context.Background(), client, id, "pi_other")
	if !httperr.IsBusiness(err, httperr.CodePaymentIntentMismatch) {
		t.Fatalf("expected payment_intent_mismatch, got %v", err)
	}
}

func TestConfirmPaymentSuccessCouplesStatuses(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID, StripePaymentIntentID: "pi_123"})

	uc := NewConfirmPayment(repo, &stubIntentClient{
		retrieveResp: &payments.Intent{ID: "pi_123", Status: payments.StatusSucceeded},
	}, nil)

	b, err := uc.Execute(context.Background(), client, id, "pi_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.PaymentStatus != string(domain.PaymentCompleted) || b.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected completed/confirmed, got %s/%s", b.PaymentStatus, b.Status)
	}

	// Both fields land in a single write.
	if len(repo.updates) != 1 {
		t.Fatalf("expected one write, got %d", len(repo.updates))
	}
	written := repo.updates[0]
	if written.PaymentStatus != string(domain.PaymentCompleted) || written.Status != string(domain.StatusConfirmed) {
		t.Fatalf("write missed a field: %s/%s", written.PaymentStatus, written.Status)
	}
}

func TestConfirmPaymentNonSucceededMarksFailed(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID, StripePaymentIntentID: "pi_123"})

	uc := NewConfirmPayment(repo, &stubIntentClient{
		retrieveResp: &payments.Intent{ID: "pi_123", Status: "requires_payment_method"},
	}, nil)

	_, err := uc.Execute(context.Background(), client, id, "pi_123")
	if !httperr.IsBusiness(err, httperr.CodePaymentFailed) {
		t.Fatalf("expected payment_failed, got %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), id)
	if stored.PaymentStatus != string(domain.PaymentFailed) {
		t.Fatalf("expected failed payment persisted, got %q", stored.PaymentStatus)
	}
	if stored.Status != string(domain.StatusPending) {
		t.Fatalf("booking status must not move on failure, got %q", stored.Status)
	}
}

// ======================================================
// CANCEL
// ======================================================

func TestCancelOwnerAndAdminOnly(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID})

	uc := NewCancel(repo, nil)

	if _, err := uc.Execute(context.Background(), stranger, id); !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("expected forbidden for stranger, got %v", err)
	}

	b, err := uc.Execute(context.Background(), admin, id)
	if err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
	if b.Status != string(domain.StatusCancelled) {
		t.Fatalf("expected cancelled, got %q", b.Status)
	}
}

func TestCancelIsUnconditionalAndIdempotent(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID, Status: string(domain.StatusCompleted)})

	uc := NewCancel(repo, nil)

	for i := 0; i < 2; i++ {
		b, err := uc.Execute(context.Background(), client, id)
		if err != nil {
			t.Fatalf("cancel %d failed: %v", i, err)
		}
		if b.Status != string(domain.StatusCancelled) {
			t.Fatalf("cancel %d: got %q", i, b.Status)
		}
	}
}

// ======================================================
// STATUS / ASSIGN
// ======================================================

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID})

	uc := NewUpdateStatus(repo, nil)
	_, err := uc.Execute(context.Background(), admin, id, "done")
	if !httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestUpdateStatusAllowsAnyEnumJump(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID, Status: string(domain.StatusPending)})

	uc := NewUpdateStatus(repo, nil)
	b, err := uc.Execute(context.Background(), admin, id, string(domain.StatusCompleted))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != string(domain.StatusCompleted) {
		t.Fatalf("expected completed, got %q", b.Status)
	}
}

func TestAssignWritesAssignee(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID})

	uc := NewAssign(repo, nil)
	b, err := uc.Execute(context.Background(), admin, id, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.AssignedToID == nil || *b.AssignedToID != 42 {
		t.Fatalf("expected assignee 42, got %v", b.AssignedToID)
	}
}

// ======================================================
// SOFT DELETE / RESTORE / PURGE
// ======================================================

func TestSoftDeleteHidesAndRestoreRecovers(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{
		UserID:        client.ID,
		Status:        string(domain.StatusConfirmed),
		PaymentStatus: string(domain.PaymentCompleted),
		TotalPrice:    150,
	})

	del := NewSoftDelete(repo, nil)
	if err := del.Execute(context.Background(), client, id); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	// A hidden booking reads as missing for a second delete.
	if err := del.Execute(context.Background(), client, id); !httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
		t.Fatalf("expected booking_not_found, got %v", err)
	}

	res := NewRestore(repo, nil)
	b, err := res.Execute(context.Background(), admin, id)
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if b.Deleted() || b.DeletedAt != nil {
		t.Fatal("expected booking live after restore")
	}
	if b.Status != string(domain.StatusConfirmed) || b.PaymentStatus != string(domain.PaymentCompleted) || b.TotalPrice != 150 {
		t.Fatal("restore must return the pre-delete state untouched")
	}
}

func TestSoftDeleteForbiddenForStranger(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID})

	uc := NewSoftDelete(repo, nil)
	if err := uc.Execute(context.Background(), stranger, id); !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestRestoreRequiresDeleted(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID})

	uc := NewRestore(repo, nil)
	if _, err := uc.Execute(context.Background(), admin, id); !httperr.IsBusiness(err, httperr.CodeNotDeleted) {
		t.Fatalf("expected not_deleted, got %v", err)
	}
}

func TestPermanentDeleteRemovesRow(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID})

	uc := NewPermanentDelete(repo, nil)
	if err := uc.Execute(context.Background(), admin, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.hardDeleted) != 1 || repo.hardDeleted[0] != id {
		t.Fatalf("expected hard delete of %d, got %v", id, repo.hardDeleted)
	}

	if err := uc.Execute(context.Background(), admin, id); !httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}

// ======================================================
// QUERIES
// ======================================================

func TestGetEnforcesOwnershipAndHidesDeleted(t *testing.T) {
	repo := newStubRepo()
	id := seedBooking(repo, models.Booking{UserID: client.ID})

	q := NewQueries(repo)

	if _, err := q.Get(context.Background(), stranger, id); !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := q.Get(context.Background(), admin, id); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}

	deleted := true
	repo.bookings[id].IsDeleted = &deleted
	if _, err := q.Get(context.Background(), client, id); !httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
		t.Fatalf("expected booking_not_found for hidden booking, got %v", err)
	}
}

func TestAssignedToMeOnlyReturnsOwnAssignments(t *testing.T) {
	repo := newStubRepo()
	personnel := Actor{ID: 7, Role: models.RolePersonnel}
	other := uint(8)

	mine := personnel.ID
	seedBooking(repo, models.Booking{UserID: client.ID, AssignedToID: &mine})
	seedBooking(repo, models.Booking{UserID: client.ID, AssignedToID: &other})
	seedBooking(repo, models.Booking{UserID: client.ID})

	q := NewQueries(repo)
	bookings, err := q.AssignedToMe(context.Background(), personnel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(bookings))
	}
	if *bookings[0].AssignedToID != personnel.ID {
		t.Fatal("received a booking assigned to someone else")
	}
}
