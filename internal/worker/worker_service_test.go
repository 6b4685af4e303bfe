package worker

import (
	"context"
	"database/sql"
	"testing"

	workererrors "colfdesk/internal/worker/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, w *Worker) error
	findAllFn  func(ctx context.Context) ([]Worker, error)
	findByIDFn func(ctx context.Context, id string) (*Worker, error)
	updateFn   func(ctx context.Context, w *Worker) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, w *Worker) error {
	return f.createFn(ctx, w)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Worker, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Worker, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, w *Worker) error {
	return f.updateFn(ctx, w)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func validCreateRequest() CreateWorkerRequest {
	return CreateWorkerRequest{
		FirstName:        "Lucia",
		LastName:         "Esposito",
		TaxCode:          "spslcu85t45f839k",
		BirthDate:        "1985-12-05",
		Email:            "lucia.esposito@example.com",
		Phone:            "3479876543",
		IdentityDocument: "CA12345XY",
	}
}

func TestService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Worker
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, w *Worker) error { saved = *w; return nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "SPSLCU85T45F839K", saved.TaxCode)
	assert.Equal(t, "1985-12-05", resp.BirthDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InvalidBirthDate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})

	req := validCreateRequest()
	req.BirthDate = "05/12/1985"
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, workererrors.ErrInvalidBirthDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_DuplicateTaxCode(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, w *Worker) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_worker_tax_code"}
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, workererrors.ErrTaxCodeTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Worker, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	req := UpdateWorkerRequest(validCreateRequest())
	_, err := svc.Update(context.Background(), uuid.New().String(), req)
	assert.ErrorIs(t, err, workererrors.ErrWorkerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetByID_InvalidID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, workererrors.ErrInvalidWorkerID)
}
