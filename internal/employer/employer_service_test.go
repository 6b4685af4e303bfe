package employer

import (
	"context"
	"database/sql"
	"testing"

	employererrors "colfdesk/internal/employer/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, e *Employer) error
	findAllFn  func(ctx context.Context) ([]Employer, error)
	findByIDFn func(ctx context.Context, id string) (*Employer, error)
	updateFn   func(ctx context.Context, e *Employer) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, e *Employer) error {
	return f.createFn(ctx, e)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employer, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employer, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, e *Employer) error {
	return f.updateFn(ctx, e)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func validCreateRequest() CreateEmployerRequest {
	return CreateEmployerRequest{
		SubjectType:      "PERSONA_FISICA",
		FirstName:        "Mario",
		LastName:         "Verdi",
		TaxCode:          "vrdmra80a01h501z",
		Email:            "mario.verdi@example.com",
		Phone:            "3331234567",
		WorkAddress:      "Via Roma 1, Milano",
		NotifyPreference: "EMAIL",
	}
}

func TestService_Create_UppercasesTaxCode(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Employer
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, e *Employer) error { saved = *e; return nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "VRDMRA80A01H501Z", saved.TaxCode)
	assert.Equal(t, "VRDMRA80A01H501Z", resp.TaxCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_DuplicateTaxCode(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, e *Employer) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employer_tax_code"}
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, employererrors.ErrTaxCodeTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, id string) (*Employer, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)
	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, employererrors.ErrEmployerNotFound)
}

func TestService_GetByID_InvalidID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, err := svc.GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, employererrors.ErrInvalidEmployerID)
}

func TestService_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	existing := Employer{ID: uuid.New()}
	deleted := false
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Employer, error) {
		e := existing
		return &e, nil
	}
	repo.deleteFn = func(ctx context.Context, id string) error {
		assert.Equal(t, existing.ID.String(), id)
		deleted = true
		return nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	assert.NoError(t, svc.Delete(context.Background(), existing.ID.String()))
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
