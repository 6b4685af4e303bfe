package schedule

import (
	"context"
	"database/sql"
	"testing"

	scheduleerrors "colfdesk/internal/schedule/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn           func(tx *sql.Tx) Repository
	findByContractIDFn func(ctx context.Context, contractID string) (*WorkSchedule, error)
	upsertFn           func(ctx context.Context, s *WorkSchedule) error
	contractExistsFn   func(ctx context.Context, contractID string) (bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) FindByContractID(ctx context.Context, contractID string) (*WorkSchedule, error) {
	return f.findByContractIDFn(ctx, contractID)
}
func (f *fakeRepo) Upsert(ctx context.Context, s *WorkSchedule) error {
	return f.upsertFn(ctx, s)
}
func (f *fakeRepo) ContractExists(ctx context.Context, contractID string) (bool, error) {
	return f.contractExistsFn(ctx, contractID)
}

func TestService_Get_CreatesZeroRowOnFirstAccess(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	contractID := uuid.New().String()

	var stored *WorkSchedule
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.contractExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	repo.findByContractIDFn = func(ctx context.Context, id string) (*WorkSchedule, error) {
		if stored == nil {
			return nil, gorm.ErrRecordNotFound
		}
		return stored, nil
	}
	repo.upsertFn = func(ctx context.Context, s *WorkSchedule) error {
		stored = s
		return nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Get(context.Background(), contractID)
	assert.NoError(t, err)
	assert.Equal(t, contractID, resp.ContractID)
	assert.Zero(t, resp.MonMinutes)
	assert.Zero(t, resp.SunMinutes)

	// Second read finds the stored row, no new transaction.
	resp2, err := svc.Get(context.Background(), contractID)
	assert.NoError(t, err)
	assert.Equal(t, resp, resp2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Put_RoundTrip(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	contractID := uuid.New().String()

	var stored *WorkSchedule
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.contractExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	repo.findByContractIDFn = func(ctx context.Context, id string) (*WorkSchedule, error) {
		if stored == nil {
			return nil, gorm.ErrRecordNotFound
		}
		return stored, nil
	}
	repo.upsertFn = func(ctx context.Context, s *WorkSchedule) error {
		stored = s
		return nil
	}

	svc := NewService(db, repo)
	req := UpdateScheduleRequest{
		MonMinutes: 480, TueMinutes: 480, WedMinutes: 240,
		ThuMinutes: 480, FriMinutes: 480,
	}

	mock.ExpectBegin()
	mock.ExpectCommit()
	put, err := svc.Put(context.Background(), contractID, req)
	assert.NoError(t, err)

	got, err := svc.Get(context.Background(), contractID)
	assert.NoError(t, err)
	assert.Equal(t, put, got)
	assert.Equal(t, 480, got.MonMinutes)
	assert.Equal(t, 240, got.WedMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Put_UnknownContract(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.contractExistsFn = func(ctx context.Context, id string) (bool, error) { return false, nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Put(context.Background(), uuid.New().String(), UpdateScheduleRequest{})
	assert.ErrorIs(t, err, scheduleerrors.ErrContractNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Get_InvalidContractID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidContractID)
}

func TestToWeek(t *testing.T) {
	ws := WorkSchedule{MonMinutes: 60, WedMinutes: 90, SunMinutes: 30}
	week := ToWeek(ws)
	assert.Equal(t, 60, week.Mon)
	assert.Equal(t, 90, week.Wed)
	assert.Equal(t, 30, week.Sun)
	assert.Zero(t, week.Tue)
}
