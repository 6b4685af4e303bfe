package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "colfdesk/internal/attendance/errors"
	"colfdesk/internal/timesheet"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                  func(tx *sql.Tx) Repository
	findByContractAndDateFn   func(ctx context.Context, contractID string, date time.Time) (*Attendance, error)
	listByContractAndRangeFn  func(ctx context.Context, contractID string, from, to time.Time) ([]Attendance, error)
	upsertFn                  func(ctx context.Context, a *Attendance) error
	replaceJustificationsFn   func(ctx context.Context, attendanceID string, items []Justification) error
	contractExistsFn          func(ctx context.Context, contractID string) (bool, error)
	justificationTypeExistsFn func(ctx context.Context, typeID string) (bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) FindByContractAndDate(ctx context.Context, contractID string, date time.Time) (*Attendance, error) {
	return f.findByContractAndDateFn(ctx, contractID, date)
}
func (f *fakeRepo) ListByContractAndRange(ctx context.Context, contractID string, from, to time.Time) ([]Attendance, error) {
	return f.listByContractAndRangeFn(ctx, contractID, from, to)
}
func (f *fakeRepo) Upsert(ctx context.Context, a *Attendance) error {
	return f.upsertFn(ctx, a)
}
func (f *fakeRepo) ReplaceJustifications(ctx context.Context, attendanceID string, items []Justification) error {
	return f.replaceJustificationsFn(ctx, attendanceID, items)
}
func (f *fakeRepo) ContractExists(ctx context.Context, contractID string) (bool, error) {
	return f.contractExistsFn(ctx, contractID)
}
func (f *fakeRepo) JustificationTypeExists(ctx context.Context, typeID string) (bool, error) {
	return f.justificationTypeExistsFn(ctx, typeID)
}

type fakeWeeks struct {
	week timesheet.WeekSchedule
}

func (f *fakeWeeks) Week(ctx context.Context, contractID string) (timesheet.WeekSchedule, error) {
	return f.week, nil
}

func baseRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.contractExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	repo.justificationTypeExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	return repo
}

func TestService_Upsert_CreatesRowWithCoverage(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	contractID := uuid.New().String()

	var stored *Attendance
	repo := baseRepo()
	repo.upsertFn = func(ctx context.Context, a *Attendance) error {
		stored = a
		return nil
	}
	repo.findByContractAndDateFn = func(ctx context.Context, cid string, date time.Time) (*Attendance, error) {
		if stored == nil {
			return nil, gorm.ErrRecordNotFound
		}
		return stored, nil
	}

	// 2026-01-05 is a Monday.
	weeks := &fakeWeeks{week: timesheet.WeekSchedule{Mon: 480}}
	svc := NewService(db, repo, weeks)

	worked := 300
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Upsert(context.Background(), contractID, "2026-01-05", UpsertAttendanceRequest{
		WorkedMinutes: &worked,
	})
	assert.NoError(t, err)
	assert.Equal(t, "2026-01-05", resp.Date)
	assert.Equal(t, 300, resp.WorkedMinutes)
	assert.Equal(t, 480, resp.PlannedMinutes)
	assert.Equal(t, 180, resp.MissingMinutes)
	assert.Equal(t, 180, resp.UncoveredMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Upsert_DurationStringWins(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var stored *Attendance
	repo := baseRepo()
	repo.upsertFn = func(ctx context.Context, a *Attendance) error { stored = a; return nil }
	repo.findByContractAndDateFn = func(ctx context.Context, cid string, date time.Time) (*Attendance, error) {
		return stored, nil
	}

	svc := NewService(db, repo, &fakeWeeks{})

	worked := 60
	duration := "08:30"
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Upsert(context.Background(), uuid.New().String(), "2026-01-05", UpsertAttendanceRequest{
		WorkedMinutes:  &worked,
		WorkedDuration: &duration,
	})
	assert.NoError(t, err)
	assert.Equal(t, 510, resp.WorkedMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Upsert_BadDuration(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := baseRepo()
	svc := NewService(db, repo, &fakeWeeks{})

	duration := "08:65"
	_, err := svc.Upsert(context.Background(), uuid.New().String(), "2026-01-05", UpsertAttendanceRequest{
		WorkedDuration: &duration,
	})
	assert.ErrorIs(t, err, timesheet.ErrInvalidDurationFormat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Upsert_InvalidDate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, baseRepo(), &fakeWeeks{})
	_, err := svc.Upsert(context.Background(), uuid.New().String(), "05/01/2026", UpsertAttendanceRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
}

func TestService_ListMonth_ComputesPerDayCoverage(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	contractID := uuid.New()
	mon := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	tue := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)

	repo := baseRepo()
	repo.listByContractAndRangeFn = func(ctx context.Context, cid string, from, to time.Time) ([]Attendance, error) {
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), to)
		return []Attendance{
			{ID: uuid.New(), ContractID: contractID, Date: mon, WorkedMinutes: 480},
			{ID: uuid.New(), ContractID: contractID, Date: tue, WorkedMinutes: 0, Justifications: []Justification{
				{ID: uuid.New(), JustificationTypeID: uuid.New(), Minutes: 240},
			}},
		}, nil
	}

	weeks := &fakeWeeks{week: timesheet.WeekSchedule{Mon: 480, Tue: 480}}
	svc := NewService(db, repo, weeks)

	rows, err := svc.ListMonth(context.Background(), contractID.String(), "2026-01")
	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Zero(t, rows[0].MissingMinutes)
		assert.Equal(t, 480, rows[1].MissingMinutes)
		assert.Equal(t, 240, rows[1].CoveredMinutes)
		assert.Equal(t, 240, rows[1].UncoveredMinutes)
	}
}

func TestService_ListMonth_InvalidMonth(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, baseRepo(), &fakeWeeks{})
	_, err := svc.ListMonth(context.Background(), uuid.New().String(), "January 2026")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMonth)
}

func TestService_ReplaceJustifications_SkipsZeroMinuteItems(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	existing := &Attendance{ID: uuid.New(), ContractID: uuid.New(), Date: day, WorkedMinutes: 120}

	var replaced []Justification
	repo := baseRepo()
	repo.findByContractAndDateFn = func(ctx context.Context, cid string, date time.Time) (*Attendance, error) {
		a := *existing
		a.Justifications = replaced
		return &a, nil
	}
	repo.replaceJustificationsFn = func(ctx context.Context, attendanceID string, items []Justification) error {
		assert.Equal(t, existing.ID.String(), attendanceID)
		replaced = items
		return nil
	}

	svc := NewService(db, repo, &fakeWeeks{week: timesheet.WeekSchedule{Mon: 480}})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ReplaceJustifications(context.Background(), existing.ContractID.String(), "2026-01-05", ReplaceJustificationsRequest{
		Items: []JustificationItemRequest{
			{JustificationTypeID: uuid.New().String(), Minutes: 120},
			{JustificationTypeID: uuid.New().String(), Minutes: 0},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, replaced, 1)
	assert.Equal(t, 120, resp.CoveredMinutes)
	assert.Equal(t, 240, resp.UncoveredMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ReplaceJustifications_UnknownType(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := baseRepo()
	repo.justificationTypeExistsFn = func(ctx context.Context, id string) (bool, error) { return false, nil }

	svc := NewService(db, repo, &fakeWeeks{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ReplaceJustifications(context.Background(), uuid.New().String(), "2026-01-05", ReplaceJustificationsRequest{
		Items: []JustificationItemRequest{
			{JustificationTypeID: uuid.New().String(), Minutes: 60},
		},
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrUnknownJustificationType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetJustifications_NoRowYieldsEmpty(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := baseRepo()
	repo.findByContractAndDateFn = func(ctx context.Context, cid string, date time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, &fakeWeeks{})
	items, err := svc.GetJustifications(context.Background(), uuid.New().String(), "2026-01-05")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_MonthCoverage_OnlyJustifiedDays(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := baseRepo()
	repo.listByContractAndRangeFn = func(ctx context.Context, cid string, from, to time.Time) ([]Attendance, error) {
		return []Attendance{
			{Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), WorkedMinutes: 480},
			{Date: time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), Justifications: []Justification{
				{Minutes: 120}, {Minutes: 60},
			}},
		}, nil
	}

	svc := NewService(db, repo, &fakeWeeks{})
	rows, err := svc.MonthCoverage(context.Background(), uuid.New().String(), "2026-01")
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "2026-01-06", rows[0].Date)
		assert.Equal(t, 180, rows[0].CoveredMinutes)
	}
}
