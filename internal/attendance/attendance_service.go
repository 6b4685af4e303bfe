package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "colfdesk/internal/attendance/errors"
	"colfdesk/internal/timesheet"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WeekProvider supplies the planned minutes per weekday for a contract.
type WeekProvider interface {
	Week(ctx context.Context, contractID string) (timesheet.WeekSchedule, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ListMonth(ctx context.Context, contractID, month string) ([]AttendanceResponse, error)
	Upsert(ctx context.Context, contractID, date string, req UpsertAttendanceRequest) (AttendanceResponse, error)
	GetJustifications(ctx context.Context, contractID, date string) ([]JustificationItemResponse, error)
	ReplaceJustifications(ctx context.Context, contractID, date string, req ReplaceJustificationsRequest) (AttendanceResponse, error)
	MonthCoverage(ctx context.Context, contractID, month string) ([]DayCoverageResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	weeks  WeekProvider
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, weeks WeekProvider) Service {
	return &service{db: db, repo: repo, weeks: weeks, logger: zap.L().Named("attendance.service")}
}

func (s *service) ListMonth(ctx context.Context, contractID, month string) ([]AttendanceResponse, error) {
	m, err := s.checkContractAndMonth(ctx, contractID, month)
	if err != nil {
		return nil, err
	}

	week, err := s.weeks.Week(ctx, contractID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByContractAndRange(ctx, contractID, m.Start(), m.End())
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a, week)
	}
	return res, nil
}

func (s *service) Upsert(ctx context.Context, contractID, date string, req UpsertAttendanceRequest) (AttendanceResponse, error) {
	day, err := s.checkContractAndDate(ctx, contractID, date)
	if err != nil {
		return AttendanceResponse{}, err
	}

	worked := 0
	if req.WorkedMinutes != nil {
		worked = *req.WorkedMinutes
	}
	if req.WorkedDuration != nil {
		minutes, ok, err := timesheet.ParseDuration(*req.WorkedDuration)
		if err != nil {
			return AttendanceResponse{}, err
		}
		if ok {
			worked = minutes
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a := &Attendance{
		ID:            uuid.New(),
		ContractID:    uuid.MustParse(contractID),
		Date:          day,
		WorkedMinutes: worked,
		Note:          req.Note,
	}

	if err := qtx.Upsert(ctx, a); err != nil {
		if isAttendanceDayViolation(err) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceConflict
		}
		s.logger.Error("attendance upsert failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	week, err := s.weeks.Week(ctx, contractID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	// Re-read to pick up the surviving row id and justifications when the
	// upsert hit an existing day.
	stored, err := s.repo.FindByContractAndDate(ctx, contractID, day)
	if err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*stored, week), nil
}

func (s *service) GetJustifications(ctx context.Context, contractID, date string) ([]JustificationItemResponse, error) {
	day, err := s.checkContractAndDate(ctx, contractID, date)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.FindByContractAndDate(ctx, contractID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []JustificationItemResponse{}, nil
		}
		return nil, err
	}
	return mapJustifications(a.Justifications), nil
}

func (s *service) ReplaceJustifications(ctx context.Context, contractID, date string, req ReplaceJustificationsRequest) (AttendanceResponse, error) {
	day, err := s.checkContractAndDate(ctx, contractID, date)
	if err != nil {
		return AttendanceResponse{}, err
	}

	items := make([]Justification, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Minutes == 0 {
			continue
		}
		items = append(items, Justification{
			ID:                  uuid.New(),
			JustificationTypeID: uuid.MustParse(item.JustificationTypeID),
			Minutes:             item.Minutes,
			Note:                item.Note,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	for _, item := range items {
		ok, err := qtx.JustificationTypeExists(ctx, item.JustificationTypeID.String())
		if err != nil {
			return AttendanceResponse{}, err
		}
		if !ok {
			return AttendanceResponse{}, attendanceerrors.ErrUnknownJustificationType
		}
	}

	a, err := qtx.FindByContractAndDate(ctx, contractID, day)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, err
		}
		// Justifications on a day with no record yet create a zero-worked row.
		a = &Attendance{
			ID:         uuid.New(),
			ContractID: uuid.MustParse(contractID),
			Date:       day,
		}
		if err := qtx.Upsert(ctx, a); err != nil {
			if isAttendanceDayViolation(err) {
				return AttendanceResponse{}, attendanceerrors.ErrAttendanceConflict
			}
			return AttendanceResponse{}, err
		}
	}

	for i := range items {
		items[i].AttendanceID = a.ID
	}

	if err := qtx.ReplaceJustifications(ctx, a.ID.String(), items); err != nil {
		s.logger.Error("replace justifications failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	week, err := s.weeks.Week(ctx, contractID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	stored, err := s.repo.FindByContractAndDate(ctx, contractID, day)
	if err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("day justifications replaced",
		zap.String("contract_id", contractID),
		zap.String("date", date),
		zap.Int("count", len(items)),
	)
	return mapToResponse(*stored, week), nil
}

func (s *service) MonthCoverage(ctx context.Context, contractID, month string) ([]DayCoverageResponse, error) {
	m, err := s.checkContractAndMonth(ctx, contractID, month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByContractAndRange(ctx, contractID, m.Start(), m.End())
	if err != nil {
		return nil, err
	}

	res := make([]DayCoverageResponse, 0, len(rows))
	for _, a := range rows {
		covered := 0
		for _, j := range a.Justifications {
			covered += j.Minutes
		}
		if covered == 0 {
			continue
		}
		res = append(res, DayCoverageResponse{
			Date:           a.Date.Format(timesheet.DateLayout),
			CoveredMinutes: covered,
		})
	}
	return res, nil
}

func (s *service) checkContractAndMonth(ctx context.Context, contractID, month string) (timesheet.Month, error) {
	if _, err := uuid.Parse(contractID); err != nil {
		return timesheet.Month{}, attendanceerrors.ErrInvalidContractID
	}

	m, err := timesheet.ParseMonth(month)
	if err != nil {
		return timesheet.Month{}, attendanceerrors.ErrInvalidMonth
	}

	ok, err := s.repo.ContractExists(ctx, contractID)
	if err != nil {
		return timesheet.Month{}, err
	}
	if !ok {
		return timesheet.Month{}, attendanceerrors.ErrContractNotFound
	}
	return m, nil
}

func (s *service) checkContractAndDate(ctx context.Context, contractID, date string) (time.Time, error) {
	if _, err := uuid.Parse(contractID); err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidContractID
	}

	day, err := timesheet.ParseDate(date)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDate
	}

	ok, err := s.repo.ContractExists(ctx, contractID)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, attendanceerrors.ErrContractNotFound
	}
	return day, nil
}

func isAttendanceDayViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_contract_date"
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "uq_attendance_contract_date")
}

func mapJustifications(items []Justification) []JustificationItemResponse {
	res := make([]JustificationItemResponse, len(items))
	for i, j := range items {
		res[i] = JustificationItemResponse{
			ID:                  j.ID.String(),
			JustificationTypeID: j.JustificationTypeID.String(),
			Minutes:             j.Minutes,
			Note:                j.Note,
		}
		if j.Type != nil {
			res[i].TypeCode = j.Type.Code
			res[i].TypeLabel = j.Type.Label
		}
	}
	return res
}

func mapToResponse(a Attendance, week timesheet.WeekSchedule) AttendanceResponse {
	justified := make([]int, len(a.Justifications))
	for i, j := range a.Justifications {
		justified[i] = j.Minutes
	}

	planned := week.MinutesOn(a.Date.UTC().Weekday())
	cov := timesheet.Coverage(planned, a.WorkedMinutes, justified)

	return AttendanceResponse{
		ID:            a.ID.String(),
		ContractID:    a.ContractID.String(),
		Date:          a.Date.Format(timesheet.DateLayout),
		WorkedMinutes: a.WorkedMinutes,
		Note:          a.Note,

		Justifications: mapJustifications(a.Justifications),

		PlannedMinutes:   planned,
		MissingMinutes:   cov.MissingMinutes,
		CoveredMinutes:   cov.CoveredMinutes,
		UncoveredMinutes: cov.UncoveredMinutes,
	}
}
