package schedule

import (
	"context"
	"database/sql"
	"errors"

	scheduleerrors "colfdesk/internal/schedule/errors"
	"colfdesk/internal/timesheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	// Get returns the contract's schedule, creating an all-zero row on
	// first access.
	Get(ctx context.Context, contractID string) (ScheduleResponse, error)
	Put(ctx context.Context, contractID string, req UpdateScheduleRequest) (ScheduleResponse, error)
	// Week exposes the schedule as planned minutes per weekday for
	// calculation callers.
	Week(ctx context.Context, contractID string) (timesheet.WeekSchedule, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, logger: zap.L().Named("schedule.service")}
}

func (s *service) Get(ctx context.Context, contractID string) (ScheduleResponse, error) {
	ws, err := s.findOrCreate(ctx, contractID)
	if err != nil {
		return ScheduleResponse{}, err
	}
	return mapToResponse(*ws), nil
}

func (s *service) Put(ctx context.Context, contractID string, req UpdateScheduleRequest) (ScheduleResponse, error) {
	if _, err := uuid.Parse(contractID); err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidContractID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.ContractExists(ctx, contractID)
	if err != nil {
		return ScheduleResponse{}, err
	}
	if !ok {
		return ScheduleResponse{}, scheduleerrors.ErrContractNotFound
	}

	ws := &WorkSchedule{
		ID:         uuid.New(),
		ContractID: uuid.MustParse(contractID),
		MonMinutes: req.MonMinutes,
		TueMinutes: req.TueMinutes,
		WedMinutes: req.WedMinutes,
		ThuMinutes: req.ThuMinutes,
		FriMinutes: req.FriMinutes,
		SatMinutes: req.SatMinutes,
		SunMinutes: req.SunMinutes,
	}

	if err := qtx.Upsert(ctx, ws); err != nil {
		s.logger.Error("schedule upsert failed", zap.Error(err))
		return ScheduleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ScheduleResponse{}, err
	}

	s.logger.Info("schedule updated", zap.String("contract_id", contractID))
	return mapToResponse(*ws), nil
}

func (s *service) Week(ctx context.Context, contractID string) (timesheet.WeekSchedule, error) {
	ws, err := s.findOrCreate(ctx, contractID)
	if err != nil {
		return timesheet.WeekSchedule{}, err
	}
	return ToWeek(*ws), nil
}

func (s *service) findOrCreate(ctx context.Context, contractID string) (*WorkSchedule, error) {
	if _, err := uuid.Parse(contractID); err != nil {
		return nil, scheduleerrors.ErrInvalidContractID
	}

	ws, err := s.repo.FindByContractID(ctx, contractID)
	if err == nil {
		return ws, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.ContractExists(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, scheduleerrors.ErrContractNotFound
	}

	ws = &WorkSchedule{
		ID:         uuid.New(),
		ContractID: uuid.MustParse(contractID),
	}
	if err := qtx.Upsert(ctx, ws); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ws, nil
}

// ToWeek converts the stored row into the calculation core's weekday view.
func ToWeek(ws WorkSchedule) timesheet.WeekSchedule {
	return timesheet.WeekSchedule{
		Mon: ws.MonMinutes,
		Tue: ws.TueMinutes,
		Wed: ws.WedMinutes,
		Thu: ws.ThuMinutes,
		Fri: ws.FriMinutes,
		Sat: ws.SatMinutes,
		Sun: ws.SunMinutes,
	}
}

func mapToResponse(ws WorkSchedule) ScheduleResponse {
	return ScheduleResponse{
		ContractID: ws.ContractID.String(),
		MonMinutes: ws.MonMinutes,
		TueMinutes: ws.TueMinutes,
		WedMinutes: ws.WedMinutes,
		ThuMinutes: ws.ThuMinutes,
		FriMinutes: ws.FriMinutes,
		SatMinutes: ws.SatMinutes,
		SunMinutes: ws.SunMinutes,
	}
}
