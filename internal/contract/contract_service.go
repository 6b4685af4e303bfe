package contract

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	contracterrors "colfdesk/internal/contract/errors"
	"colfdesk/internal/events"
	"colfdesk/internal/messaging/kafka"
	"colfdesk/internal/shared/contextutil"
	"colfdesk/internal/timesheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=contract_service.go -destination=mock/contract_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateContractRequest) (ContractResponse, error)
	GetAll(ctx context.Context, filter ListContractsFilterRequest) ([]ContractResponse, error)
	GetByID(ctx context.Context, id string) (ContractResponse, error)
	Update(ctx context.Context, id string, req UpdateContractRequest) (ContractResponse, error)
	Delete(ctx context.Context, id string) error
	Finalize(ctx context.Context, id string) (ContractResponse, error)
	Close(ctx context.Context, id string) (ContractResponse, error)
	Reopen(ctx context.Context, id string) (ContractResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, logger: zap.L().Named("contract.service")}
}

// NewServiceWithOutbox also records lifecycle events transactionally so the
// relay worker can publish them to Kafka.
func NewServiceWithOutbox(db *sql.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox, logger: zap.L().Named("contract.service")}
}

func (s *service) Create(ctx context.Context, req CreateContractRequest) (ContractResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ContractResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	terms, err := parseTerms(req.StartDate, req.EndDate)
	if err != nil {
		return ContractResponse{}, err
	}

	if err := s.checkParties(ctx, qtx, req.EmployerID, req.WorkerID); err != nil {
		return ContractResponse{}, err
	}

	thirteenth := true
	if req.Thirteenth != nil {
		thirteenth = *req.Thirteenth
	}
	multiplier := timesheet.DefaultOvertimeMultiplier
	if req.OvertimeMultiplier != nil {
		multiplier = *req.OvertimeMultiplier
	}

	c := &Contract{
		ID:                     uuid.New(),
		EmployerID:             uuid.MustParse(req.EmployerID),
		WorkerID:               uuid.MustParse(req.WorkerID),
		Status:                 StatusDraft,
		ContractType:           req.ContractType,
		Level:                  req.Level,
		Convivente:             req.Convivente,
		Thirteenth:             thirteenth,
		StartDate:              terms.startDate,
		EndDate:                terms.endDate,
		ProbationMonths:        req.ProbationMonths,
		PayType:                req.PayType,
		WeeklyHours:            req.WeeklyHours,
		HourlyRate:             req.HourlyRate,
		MonthlySalary:          req.MonthlySalary,
		BaseSalary:             req.BaseSalary,
		OvertimeMultiplier:     multiplier,
		Superminimo:            req.Superminimo,
		FoodAllowance:          req.FoodAllowance,
		AccommodationAllowance: req.AccommodationAllowance,
		Notes:                  req.Notes,
	}

	if err := qtx.Create(ctx, c); err != nil {
		s.logger.Error("create contract persist failed", zap.Error(err))
		return ContractResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ContractResponse{}, err
	}

	s.logger.Info("contract created",
		zap.String("contract_id", c.ID.String()),
		zap.String("employer_id", req.EmployerID),
		zap.String("worker_id", req.WorkerID),
	)
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, filter ListContractsFilterRequest) ([]ContractResponse, error) {
	rows, err := s.repo.FindAll(ctx, ListFilter{
		Status:     filter.Status,
		EmployerID: filter.EmployerID,
		WorkerID:   filter.WorkerID,
	})
	if err != nil {
		return nil, err
	}

	res := make([]ContractResponse, len(rows))
	for i, c := range rows {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ContractResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidContractID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContractResponse{}, contracterrors.ErrContractNotFound
		}
		return ContractResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateContractRequest) (ContractResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidContractID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ContractResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	terms, err := parseTerms(req.StartDate, req.EndDate)
	if err != nil {
		return ContractResponse{}, err
	}

	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContractResponse{}, contracterrors.ErrContractNotFound
		}
		return ContractResponse{}, err
	}

	if err := s.checkParties(ctx, qtx, req.EmployerID, req.WorkerID); err != nil {
		return ContractResponse{}, err
	}

	c.EmployerID = uuid.MustParse(req.EmployerID)
	c.WorkerID = uuid.MustParse(req.WorkerID)
	c.ContractType = req.ContractType
	c.Level = req.Level
	c.Convivente = req.Convivente
	if req.Thirteenth != nil {
		c.Thirteenth = *req.Thirteenth
	}
	c.StartDate = terms.startDate
	c.EndDate = terms.endDate
	c.ProbationMonths = req.ProbationMonths
	c.PayType = req.PayType
	c.WeeklyHours = req.WeeklyHours
	c.HourlyRate = req.HourlyRate
	c.MonthlySalary = req.MonthlySalary
	c.BaseSalary = req.BaseSalary
	if req.OvertimeMultiplier != nil {
		c.OvertimeMultiplier = *req.OvertimeMultiplier
	}
	c.Superminimo = req.Superminimo
	c.FoodAllowance = req.FoodAllowance
	c.AccommodationAllowance = req.AccommodationAllowance
	c.Notes = req.Notes

	// Preloaded refs may be stale after the re-assignment above.
	c.Employer = nil
	c.Worker = nil

	if err := qtx.Update(ctx, c); err != nil {
		s.logger.Error("update contract persist failed", zap.Error(err))
		return ContractResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ContractResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return contracterrors.ErrInvalidContractID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return contracterrors.ErrContractNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) Finalize(ctx context.Context, id string) (ContractResponse, error) {
	return s.transition(ctx, id, events.ContractFinalized, func(c *Contract) error {
		if c.Status != StatusDraft {
			return contracterrors.ErrNotDraft
		}
		c.Status = StatusActive
		return nil
	})
}

func (s *service) Close(ctx context.Context, id string) (ContractResponse, error) {
	return s.transition(ctx, id, events.ContractClosed, func(c *Contract) error {
		if c.Status != StatusActive {
			return contracterrors.ErrNotActive
		}
		c.Status = StatusClosed
		return nil
	})
}

func (s *service) Reopen(ctx context.Context, id string) (ContractResponse, error) {
	return s.transition(ctx, id, events.ContractReopened, func(c *Contract) error {
		if c.Status != StatusClosed {
			return contracterrors.ErrNotClosed
		}
		c.Status = StatusActive
		return nil
	})
}

// transition applies a guarded status change and records the lifecycle event
// in the outbox within the same transaction.
func (s *service) transition(
	ctx context.Context,
	id string,
	eventType string,
	apply func(c *Contract) error,
) (ContractResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidContractID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ContractResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContractResponse{}, contracterrors.ErrContractNotFound
		}
		return ContractResponse{}, err
	}

	if err := apply(c); err != nil {
		s.logger.Warn("contract status transition rejected",
			zap.String("contract_id", id),
			zap.String("status", c.Status),
			zap.String("event_type", eventType),
		)
		return ContractResponse{}, err
	}

	if err := qtx.Update(ctx, c); err != nil {
		s.logger.Error("contract transition persist failed", zap.Error(err))
		return ContractResponse{}, err
	}

	if s.outbox != nil {
		if err := s.recordLifecycleEvent(ctx, tx, c, eventType); err != nil {
			s.logger.Error("record contract lifecycle event failed", zap.Error(err))
			return ContractResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ContractResponse{}, err
	}

	s.logger.Info("contract status changed",
		zap.String("contract_id", c.ID.String()),
		zap.String("status", c.Status),
		zap.String("event_type", eventType),
	)
	return mapToResponse(*c), nil
}

func (s *service) recordLifecycleEvent(ctx context.Context, tx *sql.Tx, c *Contract, eventType string) error {
	payload, err := json.Marshal(events.ContractLifecycleEvent{
		EventType:  eventType,
		ContractID: c.ID.String(),
		EmployerID: c.EmployerID.String(),
		WorkerID:   c.WorkerID.String(),
		Status:     c.Status,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "contract",
		AggregateID:   c.ID.String(),
		EventType:     eventType,
		Topic:         events.ContractLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) checkParties(ctx context.Context, repo Repository, employerID, workerID string) error {
	ok, err := repo.EmployerExists(ctx, employerID)
	if err != nil {
		return err
	}
	if !ok {
		return contracterrors.ErrEmployerNotFound
	}

	ok, err = repo.WorkerExists(ctx, workerID)
	if err != nil {
		return err
	}
	if !ok {
		return contracterrors.ErrWorkerNotFound
	}
	return nil
}

type parsedTerms struct {
	startDate time.Time
	endDate   *time.Time
}

func parseTerms(startDate string, endDate *string) (parsedTerms, error) {
	start, err := timesheet.ParseDate(startDate)
	if err != nil {
		return parsedTerms{}, err
	}

	terms := parsedTerms{startDate: start}

	if endDate != nil && *endDate != "" {
		end, err := timesheet.ParseDate(*endDate)
		if err != nil {
			return parsedTerms{}, err
		}
		if end.Before(start) {
			return parsedTerms{}, contracterrors.ErrInvalidDateRange
		}
		terms.endDate = &end
	}

	return terms, nil
}

func mapToResponse(c Contract) ContractResponse {
	resp := ContractResponse{
		ID:                     c.ID.String(),
		EmployerID:             c.EmployerID.String(),
		WorkerID:               c.WorkerID.String(),
		Status:                 c.Status,
		ContractType:           c.ContractType,
		Level:                  c.Level,
		Convivente:             c.Convivente,
		Thirteenth:             c.Thirteenth,
		StartDate:              c.StartDate.Format(timesheet.DateLayout),
		ProbationMonths:        c.ProbationMonths,
		PayType:                c.PayType,
		WeeklyHours:            c.WeeklyHours,
		HourlyRate:             c.HourlyRate,
		MonthlySalary:          c.MonthlySalary,
		BaseSalary:             c.BaseSalary,
		OvertimeMultiplier:     c.OvertimeMultiplier,
		Superminimo:            c.Superminimo,
		FoodAllowance:          c.FoodAllowance,
		AccommodationAllowance: c.AccommodationAllowance,
		Notes:                  c.Notes,
	}

	if c.EndDate != nil {
		v := c.EndDate.Format(timesheet.DateLayout)
		resp.EndDate = &v
	}
	if c.Employer != nil {
		resp.EmployerName = c.Employer.FirstName + " " + c.Employer.LastName
	}
	if c.Worker != nil {
		resp.WorkerName = c.Worker.FirstName + " " + c.Worker.LastName
	}

	return resp
}
