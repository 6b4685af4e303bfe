package worker

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"colfdesk/internal/timesheet"
	workererrors "colfdesk/internal/worker/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=worker_service.go -destination=mock/worker_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	GetAll(ctx context.Context) ([]WorkerResponse, error)
	GetByID(ctx context.Context, id string) (WorkerResponse, error)
	Update(ctx context.Context, id string, req UpdateWorkerRequest) (WorkerResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("worker.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worker.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error) {
	birthDate, err := timesheet.ParseDate(req.BirthDate)
	if err != nil {
		return WorkerResponse{}, workererrors.ErrInvalidBirthDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w := &Worker{
		ID:               uuid.New(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		TaxCode:          strings.ToUpper(req.TaxCode),
		BirthDate:        birthDate,
		Email:            req.Email,
		Phone:            req.Phone,
		IdentityDocument: req.IdentityDocument,
		IBAN:             req.IBAN,
	}

	if err := qtx.Create(ctx, w); err != nil {
		if isTaxCodeViolation(err) {
			return WorkerResponse{}, workererrors.ErrTaxCodeTaken
		}
		s.logger.Error("create worker persist failed", zap.Error(err))
		return WorkerResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return WorkerResponse{}, err
	}

	s.logger.Info("worker created", zap.String("worker_id", w.ID.String()))
	return mapToResponse(*w), nil
}

func (s *service) GetAll(ctx context.Context) ([]WorkerResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]WorkerResponse, len(rows))
	for i, w := range rows {
		res[i] = mapToResponse(w)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (WorkerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkerResponse{}, workererrors.ErrInvalidWorkerID
	}

	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkerResponse{}, workererrors.ErrWorkerNotFound
		}
		return WorkerResponse{}, err
	}
	return mapToResponse(*w), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateWorkerRequest) (WorkerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkerResponse{}, workererrors.ErrInvalidWorkerID
	}

	birthDate, err := timesheet.ParseDate(req.BirthDate)
	if err != nil {
		return WorkerResponse{}, workererrors.ErrInvalidBirthDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkerResponse{}, workererrors.ErrWorkerNotFound
		}
		return WorkerResponse{}, err
	}

	w.FirstName = req.FirstName
	w.LastName = req.LastName
	w.TaxCode = strings.ToUpper(req.TaxCode)
	w.BirthDate = birthDate
	w.Email = req.Email
	w.Phone = req.Phone
	w.IdentityDocument = req.IdentityDocument
	w.IBAN = req.IBAN

	if err := qtx.Update(ctx, w); err != nil {
		if isTaxCodeViolation(err) {
			return WorkerResponse{}, workererrors.ErrTaxCodeTaken
		}
		s.logger.Error("update worker persist failed", zap.Error(err))
		return WorkerResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return WorkerResponse{}, err
	}
	return mapToResponse(*w), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return workererrors.ErrInvalidWorkerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workererrors.ErrWorkerNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func isTaxCodeViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_worker_tax_code"
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "uq_worker_tax_code")
}

func mapToResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:               w.ID.String(),
		FirstName:        w.FirstName,
		LastName:         w.LastName,
		TaxCode:          w.TaxCode,
		BirthDate:        w.BirthDate.Format(timesheet.DateLayout),
		Email:            w.Email,
		Phone:            w.Phone,
		IdentityDocument: w.IdentityDocument,
		IBAN:             w.IBAN,
	}
}
