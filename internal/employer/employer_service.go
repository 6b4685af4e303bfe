package employer

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	employererrors "colfdesk/internal/employer/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employer_service.go -destination=mock/employer_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployerRequest) (EmployerResponse, error)
	GetAll(ctx context.Context) ([]EmployerResponse, error)
	GetByID(ctx context.Context, id string) (EmployerResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployerRequest) (EmployerResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employer.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployerRequest) (EmployerResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e := &Employer{
		ID:               uuid.New(),
		SubjectType:      req.SubjectType,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		TaxCode:          strings.ToUpper(req.TaxCode),
		Email:            req.Email,
		Phone:            req.Phone,
		WorkAddress:      req.WorkAddress,
		NotifyPreference: req.NotifyPreference,
	}

	if err := qtx.Create(ctx, e); err != nil {
		if isTaxCodeViolation(err) {
			return EmployerResponse{}, employererrors.ErrTaxCodeTaken
		}
		s.logger.Error("create employer persist failed", zap.Error(err))
		return EmployerResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployerResponse{}, err
	}

	s.logger.Info("employer created", zap.String("employer_id", e.ID.String()))
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployerResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]EmployerResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployerResponse{}, employererrors.ErrInvalidEmployerID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployerResponse{}, employererrors.ErrEmployerNotFound
		}
		return EmployerResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployerRequest) (EmployerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployerResponse{}, employererrors.ErrInvalidEmployerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployerResponse{}, employererrors.ErrEmployerNotFound
		}
		return EmployerResponse{}, err
	}

	e.SubjectType = req.SubjectType
	e.FirstName = req.FirstName
	e.LastName = req.LastName
	e.TaxCode = strings.ToUpper(req.TaxCode)
	e.Email = req.Email
	e.Phone = req.Phone
	e.WorkAddress = req.WorkAddress
	e.NotifyPreference = req.NotifyPreference

	if err := qtx.Update(ctx, e); err != nil {
		if isTaxCodeViolation(err) {
			return EmployerResponse{}, employererrors.ErrTaxCodeTaken
		}
		s.logger.Error("update employer persist failed", zap.Error(err))
		return EmployerResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployerResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employererrors.ErrInvalidEmployerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employererrors.ErrEmployerNotFound
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
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employer_tax_code"
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "uq_employer_tax_code")
}

func mapToResponse(e Employer) EmployerResponse {
	return EmployerResponse{
		ID:               e.ID.String(),
		SubjectType:      e.SubjectType,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		TaxCode:          e.TaxCode,
		Email:            e.Email,
		Phone:            e.Phone,
		WorkAddress:      e.WorkAddress,
		NotifyPreference: e.NotifyPreference,
	}
}
