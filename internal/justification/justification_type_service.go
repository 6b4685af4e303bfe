package justification

import (
	"context"

	"go.uber.org/zap"
)

type JustificationTypeResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

//go:generate mockgen -source=justification_type_service.go -destination=mock/justification_type_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]JustificationTypeResponse, error)
	SeedDefaults(ctx context.Context) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, logger: zap.L().Named("justification.service")}
}

func (s *service) GetAll(ctx context.Context) ([]JustificationTypeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]JustificationTypeResponse, len(rows))
	for i, t := range rows {
		res[i] = JustificationTypeResponse{
			ID:    t.ID.String(),
			Code:  t.Code,
			Label: t.Label,
		}
	}
	return res, nil
}

func (s *service) SeedDefaults(ctx context.Context) error {
	if err := s.repo.Seed(ctx, DefaultTypes); err != nil {
		return err
	}
	s.logger.Info("justification type catalogue seeded", zap.Int("count", len(DefaultTypes)))
	return nil
}
