package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	payrollerrors "colfdesk/internal/payroll/errors"
	"colfdesk/internal/timesheet"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	EstimateKeyPrefix = "payroll:"
	estimateCacheTTL  = 5 * time.Minute
)

// CacheKey is the redis key for one contract-month estimate.
func CacheKey(contractID string, m timesheet.Month) string {
	return EstimateKeyPrefix + contractID + ":" + m.String()
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	MonthlyEstimate(ctx context.Context, contractID, month string) (MonthlyEstimateResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb, logger: zap.L().Named("payroll.service")}
}

func (s *service) MonthlyEstimate(ctx context.Context, contractID, month string) (MonthlyEstimateResponse, error) {
	if _, err := uuid.Parse(contractID); err != nil {
		return MonthlyEstimateResponse{}, payrollerrors.ErrInvalidContractID
	}

	m, err := timesheet.ParseMonth(month)
	if err != nil {
		return MonthlyEstimateResponse{}, payrollerrors.ErrInvalidMonth
	}

	cacheKey := CacheKey(contractID, m)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp MonthlyEstimateResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.compute(ctx, contractID, m)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, estimateCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return MonthlyEstimateResponse{}, err
	}

	return v.(MonthlyEstimateResponse), nil
}

func (s *service) compute(ctx context.Context, contractID string, m timesheet.Month) (MonthlyEstimateResponse, error) {
	terms, err := s.repo.GetContractTerms(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MonthlyEstimateResponse{}, payrollerrors.ErrContractNotFound
		}
		return MonthlyEstimateResponse{}, err
	}

	week, err := s.repo.GetWeek(ctx, contractID)
	if err != nil {
		return MonthlyEstimateResponse{}, err
	}

	records, err := s.repo.ListDays(ctx, contractID, m.Start(), m.End())
	if err != nil {
		return MonthlyEstimateResponse{}, err
	}

	worked := make(map[string]DayRecord, len(records))
	for _, rec := range records {
		worked[rec.Date.UTC().Format(timesheet.DateLayout)] = rec
	}

	days := make([]timesheet.Day, m.Days())
	for i := range days {
		date := m.Date(i + 1)
		day := timesheet.Day{
			PlannedMinutes: week.MinutesOn(date.Weekday()),
		}
		if rec, ok := worked[date.Format(timesheet.DateLayout)]; ok {
			day.WorkedMinutes = rec.WorkedMinutes
			day.CoveredMinutes = rec.CoveredMinutes
		}
		days[i] = day
	}

	totals := timesheet.AggregateMonth(days, terms.WeeklyHours)
	estimate := timesheet.EstimateGross(timesheet.PayTerms{
		PayType:            terms.PayType,
		HourlyRate:         terms.HourlyRate,
		MonthlySalary:      terms.MonthlySalary,
		OvertimeMultiplier: terms.OvertimeMultiplier,
		WeeklyHours:        terms.WeeklyHours,
	}, totals.OrdinaryMinutes, totals.OvertimeMinutes)

	s.logger.Debug("monthly estimate computed",
		zap.String("contract_id", contractID),
		zap.String("month", m.String()),
		zap.Float64("estimated_gross", estimate.EstimatedGross),
	)

	return MonthlyEstimateResponse{
		ContractID: contractID,
		Month:      m.String(),
		PayType:    terms.PayType,
		Totals: TotalsResponse{
			WorkedMinutes:   totals.WorkedMinutes,
			PlannedMinutes:  totals.PlannedMinutes,
			OrdinaryMinutes: totals.OrdinaryMinutes,
			OvertimeMinutes: totals.OvertimeMinutes,
			CoveredMinutes:  totals.CoveredMinutes,
			PlannedHours:    totals.PlannedHours,
			BeyondThreshold: totals.BeyondThreshold,
		},
		Estimate: EstimateResponse{
			OrdinaryHours:    estimate.OrdinaryHours,
			OvertimeHours:    estimate.OvertimeHours,
			HourlyEquivalent: estimate.HourlyEquivalent,
			EstimatedGross:   estimate.EstimatedGross,
			OvertimeUnpriced: estimate.OvertimeUnpriced,
		},
	}, nil
}
