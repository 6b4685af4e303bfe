package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"colfdesk/internal/timesheet"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CacheKeyPrefix = "dashboard:"
	cacheTTL       = 5 * time.Minute

	// MinAttendanceDays is the completeness heuristic: fewer recorded days
	// than this in the month raises an alert.
	MinAttendanceDays = 20

	// CostLoadingFactor is the flat loading applied over base salaries for
	// the total cost figure. An approximation, not an employer-cost formula.
	CostLoadingFactor = 1.3
)

// CacheKey is the redis key for one month's dashboard. The lifecycle event
// consumer deletes it when contracts change.
func CacheKey(m timesheet.Month) string {
	return CacheKeyPrefix + m.String()
}

type DashboardResponse struct {
	ReferenceDate             string   `json:"reference_date"`
	Month                     string   `json:"month"`
	Alerts                    []string `json:"alerts"`
	TotalEstimatedMonthlyCost float64  `json:"total_estimated_monthly_cost"`
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	// Generate evaluates the alert rules for the month containing the
	// reference date.
	Generate(ctx context.Context, at time.Time) (DashboardResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb, logger: zap.L().Named("dashboard.service")}
}

func (s *service) Generate(ctx context.Context, at time.Time) (DashboardResponse, error) {
	at = at.UTC()
	m := timesheet.MonthOf(at)
	cacheKey := CacheKey(m)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp DashboardResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				resp.ReferenceDate = at.Format(timesheet.DateLayout)
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.evaluate(ctx, at, m)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, cacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return DashboardResponse{}, err
	}

	resp := v.(DashboardResponse)
	resp.ReferenceDate = at.Format(timesheet.DateLayout)
	return resp, nil
}

func (s *service) evaluate(ctx context.Context, at time.Time, m timesheet.Month) (DashboardResponse, error) {
	workers, err := s.repo.ListWorkers(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	stats, err := s.repo.ListContractStats(ctx, m.Start(), m.End())
	if err != nil {
		return DashboardResponse{}, err
	}

	alerts := []string{}

	for _, w := range workers {
		if w.ContractCount == 0 {
			alerts = append(alerts, fmt.Sprintf("missing contract for %s %s", w.FirstName, w.LastName))
		}
	}

	totalCost := 0.0
	for _, c := range stats {
		totalCost += c.BaseSalary * CostLoadingFactor

		if c.AttendanceDays < MinAttendanceDays {
			alerts = append(alerts, fmt.Sprintf("incomplete attendance for contract #%s", c.ID))
		}

		if c.WeeklyHours > 0 {
			threshold := c.WeeklyHours * timesheet.AverageWeeksPerMonth
			if float64(c.WorkedMinutes)/60 > threshold {
				alerts = append(alerts, fmt.Sprintf("hours over threshold for contract #%s", c.ID))
			}
		}
	}

	s.logger.Debug("dashboard evaluated",
		zap.String("month", m.String()),
		zap.Int("alerts", len(alerts)),
	)

	return DashboardResponse{
		ReferenceDate:             at.Format(timesheet.DateLayout),
		Month:                     m.String(),
		Alerts:                    alerts,
		TotalEstimatedMonthlyCost: totalCost,
	}, nil
}
