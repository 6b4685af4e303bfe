package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	listWorkersFn       func(ctx context.Context) ([]WorkerRow, error)
	listContractStatsFn func(ctx context.Context, from, to time.Time) ([]ContractStat, error)
}

func (f *fakeRepo) ListWorkers(ctx context.Context) ([]WorkerRow, error) {
	return f.listWorkersFn(ctx)
}
func (f *fakeRepo) ListContractStats(ctx context.Context, from, to time.Time) ([]ContractStat, error) {
	return f.listContractStatsFn(ctx, from, to)
}

func TestService_Generate_Rules(t *testing.T) {
	idle := WorkerRow{ID: uuid.New(), FirstName: "Maria", LastName: "Rossi"}
	busy := WorkerRow{ID: uuid.New(), FirstName: "Anna", LastName: "Bianchi", ContractCount: 1}

	sparse := ContractStat{ID: uuid.New(), WeeklyHours: 30, BaseSalary: 1000, AttendanceDays: 5, WorkedMinutes: 2400}
	// 30h/week threshold is 129.9h; 140h worked over 22 days trips it.
	heavy := ContractStat{ID: uuid.New(), WeeklyHours: 30, BaseSalary: 1200, AttendanceDays: 22, WorkedMinutes: 140 * 60}

	repo := &fakeRepo{
		listWorkersFn: func(ctx context.Context) ([]WorkerRow, error) {
			return []WorkerRow{idle, busy}, nil
		},
		listContractStatsFn: func(ctx context.Context, from, to time.Time) ([]ContractStat, error) {
			assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), to)
			return []ContractStat{sparse, heavy}, nil
		},
	}

	svc := NewService(repo, nil)
	at := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Generate(context.Background(), at)
	assert.NoError(t, err)
	assert.Equal(t, "2026-01-15", resp.ReferenceDate)
	assert.Equal(t, "2026-01", resp.Month)

	assert.Contains(t, resp.Alerts, "missing contract for Maria Rossi")
	assert.NotContains(t, resp.Alerts, "missing contract for Anna Bianchi")
	assert.Contains(t, resp.Alerts, "incomplete attendance for contract #"+sparse.ID.String())
	assert.Contains(t, resp.Alerts, "hours over threshold for contract #"+heavy.ID.String())
	assert.Len(t, resp.Alerts, 3)

	assert.InDelta(t, (1000+1200)*1.3, resp.TotalEstimatedMonthlyCost, 0.0001)
}

func TestService_Generate_ZeroWeeklyHoursNeverOverThreshold(t *testing.T) {
	c := ContractStat{ID: uuid.New(), WeeklyHours: 0, AttendanceDays: 22, WorkedMinutes: 10000}

	repo := &fakeRepo{
		listWorkersFn: func(ctx context.Context) ([]WorkerRow, error) { return nil, nil },
		listContractStatsFn: func(ctx context.Context, from, to time.Time) ([]ContractStat, error) {
			return []ContractStat{c}, nil
		},
	}

	svc := NewService(repo, nil)
	resp, err := svc.Generate(context.Background(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Empty(t, resp.Alerts)
}

func TestService_Generate_CachesPerMonth(t *testing.T) {
	repo := &fakeRepo{
		listWorkersFn: func(ctx context.Context) ([]WorkerRow, error) { return nil, nil },
		listContractStatsFn: func(ctx context.Context, from, to time.Time) ([]ContractStat, error) {
			return []ContractStat{{ID: uuid.New(), BaseSalary: 1000, AttendanceDays: 22}}, nil
		},
	}

	rdb, mock := redismock.NewClientMock()
	key := CacheKeyPrefix + "2026-01"

	mock.ExpectGet(key).RedisNil()
	mock.Regexp().ExpectSet(key, `.*`, cacheTTL).SetVal("OK")

	svc := NewService(repo, rdb)
	at := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	first, err := svc.Generate(context.Background(), at)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	// Cached payload reused, reference date reflects the new request.
	mock.ExpectGet(key).SetVal(`{"month":"2026-01","alerts":[],"total_estimated_monthly_cost":1300}`)
	repo.listWorkersFn = func(ctx context.Context) ([]WorkerRow, error) {
		t.Fatal("repo hit despite cached value")
		return nil, nil
	}

	second, err := svc.Generate(context.Background(), at.AddDate(0, 0, 1))
	assert.NoError(t, err)
	assert.Equal(t, first.TotalEstimatedMonthlyCost, second.TotalEstimatedMonthlyCost)
	assert.Equal(t, "2026-01-16", second.ReferenceDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
