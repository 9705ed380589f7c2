package settlement_snapshot

import (
	"context"
	"time"

	"parcelnet/internal/entities"
	"parcelnet/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var districtPendingAmount = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "settlement_district_pending_paise",
		Help: "Unsettled shop commission per district in paise",
	},
	[]string{"district"},
)

type Service interface {
	DistrictPending(ctx context.Context) ([]entities.DistrictPending, error)
}

// SettlementSnapshot периодически выгружает невыплаченные остатки комиссии
// по районам в метрики.
type SettlementSnapshot struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewSettlementSnapshot(log logger.Logger, service Service, interval time.Duration) *SettlementSnapshot {
	return &SettlementSnapshot{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SettlementSnapshot) TTL() time.Duration {
	return s.interval
}

func (s *SettlementSnapshot) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	pending, err := s.service.DistrictPending(ctxWithTimeout)
	if err != nil {
		return err
	}

	for _, district := range pending {
		districtPendingAmount.WithLabelValues(district.District).Set(float64(district.Pending))
	}

	s.log.With(
		logger.NewField("districts", len(pending)),
	).Info("settlement snapshot")

	return nil
}

func (s *SettlementSnapshot) Info() string {
	return "settlement snapshot"
}
