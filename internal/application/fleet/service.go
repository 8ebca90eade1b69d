// Package fleet 实现船只心跳、查询、删除用例以及沉没扫描
package fleet

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/beaconship/backend/internal/domain/events"
	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/beaconship/backend/internal/infrastructure/config"
	"github.com/beaconship/backend/internal/infrastructure/log"
)

// Service 船只应用服务
type Service struct {
	registry   fleet.Registry
	publisher  events.Publisher
	sweeperCfg *config.SweeperConfig
	notifyCfg  *config.NotificationConfig
	now        func() time.Time
	logger     *slog.Logger
}

// NewService 创建船只应用服务
func NewService(
	registry fleet.Registry,
	publisher events.Publisher,
	sweeperCfg *config.SweeperConfig,
	notifyCfg *config.NotificationConfig,
) *Service {
	return &Service{
		registry:   registry,
		publisher:  publisher,
		sweeperCfg: sweeperCfg,
		notifyCfg:  notifyCfg,
		now:        time.Now,
		logger:     log.NewModuleLogger("fleet", "service"),
	}
}

// Heartbeat 处理心跳
// 新船只会发布 ship.registered 事件，已知船只只刷新时间
func (s *Service) Heartbeat(ctx context.Context, req fleet.HeartbeatRequest) (fleet.UpsertResult, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	rec, result := s.registry.UpsertHeartbeat(fleet.ShipID(req.UUID), req.Hostname, req.MaxOfflineDuration())
	logger := log.FromContext(log.WithShipID(ctx, req.UUID), s.logger)

	if result == fleet.Created {
		logger.Info("Ship has registered",
			"hostname", rec.Hostname,
			"max_offline", rec.MaxOffline.String(),
		)
		s.publisher.Publish(events.NewShipEvent(events.ShipRegistered, rec, s.now()))
	} else {
		logger.Debug("Heartbeat received", "hostname", rec.Hostname)
		if rec.MaxOffline != req.MaxOfflineDuration() {
			logger.Debug("Ignoring max_offline change for a registered ship",
				"registered", rec.MaxOffline.String(),
				"requested", req.MaxOfflineDuration().String(),
			)
		}
	}
	return result, nil
}

// Get 获取单个船只
func (s *Service) Get(id string) (*ShipDTO, error) {
	rec, ok := s.registry.Get(fleet.ShipID(id))
	if !ok {
		return nil, fmt.Errorf("%w: %s", fleet.ErrShipNotFound, id)
	}
	return ToDTO(rec), nil
}

// List 获取所有船只，按主机名、uuid 排序
func (s *Service) List() []*ShipDTO {
	records := s.registry.List()
	sort.Slice(records, func(i, j int) bool {
		if records[i].Hostname != records[j].Hostname {
			return records[i].Hostname < records[j].Hostname
		}
		return records[i].ID < records[j].ID
	})

	result := make([]*ShipDTO, 0, len(records))
	for _, rec := range records {
		result = append(result, ToDTO(rec))
	}
	return result
}

// Delete 手动删除船只，不触发推送
func (s *Service) Delete(ctx context.Context, id string) (*ShipDTO, error) {
	rec, ok := s.registry.Remove(fleet.ShipID(id))
	if !ok {
		return nil, fmt.Errorf("%w: %s", fleet.ErrShipNotFound, id)
	}

	log.FromContext(log.WithShipID(ctx, id), s.logger).Info("Ship removed",
		"hostname", rec.Hostname,
	)
	s.publisher.Publish(events.NewShipEvent(events.ShipRemoved, rec, s.now()))
	return ToDTO(rec), nil
}

// Count 当前船只数量
func (s *Service) Count() int {
	return s.registry.Len()
}

// Stats 返回舰队概况
func (s *Service) Stats() *FleetStats {
	stats := &FleetStats{
		Ships:         s.registry.Len(),
		SweepInterval: fleet.DefaultSweepInterval.String(),
	}
	if s.sweeperCfg != nil && s.sweeperCfg.Interval > 0 {
		stats.SweepInterval = s.sweeperCfg.Interval.String()
	}
	if s.notifyCfg != nil {
		stats.Recipients = len(s.notifyCfg.UserTokens)
	}
	return stats
}
