package fleet

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/beaconship/backend/internal/domain/events"
	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/beaconship/backend/internal/infrastructure/config"
	"github.com/beaconship/backend/internal/infrastructure/log"
)

// Sweeper 沉没船只扫描器
// 按固定间隔从注册表中原子地移除超时船只，并为每条被移除的记录发布一次 ship.sunk 事件
// 发布在注册表锁释放之后进行，且是异步的，推送耗时不会拖住下一轮扫描
type Sweeper struct {
	registry  fleet.Registry
	publisher events.Publisher
	interval  time.Duration
	now       func() time.Time
	logger    *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewSweeper 创建扫描器
func NewSweeper(registry fleet.Registry, publisher events.Publisher, cfg *config.SweeperConfig) *Sweeper {
	interval := cfg.Interval
	if interval <= 0 {
		interval = fleet.DefaultSweepInterval
	}
	return &Sweeper{
		registry:  registry,
		publisher: publisher,
		interval:  interval,
		now:       time.Now,
		logger:    log.NewModuleLogger("fleet", "sweeper"),
	}
}

// Interval 返回扫描间隔
func (s *Sweeper) Interval() time.Duration {
	return s.interval
}

// Start 启动后台扫描循环，重复调用无效
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true

	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("Sweeper started", "interval", s.interval.String())
}

// Stop 停止扫描循环并等待其退出
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.running = false
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("Sweeper stopped")
}

// loop 扫描循环
func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(s.now())
		}
	}
}

// SweepOnce 执行一轮扫描，返回本轮被判定沉没的船只
func (s *Sweeper) SweepOnce(now time.Time) []fleet.ShipRecord {
	sunk := s.registry.SweepExpired(now)
	if len(sunk) == 0 {
		return nil
	}

	// 此时注册表锁已经释放，sunk 中都是值快照
	for _, ship := range sunk {
		s.logger.Info("Ship has sunk",
			"ship_id", ship.ID,
			"hostname", ship.Hostname,
			"last_seen", ship.LastSeen.Format(time.RFC3339),
			"overdue", now.Sub(ship.Deadline()).String(),
		)
		s.publisher.Publish(events.NewShipEvent(events.ShipSunk, ship, now))
	}

	s.logger.Info("Sweep evicted sunk ships",
		"count", len(sunk),
		"remaining", s.registry.Len(),
	)
	return sunk
}
