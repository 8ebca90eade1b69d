package fleet

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// MaxMaxOffline 最大离线秒数上限，超过后换算为 time.Duration 会溢出
const MaxMaxOffline = int64(math.MaxInt64 / int64(time.Second))

// reservedShipIDs 与 /ship 下静态路由冲突的标识
var reservedShipIDs = map[string]struct{}{
	"list":   {},
	"events": {},
}

var (
	// ErrShipNotFound 船只不存在（未知或已沉没）
	ErrShipNotFound = errors.New("ship not found")
	// ErrInvalidHeartbeat 心跳内容不合法
	ErrInvalidHeartbeat = errors.New("invalid heartbeat")
)

// Validate 校验心跳请求（领域规则）
func (r HeartbeatRequest) Validate() error {
	if strings.TrimSpace(r.UUID) == "" {
		return fmt.Errorf("%w: uuid is required", ErrInvalidHeartbeat)
	}
	if strings.TrimSpace(r.Hostname) == "" {
		return fmt.Errorf("%w: hostname is required", ErrInvalidHeartbeat)
	}
	if _, reserved := reservedShipIDs[r.UUID]; reserved {
		return fmt.Errorf("%w: uuid %q is reserved", ErrInvalidHeartbeat, r.UUID)
	}
	if r.MaxOffline <= 0 {
		return fmt.Errorf("%w: max_offline must be positive, got %d", ErrInvalidHeartbeat, r.MaxOffline)
	}
	if r.MaxOffline > MaxMaxOffline {
		return fmt.Errorf("%w: max_offline must not exceed %d, got %d", ErrInvalidHeartbeat, MaxMaxOffline, r.MaxOffline)
	}
	return nil
}
