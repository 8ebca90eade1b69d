// Package fleet 定义船只（被监控的远端 agent）的领域模型
package fleet

import "time"

// ShipID 船只唯一标识（由 agent 生成的不透明字符串，通常为 UUID）
type ShipID string

// ShipRecord 一条存活船只的记录
// 以值的形式在各层之间传递，调用方拿到的始终是快照
type ShipRecord struct {
	// ID 船只标识，记录生命周期内不变
	ID ShipID `json:"uuid"`
	// Hostname 注册时上报的主机名，仅用于展示
	Hostname string `json:"hostname"`
	// MaxOffline 最大离线时长，首次注册时确定，后续心跳不会修改
	MaxOffline time.Duration `json:"-"`
	// LastSeen 最近一次被接受的心跳时间，单调不减
	LastSeen time.Time `json:"last_seen"`
	// RegisteredAt 首次注册时间
	RegisteredAt time.Time `json:"registered_at"`
}

// Deadline 返回船只被判定沉没的时间点
func (r ShipRecord) Deadline() time.Time {
	return r.LastSeen.Add(r.MaxOffline)
}

// Expired 判断在 now 时刻是否已超时：now >= LastSeen + MaxOffline
func (r ShipRecord) Expired(now time.Time) bool {
	return !now.Before(r.Deadline())
}

// UpsertResult 心跳写入结果
type UpsertResult int

const (
	// Created 新注册的船只
	Created UpsertResult = iota + 1
	// Refreshed 已有船只，仅刷新 LastSeen
	Refreshed
)

// String 返回结果名称
func (u UpsertResult) String() string {
	switch u {
	case Created:
		return "created"
	case Refreshed:
		return "refreshed"
	default:
		return "unknown"
	}
}

// HeartbeatRequest 心跳请求（"Ship is alive"）
type HeartbeatRequest struct {
	// Hostname 主机名
	Hostname string `json:"hostname" binding:"required"`
	// MaxOffline 最大离线秒数
	MaxOffline int64 `json:"max_offline" binding:"required"`
	// UUID 船只标识
	UUID string `json:"uuid" binding:"required"`
}

// MaxOfflineDuration 返回最大离线时长
func (r HeartbeatRequest) MaxOfflineDuration() time.Duration {
	return time.Duration(r.MaxOffline) * time.Second
}

// 常量定义
const (
	// DefaultSweepInterval 默认扫描间隔
	DefaultSweepInterval = 5 * time.Second
	// DefaultHeartbeatInterval agent 默认心跳间隔
	DefaultHeartbeatInterval = 10 * time.Second
	// DefaultMaxOffline agent 默认最大离线时长
	DefaultMaxOffline = 30 * time.Second
	// MinMaxOfflineFactor 建议 MaxOffline 至少为心跳间隔的倍数
	MinMaxOfflineFactor = 3
)
