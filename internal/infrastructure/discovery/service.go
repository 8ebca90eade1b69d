// Package discovery 通过 mDNS 在局域网内广播和发现 beacon
package discovery

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

const (
	// ServiceType beacon 的 mDNS 服务类型
	ServiceType = "_beaconship._tcp"
	// Domain mDNS 域
	Domain = "local."
	// ProtocolVersion TXT 记录中的协议版本
	ProtocolVersion = "1"
)

// ErrNoBeacon 局域网内没有发现 beacon
var ErrNoBeacon = errors.New("no beacon found")

// ServiceInfo mDNS 服务信息
type ServiceInfo struct {
	InstanceName string            // 服务实例名
	HostName     string            // 主机名
	Port         int               // 端口
	IPs          []string          // IPv4 地址列表
	TxtRecords   map[string]string // TXT 记录
}

// Version 从 TXT 记录获取协议版本
func (s *ServiceInfo) Version() string {
	return s.TxtRecords["version"]
}

// BaseURL 返回 beacon 的 HTTP 地址
func (s *ServiceInfo) BaseURL() (string, error) {
	if len(s.IPs) == 0 {
		return "", fmt.Errorf("service %q has no address", s.InstanceName)
	}
	return "http://" + net.JoinHostPort(s.IPs[0], strconv.Itoa(s.Port)), nil
}

// buildTxtRecords 构建 TXT 记录
func buildTxtRecords(records map[string]string) []string {
	txt := make([]string, 0, len(records))
	for k, v := range records {
		txt = append(txt, fmt.Sprintf("%s=%s", k, v))
	}
	return txt
}

// parseTxtRecord 解析 TXT 记录（格式：key=value）
func parseTxtRecord(txt string) (string, string) {
	for i := 0; i < len(txt); i++ {
		if txt[i] == '=' {
			return txt[:i], txt[i+1:]
		}
	}
	return txt, ""
}
