// Package singleton 保证同一监听地址上只运行一个 beacon
package singleton

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// HealthPath 健康检查路径
	HealthPath = "/health"
	// HealthCheckTimeout 健康检查超时时间
	HealthCheckTimeout = 2 * time.Second
)

var (
	// ErrAlreadyRunning 监听地址上已有健康的 beacon 在运行
	ErrAlreadyRunning = errors.New("beacon is already running")
	// ErrPortUnhealthy 端口被占用，但占用者没有通过健康检查
	ErrPortUnhealthy = errors.New("port is in use and health check failed")
)

// CheckAndLock 尝试占用监听地址
// 地址可用时返回 listener；已有健康实例时返回 ErrAlreadyRunning（调用者应退出）；
// 端口被其他进程占用时返回 ErrPortUnhealthy
func CheckAndLock(addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err == nil {
		return listener, nil
	}

	if isAddrInUse(err) {
		if isInstanceRunning(addr) {
			return nil, fmt.Errorf("%w on %s", ErrAlreadyRunning, addr)
		}
		return nil, fmt.Errorf("%w: %s", ErrPortUnhealthy, addr)
	}

	return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
}

// isAddrInUse 检查错误是否是地址已在使用
func isAddrInUse(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.EADDRINUSE) {
		return true
	}

	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}

	var sysErr *os.SyscallError
	if !errors.As(opErr.Err, &sysErr) {
		return false
	}

	var errno syscall.Errno
	if errors.As(sysErr.Err, &errno) {
		// Windows: WSAEADDRINUSE (10048)
		// Linux/Unix: EADDRINUSE (98)
		return errno == 10048 || errno == syscall.EADDRINUSE
	}

	errStr := sysErr.Err.Error()
	return errStr == "address already in use" ||
		errStr == "Only one usage of each socket address (protocol/network address/port) is normally permitted"
}

// healthURL 根据监听地址构造健康检查地址
// 通配地址统一改为 localhost
func healthURL(addr string) (string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", err
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + HealthPath, nil
}

// isInstanceRunning 检查是否有实例在运行
func isInstanceRunning(addr string) bool {
	url, err := healthURL(addr)
	if err != nil {
		return false
	}

	resp, err := resty.New().
		SetTimeout(HealthCheckTimeout).
		R().
		Get(url)
	if err != nil {
		// 请求失败，说明实例不在运行或不可访问
		return false
	}
	return resp.IsSuccess()
}
