//go:build integration
// +build integration

// TestBeacon 管理独立 beacon 进程的启动与关闭
package framework

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// TestBeacon 测试用 beacon 进程
type TestBeacon struct {
	Name     string // 角色名称
	HTTPPort int    // HTTP 端口

	env     []string
	cmd     *exec.Cmd
	baseURL string
}

// BeaconOption beacon 配置选项
type BeaconOption func(*TestBeacon)

// WithPushover 设置推送地址和接收方
func WithPushover(endpoint string, userTokens ...string) BeaconOption {
	return func(b *TestBeacon) {
		b.env = append(b.env,
			"PUSHOVER_ENDPOINT="+endpoint,
			"APP_TOKEN=test-app-token",
			"USER_TOKENS="+strings.Join(userTokens, ","),
		)
	}
}

// WithPort 使用指定端口（用于单例场景）
func WithPort(port int) BeaconOption {
	return func(b *TestBeacon) {
		b.HTTPPort = port
		b.baseURL = fmt.Sprintf("http://localhost:%d", port)
	}
}

// WithEnv 追加环境变量
func WithEnv(kv ...string) BeaconOption {
	return func(b *TestBeacon) {
		b.env = append(b.env, kv...)
	}
}

// NewTestBeacon 创建测试 beacon
func NewTestBeacon(binaryPath, name string, opts ...BeaconOption) (*TestBeacon, error) {
	httpPort, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate HTTP port: %w", err)
	}

	b := &TestBeacon{
		Name:     name,
		HTTPPort: httpPort,
		baseURL:  fmt.Sprintf("http://localhost:%d", httpPort),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.cmd = exec.Command(binaryPath)
	b.cmd.Env = append(os.Environ(),
		fmt.Sprintf("BEACON_LISTEN=127.0.0.1:%d", b.HTTPPort),
		"SWEEP_INTERVAL=1",
		"BEACON_CONFIG=",
		"BEACON_MDNS=false",
		"NOTIFY_REGISTERED=false",
		"LOG_FORMAT=json",
	)
	b.cmd.Env = append(b.cmd.Env, b.env...)
	b.cmd.Stdout = os.Stdout
	b.cmd.Stderr = os.Stderr

	return b, nil
}

// Start 启动进程并等待就绪
func (b *TestBeacon) Start() error {
	if err := b.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start beacon %s: %w", b.Name, err)
	}
	return b.waitForReady(30 * time.Second)
}

// Run 启动进程并等待退出，返回退出码
func (b *TestBeacon) Run(timeout time.Duration) (int, error) {
	if err := b.cmd.Start(); err != nil {
		return -1, err
	}
	return wait(b.cmd, timeout)
}

// Stop 发送中断信号并等待退出
func (b *TestBeacon) Stop() error {
	return stopProcess(b.cmd)
}

// BaseURL 返回 HTTP 基础 URL
func (b *TestBeacon) BaseURL() string {
	return b.baseURL
}

// waitForReady 等待 health 端点就绪
func (b *TestBeacon) waitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := resty.New().SetTimeout(2 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.R().Get(b.baseURL + "/health")
		if err == nil && resp.IsSuccess() {
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}

	return fmt.Errorf("beacon %s failed to become ready within %v", b.Name, timeout)
}

// TestShip 测试用 ship 进程
type TestShip struct {
	cmd *exec.Cmd
}

// NewTestShip 创建 ship 进程
func NewTestShip(binaryPath, server, hostname, uuid string, interval, maxOffline time.Duration) *TestShip {
	cmd := exec.Command(binaryPath,
		"--server", server,
		"--hostname", hostname,
		"--uuid", uuid,
		"--interval", interval.String(),
		"--max-offline", maxOffline.String(),
	)
	cmd.Env = append(os.Environ(), "LOG_FORMAT=json", "LOG_SERVICE=beaconship-ship")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return &TestShip{cmd: cmd}
}

// Start 启动 ship
func (s *TestShip) Start() error {
	return s.cmd.Start()
}

// Kill 直接杀掉 ship，模拟宕机
func (s *TestShip) Kill() error {
	if s.cmd.Process == nil {
		return nil
	}
	_ = s.cmd.Process.Kill()
	_, _ = s.cmd.Process.Wait()
	return nil
}

func stopProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	_ = cmd.Process.Signal(os.Interrupt)
	_, err := wait(cmd, 5*time.Second)
	return err
}

// wait 等待进程退出，超时后强制结束
func wait(cmd *exec.Cmd, timeout time.Duration) (int, error) {
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		<-done
		return -1, fmt.Errorf("process did not exit within %v", timeout)
	}
	return cmd.ProcessState.ExitCode(), nil
}

// getFreePort 获取一个空闲的 TCP 端口
func getFreePort() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port, nil
}
