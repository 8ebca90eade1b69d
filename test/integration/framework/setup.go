//go:build integration
// +build integration

// 测试框架的全局设置和清理
package framework

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

var (
	// BeaconBinary 编译后的 beacon 二进制路径
	BeaconBinary string
	// ShipBinary 编译后的 ship 二进制路径
	ShipBinary string

	binDir string
)

// BuildBinaries 编译 beacon 和 ship 二进制（在 TestMain 中调用一次）
func BuildBinaries() error {
	// 获取项目根目录
	_, currentFile, _, _ := runtime.Caller(0)
	rootDir := filepath.Join(filepath.Dir(currentFile), "..", "..", "..")

	tmpDir, err := os.MkdirTemp("", "beaconship-test-bin-")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	binDir = tmpDir

	BeaconBinary, err = build(rootDir, "beacon")
	if err != nil {
		return err
	}
	ShipBinary, err = build(rootDir, "ship")
	return err
}

func build(rootDir, name string) (string, error) {
	binaryName := name
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	output := filepath.Join(binDir, binaryName)

	cmd := exec.Command("go", "build", "-o", output, "./cmd/"+name)
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to build %s binary: %w", name, err)
	}
	return output, nil
}

// Cleanup 清理构建的二进制（在 TestMain 结束时调用）
func Cleanup() {
	if binDir != "" {
		os.RemoveAll(binDir)
	}
}

// RequireBinaries 检查二进制是否已构建
func RequireBinaries(t *testing.T) {
	t.Helper()
	for _, path := range []string{BeaconBinary, ShipBinary} {
		if path == "" {
			t.Fatal("binaries not built, call BuildBinaries() in TestMain first")
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Fatal("binary not found at: " + path)
		}
	}
}
