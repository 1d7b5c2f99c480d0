//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 存储目录存在并可写
// gdata 在 Android 上以 /data/data/{package}/ 为根目录，但不会预先创建应用子目录，
// 需要在 gdata.Open 之前调用。
func EnsureStorageDir(appName string) error {
	pkg, err := detectAndroidPackage()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	os.Remove(probe)

	return nil
}

// detectAndroidPackage 从 /proc/self/cmdline 读取应用包名
func detectAndroidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	name := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 || ch == '\n' {
			continue
		}
		name = append(name, ch)
	}

	if len(name) == 0 {
		return "", fmt.Errorf("got empty output from /proc/self/cmdline")
	}
	return string(name), nil
}

// GetStoragePath 获取 Android 存储根路径（用于调试日志）
func GetStoragePath() string {
	pkg, err := detectAndroidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
