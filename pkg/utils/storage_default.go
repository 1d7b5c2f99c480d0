//go:build !android

package utils

// EnsureStorageDir 确保存储目录存在（非 Android 平台的空实现）
// gdata 在桌面和 iOS 上会自行创建存储目录
func EnsureStorageDir(appName string) error {
	return nil
}

// GetStoragePath 获取存储路径（非 Android 平台由 gdata 决定，返回空字符串）
func GetStoragePath() string {
	return ""
}
