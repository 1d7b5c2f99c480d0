//go:build mobile

package utils

// IsMobile 使用 -tags mobile（ebitenmobile 绑定）编译时恒为 true
// 移动端始终持久化选区，窗口配置被忽略
func IsMobile() bool {
	return true
}
