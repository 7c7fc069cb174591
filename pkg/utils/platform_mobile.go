//go:build mobile

package utils

// TouchOnly 报告指针是否只来自触摸
// 移动端没有悬停，手指离开屏幕即视为指针离开
func TouchOnly() bool {
	return true
}
