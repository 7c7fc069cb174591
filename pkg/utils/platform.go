//go:build !mobile

package utils

import "os"

// TouchEmulateEnv 设置为 1 时，桌面端也只接受触摸输入（用于本地调试移动端行为）
const TouchEmulateEnv = "LOADINGANIM_TOUCH_ONLY"

// TouchOnly 报告指针是否只来自触摸
// 桌面端编译时默认为 false，鼠标悬停可以驱动指针事件
func TouchOnly() bool {
	return os.Getenv(TouchEmulateEnv) == "1"
}
