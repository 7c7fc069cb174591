package utils

import "math"

// MapRange 将 value 从 [inMin, inMax] 线性映射到 [outMin, outMax]
// 不做截断：超出输入范围的值会映射到输出范围之外
func MapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (value-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Radians 角度转弧度
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Clamp 将 value 限制在 [lo, hi] 范围内
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}
