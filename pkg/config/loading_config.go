package config

import "time"

// Loading animation 配置常量
// 默认动画（背景、加载文字、旋转徽标）使用的固定参数

const (
	// TicksPerSecond 加载动画循环的目标频率
	TicksPerSecond = 60

	// TickInterval 相邻两次 tick 之间的延迟
	TickInterval = time.Second / TicksPerSecond

	// DefaultStartDelay 默认的启动延迟（tick 数），期间不绘制任何内容
	DefaultStartDelay = 30

	// LoadingBackgroundGray 默认背景灰度
	LoadingBackgroundGray float64 = 200
)

// 加载文字动画
const (
	// LoadingWordsFontSize 加载文字字号
	LoadingWordsFontSize float64 = 20

	// LoadingWordsLineSpacing 行距（相对字号的倍数）
	LoadingWordsLineSpacing float64 = 1.4

	// LoadingWordsX 文字左上角 X 坐标
	LoadingWordsX float64 = 20

	// LoadingWordsY 第一行文字左上角 Y 坐标
	LoadingWordsY float64 = 20

	// LoadingWordsWaveSpeed 明暗波动速度（弧度/tick）
	LoadingWordsWaveSpeed float64 = 0.05

	// LoadingWordsWavePhase 相邻两行的相位差（弧度）
	LoadingWordsWavePhase float64 = 0.5

	// LoadingWordsGrayMin 文字最暗灰度
	LoadingWordsGrayMin float64 = 50

	// LoadingWordsGrayMax 文字最亮灰度
	LoadingWordsGrayMax float64 = 140
)

// 旋转徽标
const (
	// LogoDegreesPerTick 每个 tick 的旋转角度
	LogoDegreesPerTick float64 = 6.5

	// LogoScale 徽标缩放
	LogoScale float64 = 0.75

	// LogoOrigin 徽标多边形的中心（多边形坐标系）
	LogoOrigin float64 = 14

	// LogoColor 徽标填充色
	LogoColor = "#ED225D"
)

// DefaultLoadingWords 默认的加载文字
var DefaultLoadingWords = []string{"Loading..."}
