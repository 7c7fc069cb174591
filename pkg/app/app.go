// Package app 提供 sketch 运行的核心包装器
//
// 该包把宿主、场景与 ebiten 游戏循环组合在一起，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/loadinganim/pkg/config"
	"github.com/decker502/loadinganim/pkg/game"
	"github.com/decker502/loadinganim/pkg/host"
	"github.com/decker502/loadinganim/pkg/scenes"
	"github.com/decker502/loadinganim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Loader 窗口与加载动画配置
	Loader config.LoaderConfig
}

// App 实现 ebiten.Game 接口
type App struct {
	host         *host.Host
	sceneManager *game.SceneManager
	cancel       context.CancelFunc

	width                    int
	height                   int
	title                    string
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建宿主并运行 sketch 的 Setup
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config, sketch game.Sketch) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	return newApp(cfg, sketch, host.Options{
		Width:             cfg.Loader.Window.Width,
		Height:            cfg.Loader.Window.Height,
		FontPath:          cfg.Loader.Animation.FontPath,
		LoadingBackground: utils.Gray(cfg.Loader.Animation.BackgroundGray),
	})
}

func newApp(cfg Config, sketch game.Sketch, opts host.Options) (*App, error) {
	h, err := host.New(opts)
	if err != nil {
		return nil, fmt.Errorf("宿主初始化失败: %w", err)
	}

	if err := sketch.Setup(h); err != nil {
		return nil, fmt.Errorf("sketch setup failed: %w", err)
	}
	log.Printf("[App] %T setup started", sketch)

	ctx, cancel := context.WithCancel(context.Background())
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewLoadingScene(ctx, h, sketch, sceneManager))

	return &App{
		host:         h,
		sceneManager: sceneManager,
		cancel:       cancel,
		width:        opts.Width,
		height:       opts.Height,
		title:        cfg.Loader.Window.Title,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
//
// 顺序：指针事件 -> 场景（可能完成 setup）-> 加载动画定时任务。
// setup 完成的那一帧里，加载动画的 tick 直接结束，不会覆盖 Ready 的绘制。
func (a *App) Update() error {
	a.updateFullscreen()

	a.host.Poll()

	deltaTime := 1.0 / float64(config.TicksPerSecond)
	if err := a.sceneManager.Update(deltaTime); err != nil {
		return err
	}

	a.host.Pump()
	return nil
}

func (a *App) updateFullscreen() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（等于画布尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Host 返回宿主
func (a *App) Host() *host.Host {
	return a.host
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 取消仍在运行的 Load 并关闭当前场景
func (a *App) Close() {
	a.cancel()
	a.sceneManager.Close()
}

// Run 打开窗口并运行游戏循环，直到窗口关闭或 Load 失败
func (a *App) Run() error {
	defer a.Close()

	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle(a.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
