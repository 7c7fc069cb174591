package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/decker502/loadinganim/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 默认配置文件路径（嵌入资源）
const DefaultConfigPath = "data/loader.yaml"

// LoaderConfig 加载动画示例程序的顶层配置
//
// 对应 data/loader.yaml：
//
//	window:
//	  width: 400
//	  height: 400
//	  title: "Loading Animation"
//	animation:
//	  use_logo: true
//	  start_delay: 30
//	  words: ["Loading..."]
//	  background_gray: 200
//	  font_path: ""
//	demo:
//	  load_seconds: 7
type LoaderConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Demo      DemoConfig      `yaml:"demo"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 画布宽度（逻辑像素）
	Height int    `yaml:"height"` // 画布高度（逻辑像素）
	Title  string `yaml:"title"`  // 窗口标题
}

// AnimationConfig 加载动画参数
type AnimationConfig struct {
	UseLogo        bool     `yaml:"use_logo"`        // 是否显示跟随指针的旋转徽标
	StartDelay     int      `yaml:"start_delay"`     // 启动延迟（tick 数）
	Words          []string `yaml:"words"`           // 加载文字，每项一行
	BackgroundGray float64  `yaml:"background_gray"` // 背景灰度 0 ~ 255
	FontPath       string   `yaml:"font_path"`       // 可选：TTF 字体路径，为空使用内置字体
}

// DemoConfig 示例程序参数
type DemoConfig struct {
	LoadSeconds float64 `yaml:"load_seconds"` // 模拟的异步加载时长（秒）
}

// DefaultLoaderConfig 返回默认配置
func DefaultLoaderConfig() *LoaderConfig {
	words := make([]string, len(DefaultLoadingWords))
	copy(words, DefaultLoadingWords)

	return &LoaderConfig{
		Window: WindowConfig{
			Width:  400,
			Height: 400,
			Title:  "Loading Animation",
		},
		Animation: AnimationConfig{
			UseLogo:        false,
			StartDelay:     DefaultStartDelay,
			Words:          words,
			BackgroundGray: LoadingBackgroundGray,
		},
		Demo: DemoConfig{
			LoadSeconds: 7,
		},
	}
}

// LoadLoaderConfig 读取并解析配置文件
//
// 以 "data/" 开头且存在于嵌入资源中的路径从嵌入资源读取，否则从磁盘读取。
// 文件中缺失的字段保留默认值；显式写出的空 words 列表会被保留（不绘制文字）。
func LoadLoaderConfig(path string) (*LoaderConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultLoaderConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse loader config YAML from %s: %w", path, err)
	}

	normalizeLoaderConfig(cfg)

	log.Printf("[Config] Loaded %s: logo=%v delay=%d words=%d",
		path, cfg.Animation.UseLogo, cfg.Animation.StartDelay, len(cfg.Animation.Words))
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if strings.HasPrefix(path, "data/") && embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config %s: %w", path, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read loader config file %s: %w", path, err)
	}
	return data, nil
}

// normalizeLoaderConfig 修正越界的值
// 配置错误不是致命错误：记录警告并回退到可用的值
func normalizeLoaderConfig(cfg *LoaderConfig) {
	defaults := DefaultLoaderConfig()

	if cfg.Window.Width <= 0 {
		log.Printf("[Config] Warning: invalid window width %d, using %d", cfg.Window.Width, defaults.Window.Width)
		cfg.Window.Width = defaults.Window.Width
	}
	if cfg.Window.Height <= 0 {
		log.Printf("[Config] Warning: invalid window height %d, using %d", cfg.Window.Height, defaults.Window.Height)
		cfg.Window.Height = defaults.Window.Height
	}

	if cfg.Animation.StartDelay < 0 {
		log.Printf("[Config] Warning: negative start_delay %d, using 0", cfg.Animation.StartDelay)
		cfg.Animation.StartDelay = 0
	}

	if cfg.Animation.BackgroundGray < 0 || cfg.Animation.BackgroundGray > 255 {
		log.Printf("[Config] Warning: background_gray %.1f out of range, using %.0f",
			cfg.Animation.BackgroundGray, defaults.Animation.BackgroundGray)
		cfg.Animation.BackgroundGray = defaults.Animation.BackgroundGray
	}

	if cfg.Demo.LoadSeconds < 0 {
		cfg.Demo.LoadSeconds = 0
	}
}
