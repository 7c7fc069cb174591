package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/loadinganim/pkg/embedded"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loader.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// TestDefaultLoaderConfig 测试默认配置与加载动画的默认参数一致
func TestDefaultLoaderConfig(t *testing.T) {
	cfg := DefaultLoaderConfig()

	if cfg.Animation.UseLogo {
		t.Error("Expected logo to be off by default")
	}
	if cfg.Animation.StartDelay != 30 {
		t.Errorf("Expected default start delay 30, got %d", cfg.Animation.StartDelay)
	}
	if len(cfg.Animation.Words) != 1 || cfg.Animation.Words[0] != "Loading..." {
		t.Errorf("Unexpected default words: %v", cfg.Animation.Words)
	}

	// 修改返回值不应影响包级默认值
	cfg.Animation.Words[0] = "changed"
	if DefaultLoadingWords[0] != "Loading..." {
		t.Error("DefaultLoaderConfig must copy DefaultLoadingWords")
	}
}

// TestLoadLoaderConfig 测试从磁盘读取完整配置
func TestLoadLoaderConfig(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 640
  height: 480
  title: "Demo"
animation:
  use_logo: true
  start_delay: 5
  words: ["A", "B"]
  background_gray: 20
demo:
  load_seconds: 2.5
`)

	cfg, err := LoadLoaderConfig(path)
	if err != nil {
		t.Fatalf("LoadLoaderConfig failed: %v", err)
	}

	if cfg.Window.Width != 640 || cfg.Window.Height != 480 || cfg.Window.Title != "Demo" {
		t.Errorf("Unexpected window config: %+v", cfg.Window)
	}
	if !cfg.Animation.UseLogo || cfg.Animation.StartDelay != 5 {
		t.Errorf("Unexpected animation config: %+v", cfg.Animation)
	}
	if len(cfg.Animation.Words) != 2 || cfg.Animation.Words[1] != "B" {
		t.Errorf("Unexpected words: %v", cfg.Animation.Words)
	}
	if cfg.Animation.BackgroundGray != 20 {
		t.Errorf("Expected background gray 20, got %.1f", cfg.Animation.BackgroundGray)
	}
	if cfg.Demo.LoadSeconds != 2.5 {
		t.Errorf("Expected load seconds 2.5, got %.1f", cfg.Demo.LoadSeconds)
	}
}

// TestLoadLoaderConfigKeepsDefaults 测试缺失字段保留默认值
func TestLoadLoaderConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "animation:\n  use_logo: true\n")

	cfg, err := LoadLoaderConfig(path)
	if err != nil {
		t.Fatalf("LoadLoaderConfig failed: %v", err)
	}
	if cfg.Animation.StartDelay != DefaultStartDelay {
		t.Errorf("Expected default delay, got %d", cfg.Animation.StartDelay)
	}
	if len(cfg.Animation.Words) != 1 {
		t.Errorf("Expected default words, got %v", cfg.Animation.Words)
	}
	if cfg.Window.Width != 400 {
		t.Errorf("Expected default width, got %d", cfg.Window.Width)
	}
}

// TestLoadLoaderConfigEmptyWords 测试显式的空列表被保留
func TestLoadLoaderConfigEmptyWords(t *testing.T) {
	path := writeConfig(t, "animation:\n  words: []\n")

	cfg, err := LoadLoaderConfig(path)
	if err != nil {
		t.Fatalf("LoadLoaderConfig failed: %v", err)
	}
	if len(cfg.Animation.Words) != 0 {
		t.Errorf("Expected empty words, got %v", cfg.Animation.Words)
	}
}

// TestLoadLoaderConfigNormalizes 测试越界值被修正
func TestLoadLoaderConfigNormalizes(t *testing.T) {
	path := writeConfig(t, `
window:
  width: -1
  height: 0
animation:
  start_delay: -7
  background_gray: 999
demo:
  load_seconds: -3
`)

	cfg, err := LoadLoaderConfig(path)
	if err != nil {
		t.Fatalf("LoadLoaderConfig failed: %v", err)
	}
	if cfg.Window.Width != 400 || cfg.Window.Height != 400 {
		t.Errorf("Expected default window size, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Animation.StartDelay != 0 {
		t.Errorf("Expected start delay clamped to 0, got %d", cfg.Animation.StartDelay)
	}
	if cfg.Animation.BackgroundGray != LoadingBackgroundGray {
		t.Errorf("Expected default background gray, got %.1f", cfg.Animation.BackgroundGray)
	}
	if cfg.Demo.LoadSeconds != 0 {
		t.Errorf("Expected load seconds clamped to 0, got %.1f", cfg.Demo.LoadSeconds)
	}
}

// TestLoadLoaderConfigErrors 测试文件缺失和 YAML 错误
func TestLoadLoaderConfigErrors(t *testing.T) {
	if _, err := LoadLoaderConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := writeConfig(t, "window: [unclosed\n")
	if _, err := LoadLoaderConfig(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

// TestLoadLoaderConfigEmbedded 测试从嵌入资源读取
func TestLoadLoaderConfigEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/loader.yaml": &fstest.MapFile{Data: []byte("animation:\n  start_delay: 12\n")},
	})
	defer embedded.Init(nil)

	cfg, err := LoadLoaderConfig(DefaultConfigPath)
	if err != nil {
		t.Fatalf("LoadLoaderConfig failed: %v", err)
	}
	if cfg.Animation.StartDelay != 12 {
		t.Errorf("Expected start delay 12 from embedded config, got %d", cfg.Animation.StartDelay)
	}
}
