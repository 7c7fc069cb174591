package canvas

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.GoTextFaceSource
	defaultSourceErr  error
)

// DefaultFontSource 返回内置的 Go Regular 字体
func DefaultFontSource() (*text.GoTextFaceSource, error) {
	defaultSourceOnce.Do(func() {
		defaultSource, defaultSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if defaultSourceErr != nil {
			defaultSourceErr = fmt.Errorf("failed to create default font source: %w", defaultSourceErr)
		}
	})
	return defaultSource, defaultSourceErr
}

// LoadFontSource 从 TTF/OTF 文件创建字体源
// path 为空时返回内置字体
func LoadFontSource(path string) (*text.GoTextFaceSource, error) {
	if path == "" {
		return DefaultFontSource()
	}

	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}
	return source, nil
}
