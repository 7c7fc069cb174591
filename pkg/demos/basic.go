package demos

import (
	"context"

	"github.com/decker502/loadinganim/pkg/host"
)

// Basic uses the loading animation as is.
type Basic struct {
	settings Settings
}

// NewBasic creates the basic demo.
func NewBasic(settings Settings) *Basic {
	return &Basic{settings: settings}
}

func (b *Basic) Setup(h *host.Host) error {
	h.NewLoadingAnimation().Start(b.settings.Options)
	return nil
}

func (b *Basic) Load(ctx context.Context) error {
	return fakeLoad(ctx, b.settings.LoadDuration)
}

func (b *Basic) Ready(h *host.Host) {
	drawPage(h.Surface())
}

func (b *Basic) Draw(h *host.Host) {
	drawPointerCircle(h)
}
