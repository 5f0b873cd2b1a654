package loop

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop/config"
)

// centered keeps the playfield in the middle of a terminal that can be resized.
// It is only used from the render goroutine.
type centered struct {
	*draw.ChunkWriter
	size         draw.TermSizeFunc
	logger       *log.Logger
	termW, termH int
}

func newCentered(cw *draw.ChunkWriter, size draw.TermSizeFunc, logger *log.Logger) *centered {
	return &centered{ChunkWriter: cw, size: size, logger: logger}
}

// Moved re-reads the terminal size and re-centers when it changed.
// Without a size function, or while the size cannot be read, the playfield stays put.
func (c *centered) Moved() bool {
	if c.size == nil {
		return false
	}
	w, h, err := c.size()
	if err != nil {
		c.logger.Debug("terminal size unavailable", "err", err)
		return false
	}
	if w == c.termW && h == c.termH {
		return false
	}
	c.termW, c.termH = w, h
	c.SetOffset(draw.CenterOffset(w, h, config.FieldWidth, config.FieldHeight))
	c.logger.Debug("terminal resized", "width", w, "height", h)
	return true
}
