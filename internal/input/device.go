package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/joysnake/internal/config"
	"github.com/vovakirdan/joysnake/internal/core"
)

const (
	readChunk    = 256
	maxReads     = 4    // Reads per poll, bounds the time spent draining a chatty device
	maxLineBytes = 1024 // A longer partial line is garbage and dropped
)

// ErrMalformedFrame is returned by ParseFrame for lines that are not "x,y,button".
var ErrMalformedFrame = errors.New("input: malformed frame")

// Frame is one joystick reading.
type Frame struct {
	X, Y   int // Raw axis values
	Button int // 0 means pressed (pull-up)
}

// ParseFrame parses a "<x>,<y>,<button>" line.
func ParseFrame(line string) (Frame, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 3 {
		return Frame{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedFrame, len(fields))
	}

	var vals [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Frame{}, fmt.Errorf("%w: field %d: %v", ErrMalformedFrame, i+1, err)
		}
		vals[i] = v
	}
	return Frame{X: vals[0], Y: vals[1], Button: vals[2]}, nil
}

// AxisToDirection converts raw axis readings to a direction. An axis counts
// only beyond the dead zone, and horizontal wins over vertical so diagonals
// never occur.
func AxisToDirection(x, y int, cfg config.DeviceConfig) core.Direction {
	dx, dy := 0, 0
	if off := x - cfg.CenterX; core.Abs(off) > cfg.DeadZone {
		dx = core.Sign(off)
	}
	if off := y - cfg.CenterY; core.Abs(off) > cfg.DeadZone {
		dy = core.Sign(off)
	}
	if dx != 0 {
		dy = 0
	}
	return core.Direction{DX: dx, DY: dy}
}

// Device reads joystick frames from a byte stream whose reads return after a
// short timeout. Polls never block longer than a few such timeouts.
type Device struct {
	r      io.Reader
	cfg    config.DeviceConfig
	logger *log.Logger
	name   string

	partial []byte
	chunk   []byte
	latest  *core.Direction // Direction of the newest valid frame not yet polled
	toggled bool            // Pending pause toggle
	lastErr string
}

// NewDevice wraps r. If r is also an io.Closer, Close closes it.
func NewDevice(r io.Reader, cfg config.DeviceConfig, logger *log.Logger) *Device {
	if logger == nil {
		logger = log.Default()
	}
	return &Device{
		r:      r,
		cfg:    cfg,
		logger: logger,
		name:   "device",
		chunk:  make([]byte, readChunk),
	}
}

// Name returns the device port name.
func (d *Device) Name() string {
	return d.name
}

// PollDirection returns the direction of the newest valid frame received since
// the last poll, or current when there was none.
func (d *Device) PollDirection(current core.Direction) core.Direction {
	d.pump()
	if d.latest == nil {
		return current
	}
	dir := *d.latest
	d.latest = nil
	return dir
}

// PollPauseToggle reports whether an odd number of frames with the button
// pressed arrived since the last poll. Every such frame flips pause, so a held
// button toggles at the device's frame rate.
func (d *Device) PollPauseToggle() bool {
	d.pump()
	t := d.toggled
	d.toggled = false
	return t
}

// Close closes the underlying stream when it supports closing.
func (d *Device) Close() error {
	if c, ok := d.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// pump drains what the stream has buffered and applies every complete frame.
func (d *Device) pump() {
	for range maxReads {
		n, err := d.r.Read(d.chunk)
		if n > 0 {
			d.partial = append(d.partial, d.chunk[:n]...)
		}
		if err != nil {
			d.reportErr(err)
			break
		}
		d.lastErr = ""
		if n < len(d.chunk) {
			break
		}
	}

	for {
		i := bytes.IndexByte(d.partial, '\n')
		if i < 0 {
			break
		}
		line := string(d.partial[:i])
		d.partial = d.partial[i+1:]
		d.apply(line)
	}

	if len(d.partial) > maxLineBytes {
		d.logger.Debug("dropping oversized partial frame", "bytes", len(d.partial))
		d.partial = d.partial[:0]
	}
}

func (d *Device) apply(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	f, err := ParseFrame(line)
	if err != nil {
		d.logger.Debug("discarding frame", "frame", line, "error", err)
		return
	}

	if f.Button == 0 {
		d.toggled = !d.toggled
	}
	dir := AxisToDirection(f.X, f.Y, d.cfg)
	d.latest = &dir
}

// reportErr logs a read error once until a successful read clears it.
func (d *Device) reportErr(err error) {
	if err.Error() == d.lastErr {
		return
	}
	d.lastErr = err.Error()
	d.logger.Warn("device read failed", "device", d.name, "error", err)
}
