package input

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/joysnake/internal/config"
	"github.com/vovakirdan/joysnake/internal/core"
)

// chunkReader returns one scripted chunk per Read, then times out with (0, nil).
type chunkReader struct {
	chunks []string
	err    error
	closed bool
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, r.err
	}
	n := copy(p, r.chunks[0])
	if n < len(r.chunks[0]) {
		r.chunks[0] = r.chunks[0][n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

func (r *chunkReader) Close() error {
	r.closed = true
	return nil
}

func (r *chunkReader) push(chunks ...string) {
	r.chunks = append(r.chunks, chunks...)
}

func testDeviceConfig() config.DeviceConfig {
	return config.DefaultSnakeConfig().Device
}

func newTestDevice(r io.Reader) *Device {
	return NewDevice(r, testDeviceConfig(), log.New(io.Discard))
}

func TestParseFrame(t *testing.T) {
	tests := []struct {
		line    string
		want    Frame
		wantErr bool
	}{
		{"512,512,1", Frame{512, 512, 1}, false},
		{" 0, 1023 ,0\r", Frame{0, 1023, 0}, false},
		{"-5,7,1", Frame{-5, 7, 1}, false},
		{"512,512", Frame{}, true},
		{"512,512,1,1", Frame{}, true},
		{"a,512,1", Frame{}, true},
		{"512,,1", Frame{}, true},
		{"", Frame{}, true},
	}

	for _, tc := range tests {
		got, err := ParseFrame(tc.line)
		if tc.wantErr {
			if !errors.Is(err, ErrMalformedFrame) {
				t.Errorf("ParseFrame(%q) error = %v, expected ErrMalformedFrame", tc.line, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFrame(%q) failed: %v", tc.line, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFrame(%q) = %+v, expected %+v", tc.line, got, tc.want)
		}
	}
}

func TestAxisToDirection(t *testing.T) {
	cfg := testDeviceConfig() // center 512, dead zone 150

	tests := []struct {
		x, y int
		want core.Direction
	}{
		{512, 512, core.None},
		{662, 512, core.None}, // exactly at the dead zone edge
		{663, 512, core.Right},
		{362, 512, core.None},
		{361, 512, core.Left},
		{512, 1023, core.Down},
		{512, 0, core.Up},
		{1023, 0, core.Right}, // horizontal wins
		{0, 1023, core.Left},
		{600, 900, core.Down},
	}

	for _, tc := range tests {
		if got := AxisToDirection(tc.x, tc.y, cfg); got != tc.want {
			t.Errorf("AxisToDirection(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestDeviceNoFrameKeepsDirection(t *testing.T) {
	d := newTestDevice(&chunkReader{})

	if got := d.PollDirection(core.Up); got != core.Up {
		t.Errorf("PollDirection() = %v, expected current direction", got)
	}
	if d.PollPauseToggle() {
		t.Error("PollPauseToggle() = true without frames")
	}
}

func TestDevicePartialLines(t *testing.T) {
	r := &chunkReader{}
	d := newTestDevice(r)

	r.push("1000,5")
	if got := d.PollDirection(core.Up); got != core.Up {
		t.Errorf("PollDirection() on partial frame = %v, expected up", got)
	}

	r.push("12,1\n")
	if got := d.PollDirection(core.Up); got != core.Right {
		t.Errorf("PollDirection() after completing frame = %v, expected right", got)
	}
}

func TestDeviceLastFrameWins(t *testing.T) {
	r := &chunkReader{}
	d := newTestDevice(r)

	r.push("1000,512,1\n512,0,1\n0,512,1\n")
	if got := d.PollDirection(core.Up); got != core.Left {
		t.Errorf("PollDirection() = %v, expected left from the last frame", got)
	}
	if got := d.PollDirection(core.Left); got != core.Left {
		t.Errorf("PollDirection() with no new frames = %v, expected current", got)
	}
}

func TestDeviceMalformedFramesDiscarded(t *testing.T) {
	r := &chunkReader{}
	d := newTestDevice(r)

	r.push("garbage\n512\n1,2,3,4\n")
	if got := d.PollDirection(core.Down); got != core.Down {
		t.Errorf("PollDirection() = %v, expected previous direction", got)
	}

	r.push("oops\n512,1000,1\nx,y,z\n")
	if got := d.PollDirection(core.Left); got != core.Down {
		t.Errorf("PollDirection() = %v, expected down from the valid frame", got)
	}
}

func TestDeviceButtonToggles(t *testing.T) {
	tests := []struct {
		name   string
		frames string
		want   bool
	}{
		{"released", "512,512,1\n", false},
		{"pressed once", "512,512,0\n", true},
		{"held two frames", "512,512,0\n512,512,0\n", false},
		{"held three frames", "512,512,0\n512,512,0\n512,512,0\n", true},
		{"malformed press", "512,0\n", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := &chunkReader{}
			d := newTestDevice(r)
			r.push(tc.frames)

			if got := d.PollPauseToggle(); got != tc.want {
				t.Errorf("PollPauseToggle() = %v, expected %v", got, tc.want)
			}
			if d.PollPauseToggle() {
				t.Error("PollPauseToggle() should clear after reporting")
			}
		})
	}
}

func TestDeviceToggleSeenByEitherPoll(t *testing.T) {
	r := &chunkReader{}
	d := newTestDevice(r)

	// The direction poll reads the frame; the toggle stays pending.
	r.push("1000,512,0\n")
	if got := d.PollDirection(core.Up); got != core.Right {
		t.Errorf("PollDirection() = %v, expected right", got)
	}
	if !d.PollPauseToggle() {
		t.Error("PollPauseToggle() = false, expected the pending toggle")
	}
}

func TestDeviceReadError(t *testing.T) {
	r := &chunkReader{err: errors.New("device unplugged")}
	d := newTestDevice(r)

	for range 3 {
		if got := d.PollDirection(core.Right); got != core.Right {
			t.Errorf("PollDirection() on read error = %v, expected current", got)
		}
	}
}

func TestDeviceDropsOversizedLine(t *testing.T) {
	r := &chunkReader{}
	d := newTestDevice(r)

	junk := make([]byte, maxLineBytes+10)
	for i := range junk {
		junk[i] = '9'
	}
	r.push(string(junk))
	d.PollDirection(core.Up) // A poll reads at most maxReads chunks
	d.PollDirection(core.Up)
	if len(d.partial) != 0 {
		t.Errorf("partial buffer = %d bytes, expected it dropped", len(d.partial))
	}

	r.push("0,512,1\n")
	if got := d.PollDirection(core.Up); got != core.Left {
		t.Errorf("PollDirection() after junk = %v, expected left", got)
	}
}

func TestDeviceClose(t *testing.T) {
	r := &chunkReader{}
	d := newTestDevice(r)

	if err := d.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if !r.closed {
		t.Error("Close() did not close the underlying stream")
	}
}
