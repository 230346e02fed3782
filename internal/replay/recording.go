// Package replay records the input of a game session and plays it back.
// Recordings are msgpack files holding the game config, the tick rate and
// every tick's input events in arrival order.
package replay

import (
	"fmt"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Version is the current recording format version.
const Version = 1

// Tick is the input of one simulation tick.
// A non-zero Cols/Rows is a terminal resize applied before the events.
type Tick struct {
	Events []core.InputEvent `msgpack:"e,omitempty"`
	Cols   int               `msgpack:"c,omitempty"`
	Rows   int               `msgpack:"r,omitempty"`
}

// Recording is a complete replay.
type Recording struct {
	Version    int                   `msgpack:"version"`
	GameID     string                `msgpack:"game"`
	Difficulty string                `msgpack:"difficulty"`
	TickRate   int                   `msgpack:"tick_rate"`
	Cols       int                   `msgpack:"cols"`
	Rows       int                   `msgpack:"rows"`
	Config     config.InvadersConfig `msgpack:"config"`
	CreatedAt  time.Time             `msgpack:"created_at"`
	Ticks      []Tick                `msgpack:"ticks"`
}

// Runtime returns the runtime config the recording started with.
func (r Recording) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  r.Cols,
		ScreenH:  r.Rows,
		TickRate: r.TickRate,
	}
}

// Duration returns the recorded play time.
func (r Recording) Duration() time.Duration {
	if r.TickRate <= 0 {
		return 0
	}
	return time.Duration(len(r.Ticks)) * time.Second / time.Duration(r.TickRate)
}

// Encode serializes the recording.
func Encode(r Recording) ([]byte, error) {
	data, err := msgpack.Marshal(&r)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode: %w", err)
	}
	return data, nil
}

// Decode parses a recording and checks its version.
func Decode(data []byte) (Recording, error) {
	var r Recording
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return Recording{}, fmt.Errorf("replay: cannot decode: %w", err)
	}
	if r.Version != Version {
		return Recording{}, fmt.Errorf("replay: unsupported version %d (want %d)", r.Version, Version)
	}
	if r.TickRate <= 0 {
		return Recording{}, fmt.Errorf("replay: invalid tick rate %d", r.TickRate)
	}
	return r, nil
}

// Save writes the recording to path.
func Save(path string, r Recording) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	return Decode(data)
}
