// Package config holds the tunable knobs the C stream engine hard-coded
// as constants (the 400-byte read-line buffer, the 512-byte
// copy-stream chunk, the 32-byte minimum accumulator growth). It is backed
// by github.com/spf13/viper so a hosting process can override them.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Keys for the knobs this package exposes.
const (
	KeyReadLineBufferSize  = "stream.readline_buffer_size"
	KeyCopyStreamChunkSize = "stream.copy_chunk_size"
	KeyMinAccumGrowth      = "stream.min_accumulator_growth"
	KeyEightBitClean       = "stream.eight_bit_clean"
)

// New returns a viper instance pre-seeded with the defaults the C engine
// baked in as magic numbers, plus STREAMS_-prefixed
// environment variable overrides.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("STREAMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyReadLineBufferSize, 400)
	v.SetDefault(KeyCopyStreamChunkSize, 512)
	v.SetDefault(KeyMinAccumGrowth, 32)
	// The core is documented as 8-bit-byte only; this
	// knob exists so a future encoding layer has somewhere to live without
	// touching the dispatcher's signature.
	v.SetDefault(KeyEightBitClean, true)
	return v
}

// Settings is a resolved, typed snapshot of the knobs above.
type Settings struct {
	ReadLineBufferSize  int
	CopyStreamChunkSize int
	MinAccumGrowth      int
	EightBitClean       bool
}

// Load resolves a Settings snapshot from v.
func Load(v *viper.Viper) Settings {
	return Settings{
		ReadLineBufferSize:  v.GetInt(KeyReadLineBufferSize),
		CopyStreamChunkSize: v.GetInt(KeyCopyStreamChunkSize),
		MinAccumGrowth:      v.GetInt(KeyMinAccumGrowth),
		EightBitClean:       v.GetBool(KeyEightBitClean),
	}
}

// Default is the Settings snapshot matching the C engine's constants.
func Default() Settings {
	return Load(New())
}
