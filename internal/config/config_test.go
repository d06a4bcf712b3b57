package config

import (
	"os"
	"testing"
)

func TestDefaultMatchesOriginalConstants(t *testing.T) {
	s := Default()
	if s.ReadLineBufferSize != 400 {
		t.Errorf("ReadLineBufferSize = %d; want 400", s.ReadLineBufferSize)
	}
	if s.CopyStreamChunkSize != 512 {
		t.Errorf("CopyStreamChunkSize = %d; want 512", s.CopyStreamChunkSize)
	}
	if s.MinAccumGrowth != 32 {
		t.Errorf("MinAccumGrowth = %d; want 32", s.MinAccumGrowth)
	}
	if !s.EightBitClean {
		t.Error("EightBitClean should default true")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("STREAMS_STREAM_COPY_CHUNK_SIZE", "1024")
	os.Unsetenv("STREAMS_STREAM_READLINE_BUFFER_SIZE")

	v := New()
	s := Load(v)
	if s.CopyStreamChunkSize != 1024 {
		t.Errorf("CopyStreamChunkSize = %d; want 1024 after env override", s.CopyStreamChunkSize)
	}
}
