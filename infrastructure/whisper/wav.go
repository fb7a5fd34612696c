package whisper

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// readWAVSamples reads a 16-bit PCM WAV file and converts it to the float32
// samples the whisper bindings take as input.
func readWAVSamples(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open decoded audio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("decoded audio is not a valid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read PCM data: %w", err)
	}

	return samplesToFloat32(buf), nil
}

// samplesToFloat32 scales 16-bit integer PCM into the [-1, 1) range.
func samplesToFloat32(buf *audio.IntBuffer) []float32 {
	samples := make([]float32, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = float32(s) / 32768.0
	}
	return samples
}
