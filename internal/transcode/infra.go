package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type FFmpeg struct{}

func NewFFmpeg() *FFmpeg {
	return &FFmpeg{}
}

func (f *FFmpeg) ToWAV(ctx context.Context, src, dst string) error {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-v", "error",
		"-i", src,
		"-ar", "16000",
		"-ac", "1",
		dst,
	)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("ffmpeg: %w: %s", err, msg)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}
