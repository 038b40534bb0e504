package audio

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ConcatFiles joins MP3 segment files into a single output file by
// appending their bytes in order.
//
// Segments produced by one synthesis run share the same codec
// parameters, so container-level concatenation yields a playable
// stream without re-encoding. The destination is created (or
// truncated) with mode 0644.
//
// The context is checked between segments; an in-flight copy is not
// interrupted.
func ConcatFiles(ctx context.Context, dst string, segments []string) error {
	if len(segments) == 0 {
		return fmt.Errorf("concat %s: no segments", dst)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	for _, segment := range segments {
		if err := ctx.Err(); err != nil {
			return err
		}

		in, err := os.Open(segment)
		if err != nil {
			return err
		}
		_, err = io.Copy(out, in)
		in.Close()
		if err != nil {
			return fmt.Errorf("append %s: %w", segment, err)
		}
	}

	return nil
}
