package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Confirm asks a destructive-action question and waits for a y/N
// answer. Anything other than y or yes declines.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N]: ", question); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := NewNonBlockingReader(in).ReadLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	switch line {
	case "y", "Y", "yes", "Yes", "YES":
		return true, nil
	default:
		return false, nil
	}
}
