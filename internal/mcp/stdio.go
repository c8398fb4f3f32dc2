package mcp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// maxLineSize bounds one stdio message.
const maxLineSize = 10 << 20

// ServeStdio reads newline-delimited JSON-RPC messages from r and writes each
// reply to w on its own line. Messages are handled strictly in order: a reply
// is written before the next message is processed. It returns nil on EOF or
// when ctx is cancelled.
func (e *Engine) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	out := bufio.NewWriter(w)
	e.logger.Info().Int("tools", e.catalog.Len()).Msg("serving on stdio")

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("stdin read failed: %w", err)
					}
				default:
				}
				return nil
			}
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			reply := e.Handle(ctx, line)
			if reply == nil {
				continue
			}
			if _, err := out.Write(append(reply, '\n')); err != nil {
				return fmt.Errorf("stdout write failed: %w", err)
			}
			if err := out.Flush(); err != nil {
				return fmt.Errorf("stdout write failed: %w", err)
			}
		}
	}
}
