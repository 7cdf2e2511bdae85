package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type keyAction int

const (
	keyNone keyAction = iota
	keyUp
	keyDown
	keyBoth
	keyQuit
	keyScaleNext
	keyScalePrev
	keyTransposeUp
	keyTransposeDown
	keyHelp
)

const keyHelpText = "u/j: strum up  d/k: strum down  b: both  ]/[: scale  +/-: transpose  ?: help  q: quit"

var errNotTerminal = errors.New("stdin is not a terminal")

func actionFor(b byte) keyAction {
	switch b {
	case 'u', 'U', 'j':
		return keyUp
	case 'd', 'D', 'k':
		return keyDown
	case 'b', ' ':
		return keyBoth
	case ']':
		return keyScaleNext
	case '[':
		return keyScalePrev
	case '+', '=':
		return keyTransposeUp
	case '-', '_':
		return keyTransposeDown
	case '?', 'h':
		return keyHelp
	case 'q', 'Q', 0x03, 0x04: // ctrl-c and ctrl-d arrive as bytes in raw mode
		return keyQuit
	}
	return keyNone
}

// readKeys puts stdin in raw mode and sends each byte to out until ctx ends
// or stdin closes. The terminal is restored before it returns.
func readKeys(ctx context.Context, out chan<- byte) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	bytes := make(chan byte)
	errCh := make(chan error, 1)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				select {
				case bytes <- buf[0]:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				errCh <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			if err == io.EOF {
				return nil
			}
			return err
		case b := <-bytes:
			select {
			case out <- b:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
