// Package terminal bridges an interactive shell inside a worker container
// to a WebSocket: binary frames carry raw PTY bytes, text frames carry
// resize and ping control messages.
package terminal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/docker/docker/api/types/container"

	"github.com/codeready-toolchain/dockhand/pkg/runner/engine"
)

// defaultShell is used when the client does not request one.
const defaultShell = "/bin/sh"

// closeGrace bounds how long the PTY side may stay open after the socket
// closes (and vice versa).
const closeGrace = 2 * time.Second

// controlMessage is a client text frame. Unknown types are ignored.
type controlMessage struct {
	Type string `json:"type"`
	Cols uint   `json:"cols,omitempty"`
	Rows uint   `json:"rows,omitempty"`
}

// Session is one live PTY bridge.
type Session struct {
	engine      *engine.Engine
	containerID string
	execID      string
	logger      *slog.Logger
}

// Attach allocates a TTY exec running the requested shell in the worker
// container and pumps it over conn until either side closes. Blocks for
// the lifetime of the terminal.
func Attach(ctx context.Context, eng *engine.Engine, containerID, shell, workdir string, conn *websocket.Conn) error {
	if shell == "" {
		shell = defaultShell
	}

	cli := eng.Client()
	execResp, err := cli.ContainerExecCreate(ctx, containerID, container.ExecOptions{
		Cmd:          []string{shell, "-l"},
		WorkingDir:   workdir,
		Tty:          true,
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
		Env:          []string{"TERM=xterm-256color"},
	})
	if err != nil {
		return err
	}

	attach, err := cli.ContainerExecAttach(ctx, execResp.ID, container.ExecStartOptions{Tty: true})
	if err != nil {
		return err
	}
	defer attach.Close()

	s := &Session{
		engine:      eng,
		containerID: containerID,
		execID:      execResp.ID,
		logger: slog.Default().With(
			"component", "terminal",
			"container_id", containerID[:12]),
	}

	ptyCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, 2)
	go func() { errs <- s.pumpToSocket(ptyCtx, attach.Reader, conn) }()
	go func() { errs <- s.pumpFromSocket(ptyCtx, conn, attach.Conn) }()

	firstErr := <-errs
	cancel()
	attach.Close()

	select {
	case <-errs:
	case <-time.After(closeGrace):
	}

	if websocket.CloseStatus(firstErr) != -1 || firstErr == io.EOF {
		// Clean close from either end.
		conn.Close(websocket.StatusNormalClosure, "")
		return nil
	}
	conn.Close(websocket.StatusInternalError, "terminal error")
	return firstErr
}

// pumpToSocket forwards PTY output to the socket as binary frames. The
// read buffer is the only buffering between the PTY and the client, so a
// slow client backpressures the shell via the PTY buffer.
func (s *Session) pumpToSocket(ctx context.Context, pty io.Reader, conn *websocket.Conn) error {
	buf := make([]byte, 8192)
	for {
		n, err := pty.Read(buf)
		if n > 0 {
			if writeErr := conn.Write(ctx, websocket.MessageBinary, buf[:n]); writeErr != nil {
				return writeErr
			}
		}
		if err != nil {
			return err
		}
	}
}

// pumpFromSocket forwards client frames: binary bytes go to the PTY,
// text frames are parsed as control messages.
func (s *Session) pumpFromSocket(ctx context.Context, conn *websocket.Conn, pty io.Writer) error {
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		switch typ {
		case websocket.MessageBinary:
			if _, err := pty.Write(data); err != nil {
				return err
			}
		case websocket.MessageText:
			s.handleControl(ctx, conn, data)
		}
	}
}

func (s *Session) handleControl(ctx context.Context, conn *websocket.Conn, data []byte) {
	var msg controlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}

	switch msg.Type {
	case "resize":
		if msg.Cols == 0 || msg.Rows == 0 {
			return
		}
		err := s.engine.Client().ContainerExecResize(ctx, s.execID, container.ResizeOptions{
			Width:  msg.Cols,
			Height: msg.Rows,
		})
		if err != nil {
			s.logger.Warn("Terminal resize failed", "error", err)
		}
	case "ping":
		payload, _ := json.Marshal(map[string]string{"type": "pong"})
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			s.logger.Warn("Failed to answer ping", "error", err)
		}
	}
}
