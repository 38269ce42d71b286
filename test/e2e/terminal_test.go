package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalProxy(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)
	token := env.authenticate("ada")
	sessionID := startSession(t, env, token, "first-image").Session.SessionID

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + env.baseURL[len("http"):] + "/ws/terminal/" + sessionID + "?token=" + token
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	t.Run("binary frames are forwarded byte-for-byte both ways", func(t *testing.T) {
		payload := []byte("ls -la\r")
		require.NoError(t, conn.Write(ctx, websocket.MessageBinary, payload))

		typ, data, err := conn.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, websocket.MessageBinary, typ)
		assert.Equal(t, "pty:ls -la\r", string(data))
	})

	t.Run("resize control frames pass through", func(t *testing.T) {
		require.NoError(t, conn.Write(ctx, websocket.MessageText,
			[]byte(`{"type":"resize","cols":120,"rows":40}`)))

		typ, data, err := conn.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, websocket.MessageText, typ)

		var reply struct {
			Type string `json:"type"`
			Cols int    `json:"cols"`
			Rows int    `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(data, &reply))
		assert.Equal(t, "resized", reply.Type)
		assert.Equal(t, 120, reply.Cols)
		assert.Equal(t, 40, reply.Rows)
	})
}

func TestTerminalRejectsExpiredSession(t *testing.T) {
	env := newTestEnv(t, 30*time.Minute)
	token := env.authenticate("ada")
	sessionID := startSession(t, env, token, "first-image").Session.SessionID

	status := env.do(token, http.MethodPost, "/sessions/"+sessionID+"/stop", nil, nil)
	require.Equal(t, http.StatusOK, status)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + env.baseURL[len("http"):] + "/ws/terminal/" + sessionID + "?token=" + token
	_, resp, err := websocket.Dial(ctx, wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
