package realtime

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-backend/utils"
)

func fakeClient(hub *Hub, buf int) *Client {
	return &Client{id: "test", hub: hub, send: make(chan []byte, buf)}
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub, _ := startHub(t)
	client := fakeClient(hub, 8)
	require.True(t, hub.add(client))

	hub.Publish(EventOrderCreated, map[string]any{"id": 5})

	select {
	case msg := <-client.send:
		var ev Event
		require.NoError(t, json.Unmarshal(msg, &ev))
		assert.Equal(t, EventOrderCreated, ev.Type)
		assert.JSONEq(t, `{"id":5}`, string(ev.Payload))
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHub_Unregister(t *testing.T) {
	hub, _ := startHub(t)
	client := fakeClient(hub, 8)
	require.True(t, hub.add(client))
	hub.remove(client)

	_, open := <-client.send
	assert.False(t, open, "send channel should be closed")
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub, _ := startHub(t)
	slow := fakeClient(hub, 0)
	require.True(t, hub.add(slow))

	hub.Publish(EventContactCreated, map[string]any{"id": 1})

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_StopClosesClientsAndIgnoresLatePublish(t *testing.T) {
	hub, cancel := startHub(t)
	client := fakeClient(hub, 8)
	require.True(t, hub.add(client))

	cancel()
	<-hub.done

	_, open := <-client.send
	assert.False(t, open)
	assert.False(t, hub.add(fakeClient(hub, 1)))
	hub.Publish(EventOrderCreated, nil)
}

func TestServeWS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub, _ := startHub(t)

	r := gin.New()
	r.GET("/ws/admin", ServeWS(hub, "secret"))
	srv := httptest.NewServer(r)
	defer srv.Close()
	base := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/admin"

	_, resp, err := websocket.DefaultDialer.Dial(base, nil)
	require.Error(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(base+"?token=garbage", nil)
	require.Error(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	token, err := utils.GenerateToken("secret", 1, "admin@weddingbliss.com", time.Minute)
	require.NoError(t, err)
	conn, _, err := websocket.DefaultDialer.Dial(base+"?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	hub.Publish(EventCustomRequestCreated, map[string]any{"id": 3})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, EventCustomRequestCreated, ev.Type)
}
