package sse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishToMany(t *testing.T) {
	h := NewHub()
	a, cancelA := h.Subscribe("emp-001")
	defer cancelA()
	b, cancelB := h.Subscribe("tl-001")
	defer cancelB()

	h.PublishToMany([]string{"emp-001", "tl-001", "nobody"}, Event{Name: "chat.message", Data: "hello"})

	ev := <-a
	assert.Equal(t, "emp-001", ev.UserID)
	assert.Equal(t, "hello", ev.Data)
	ev = <-b
	assert.Equal(t, "tl-001", ev.UserID)
	assert.Equal(t, 2, h.TotalSubscribers())
}

func TestHub_CancelIsIdempotent(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("emp-001")
	assert.Equal(t, 1, h.SubscriberCount("emp-001"))

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.SubscriberCount("emp-001"))

	h.Publish("emp-001", Event{Name: "x"})
}

func TestHub_FullBufferDropsEvents(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("emp-001")
	defer cancel()

	for i := 0; i < subscriberBuffer+5; i++ {
		h.Publish("emp-001", Event{Name: "tick", Data: i})
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestEvent_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	_, err := Event{Name: "chat.message", Data: map[string]string{"content": "hi"}}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "event: chat.message\ndata: {\"content\":\"hi\"}\n\n", buf.String())
}
