package nsq

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func newMessage(body string) *nsq.Message {
	var id nsq.MessageID
	copy(id[:], "0123456789abcdef")
	return nsq.NewMessage(id, []byte(body))
}

func TestWrapHandler(t *testing.T) {
	tests := []struct {
		name       string
		handlerErr error
		wantErr    bool
	}{
		{name: "Handled", handlerErr: nil, wantErr: false},
		{name: "Skipped", handlerErr: fmt.Errorf("bad payload: %w", ErrSkipMessage), wantErr: false},
		{name: "Failed", handlerErr: errors.New("store down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []byte
			h := wrapHandler(func(body []byte) error {
				got = body
				return tt.handlerErr
			})

			err := h.HandleMessage(newMessage(`{"ok":true}`))

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, `{"ok":true}`, string(got))
		})
	}
}

func TestNewConsumer_InvalidTopic(t *testing.T) {
	_, err := NewConsumer("bad topic!", "taximeter", models.NSQConfig{Address: "127.0.0.1:4150"}, func([]byte) error { return nil })
	assert.Error(t, err)
}
