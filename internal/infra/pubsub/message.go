package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"brewmenu/internal/domain/entity"

	"github.com/pkg/errors"
)

// Message attribute keys.
const (
	AttrOperation = "operation"
	AttrProductID = "product_id"
	AttrRequestID = "request_id"
)

// PushMessage is the JSON envelope Pub/Sub posts to push endpoints.
// The local publisher produces the same shape.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeMenuChanged extracts the event carried by a push envelope.
func (m *PushMessage) DecodeMenuChanged() (*entity.MenuChangedEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 payload")
	}

	var event entity.MenuChangedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "invalid event payload")
	}

	return &event, nil
}

func eventAttributes(event *entity.MenuChangedEvent) map[string]string {
	attributes := map[string]string{
		AttrOperation: event.Operation,
	}
	if event.ProductID != "" {
		attributes[AttrProductID] = event.ProductID
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
