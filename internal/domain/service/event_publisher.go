package service

import (
	"context"

	"brewmenu/internal/domain/entity"
)

// EventPublisher fans menu changes out to other instances.
type EventPublisher interface {
	PublishMenuChanged(ctx context.Context, event *entity.MenuChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
