package ports

// EventPublisher emits the notifications observed by the external relay.
type EventPublisher interface {
	Publish(topic string, payload any) error
	Close() error
}
