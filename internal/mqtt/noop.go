package mqtt

// NoopPublisher satisfies Publisher when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (*NoopPublisher) Publish(StateEvent) error { return nil }
func (*NoopPublisher) Close() error             { return nil }
