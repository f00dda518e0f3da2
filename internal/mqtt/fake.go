package mqtt

// FakePublisher records published events for tests.
type FakePublisher struct {
	Events []StateEvent

	// PublishErr, if set, is returned by Publish.
	PublishErr error

	// Closed tracks if Close was called.
	Closed bool
}

func NewFakePublisher() *FakePublisher { return &FakePublisher{} }

// Publish records the event.
func (f *FakePublisher) Publish(ev StateEvent) error {
	if f.PublishErr != nil {
		return f.PublishErr
	}
	f.Events = append(f.Events, ev)
	return nil
}

// Close marks the publisher as closed.
func (f *FakePublisher) Close() error {
	f.Closed = true
	return nil
}
