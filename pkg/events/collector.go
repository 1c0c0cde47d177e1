package events

// EventCollector is embedded in aggregates to buffer the domain events raised
// by state transitions until the caller drains them for publishing.
type EventCollector struct {
	pending []DomainEvent
}

// Record buffers a domain event.
func (c *EventCollector) Record(event DomainEvent) {
	c.pending = append(c.pending, event)
}

// Events returns the buffered events without draining them.
func (c *EventCollector) Events() []DomainEvent {
	return c.pending
}

// Len reports how many events are waiting to be drained.
func (c *EventCollector) Len() int {
	return len(c.pending)
}

// ClearEvents drains the buffer, returning what it held.
func (c *EventCollector) ClearEvents() []DomainEvent {
	drained := c.pending
	c.pending = nil
	return drained
}
