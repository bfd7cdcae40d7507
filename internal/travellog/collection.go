package travellog

// Collection is an in-memory ordered set of travel logs. Insertion order is
// creation order and also display order. It is not safe for concurrent use;
// the application controller is its only writer.
type Collection struct {
	logs []TravelLog
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends log, rejecting ids already present.
func (c *Collection) Add(log TravelLog) error {
	for _, existing := range c.logs {
		if existing.ID == log.ID {
			return ErrDuplicateID
		}
	}
	c.logs = append(c.logs, log)
	return nil
}

// FindByID returns the log with the given id.
func (c *Collection) FindByID(id int64) (TravelLog, error) {
	for _, log := range c.logs {
		if log.ID == id {
			return log, nil
		}
	}
	return TravelLog{}, ErrNotFound
}

// RemoveByID removes and returns the log with the given id, preserving the
// order of the remaining logs.
func (c *Collection) RemoveByID(id int64) (TravelLog, error) {
	for i, log := range c.logs {
		if log.ID == id {
			c.logs = append(c.logs[:i], c.logs[i+1:]...)
			return log, nil
		}
	}
	return TravelLog{}, ErrNotFound
}

// Clear empties the collection. Clearing an empty collection is a no-op.
func (c *Collection) Clear() {
	c.logs = nil
}

// All returns a fresh snapshot of the logs in insertion order. Callers must
// not hold on to earlier snapshots across mutations.
func (c *Collection) All() []TravelLog {
	out := make([]TravelLog, len(c.logs))
	copy(out, c.logs)
	return out
}

// Len reports the number of logs.
func (c *Collection) Len() int {
	return len(c.logs)
}
