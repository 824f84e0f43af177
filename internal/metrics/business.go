package metrics

// IncrementEntityCreated increments the creation counter for an entity type
func (m *Metrics) IncrementEntityCreated(entityType string) {
	m.safeExecute("IncrementEntityCreated", func() {
		m.EntityCreatedTotal.WithLabelValues(entityType).Inc()
	})
}
