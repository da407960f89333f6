package metrics

// Metric is implemented by every wrapper registered with the default prometheus registry.
type Metric interface {
	Register()
}
