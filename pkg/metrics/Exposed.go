package metrics

var EventsSent = NewCounter("events_sent_total", "Total events sent on the local event channel", []string{"event"})
var EventsDelivered = NewCounter("events_delivered_total", "Total events handed to listeners", []string{"event"})
var EventsForwarded = NewCounter("events_forwarded_total", "Total events written to or read from an event link", []string{"event", "direction"})

var StoreWrites = NewCounter("store_writes_total", "Total whole-file writes of a JSON store", []string{"store"})
var StoreErrors = NewCounter("store_errors_total", "Total failed JSON store operations", []string{"store", "op"})

var Provisioned = NewCounter("provisioned_total", "Total provisioning requests handled by the backend", []string{"kind", "outcome"})
var ProvisionDuration = NewHistogram("provision_duration_seconds", "Time spent handling one provisioning request", []string{"kind"})
var LoadingIndicator = NewGauge("loading_indicator", "Loading indicator state, 1 when open", []string{})
