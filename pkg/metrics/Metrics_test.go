package metrics

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCounterValue(t *testing.T) {
	before := StoreWrites.Value("metrics-test")

	StoreWrites.Increment("metrics-test")
	StoreWrites.Increment("metrics-test")

	assert.Equal(t, before+2, StoreWrites.Value("metrics-test"))
}

func TestGaugeValue(t *testing.T) {
	LoadingIndicator.Set(1)
	assert.Equal(t, float64(1), LoadingIndicator.Value())

	LoadingIndicator.Set(0)
	assert.Equal(t, float64(0), LoadingIndicator.Value())
}
