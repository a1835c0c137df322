package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestUpstreamRequestsTotal_Increments(t *testing.T) {
	counter := UpstreamRequestsTotal.WithLabelValues("companylist", OutcomeSuccess)
	before := testutil.ToFloat64(counter)

	counter.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestShipmentStatusTotal_SeparatesLabels(t *testing.T) {
	arrived := ShipmentStatusTotal.WithLabelValues("arrived")
	unknown := ShipmentStatusTotal.WithLabelValues("unknown")
	arrivedBefore := testutil.ToFloat64(arrived)
	unknownBefore := testutil.ToFloat64(unknown)

	arrived.Inc()

	assert.Equal(t, arrivedBefore+1, testutil.ToFloat64(arrived))
	assert.Equal(t, unknownBefore, testutil.ToFloat64(unknown))
}
