package followup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusOpen, StatusInProgress, StatusCompleted, StatusClosed, StatusDropped} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("Blocked").IsValid())
	assert.False(t, StatusDone.IsValid(), "Done is only reachable through the legacy toggle")
}
