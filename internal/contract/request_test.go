package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlanRequest_UsesStoredSettings(t *testing.T) {
	req := NewPlanRequest()

	assert.Nil(t, req.Now)
	assert.Nil(t, req.TotalHours)
	assert.Nil(t, req.MaxPerSubject)
	assert.False(t, req.DryRun)
}

func TestNewDashboardRequest_Defaults(t *testing.T) {
	assert.Nil(t, NewDashboardRequest().Now)
}
