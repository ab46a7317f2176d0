package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dannyphamv/labelpress/internal/core/history"
)

func TestOutcomeStatus(t *testing.T) {
	tests := []struct {
		outcome history.Outcome
		want    string
	}{
		{history.OutcomePrinted, "ok"},
		{history.OutcomeFailed, "failed"},
		{history.OutcomeRenderOnly, "render_only"},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			status := outcomeStatus(history.Entry{Outcome: tt.outcome})
			assert.True(t, strings.Contains(status, tt.want), "status %q missing %q", status, tt.want)
		})
	}
}
