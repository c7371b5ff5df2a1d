package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrgStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrgStatus
		to   OrgStatus
		want bool
	}{
		{OrgStatusPending, OrgStatusVerified, true},
		{OrgStatusPending, OrgStatusRejected, true},
		// Decisions are reversible.
		{OrgStatusVerified, OrgStatusRejected, true},
		{OrgStatusRejected, OrgStatusVerified, true},
		// Nothing can be decided before details were submitted.
		{OrgStatusIncomplete, OrgStatusVerified, false},
		{OrgStatusIncomplete, OrgStatusRejected, false},
		// Admin decisions never move a record to pending or incomplete.
		{OrgStatusVerified, OrgStatusPending, false},
		{OrgStatusRejected, OrgStatusIncomplete, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
