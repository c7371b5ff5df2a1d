package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceFor(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		want      SessionReference
	}{
		{"donor", &Donor{ID: 1, Role: RoleDonor}, SessionReference{ID: 1, Model: ModelDonor}},
		{"admin maps to the donor table", &Donor{ID: 2, Role: RoleAdmin}, SessionReference{ID: 2, Model: ModelDonor}},
		{"organization", &Organization{ID: 3}, SessionReference{ID: 3, Model: ModelOrg}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReferenceFor(tt.principal))
		})
	}
}

func TestSessionReferenceWireFormat(t *testing.T) {
	data, err := json.Marshal(SessionReference{ID: 42, Model: ModelOrg})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"model":"Org"}`, string(data))

	var ref SessionReference
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"model":"Donor"}`), &ref))
	assert.Equal(t, SessionReference{ID: 7, Model: ModelDonor}, ref)
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(2*time.Minute)))
}
