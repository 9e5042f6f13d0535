// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "calendar date", in: `"2026-03-14"`, want: "2026-03-14"},
		{name: "timestamp", in: `"2026-03-14T23:10:00Z"`, want: "2026-03-14"},
		{name: "null", in: `null`, want: ""},
		{name: "empty", in: `""`, want: ""},
		{name: "garbage", in: `"yesterday"`, wantErr: true},
		{name: "number", in: `20260314`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-03-14"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
