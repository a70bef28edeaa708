package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", in: `"30s"`, want: 30 * time.Second},
		{name: "nanoseconds", in: `1500000000`, want: 1500 * time.Millisecond},
		{name: "bad string", in: `"tomorrow"`, wantErr: true},
		{name: "bad type", in: `true`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tc.in), &d)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON_RoundTrip(t *testing.T) {
	d := Duration{Duration: 45 * time.Second}
	b, err := json.Marshal(d)
	require.NoError(t, err)

	var back Duration
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, d.Duration, back.Duration)
}
