package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	cases := []struct {
		in   string
		want Window
	}{
		{"day", WindowDay},
		{"week", WindowWeek},
		{"month", WindowMonth},
		{"all", WindowAll},
		{"", WindowAll},
	}
	for _, tc := range cases {
		got, err := ParseWindow(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := ParseWindow("fortnight")
	require.Error(t, err)
}

func TestWindowString_RoundTrips(t *testing.T) {
	for _, w := range []Window{WindowDay, WindowWeek, WindowMonth, WindowAll} {
		got, err := ParseWindow(w.String())
		require.NoError(t, err)
		require.Equal(t, w, got)
	}
}
