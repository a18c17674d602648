//go:build linux

package input

import (
	"errors"
	"testing"
)

func TestHookSupported(t *testing.T) {
	cases := []struct {
		name        string
		sessionType string
		display     string
		wantErr     bool
	}{
		{name: "x11", sessionType: "x11", display: ":0"},
		{name: "wayland", sessionType: "Wayland", display: ":0", wantErr: true},
		{name: "no display", sessionType: "tty", display: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("XDG_SESSION_TYPE", tc.sessionType)
			t.Setenv("DISPLAY", tc.display)

			err := hookSupported()
			if tc.wantErr && !errors.Is(err, ErrHookUnsupported) {
				t.Fatalf("err = %v, want ErrHookUnsupported", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("err = %v", err)
			}
		})
	}
}
