package platform

import (
	"testing"
	"time"
)

func TestParseHIDIdleTime(t *testing.T) {
	output := []byte(`+-o IOHIDSystem  <class IOHIDSystem>
    {
      "HIDIdleTime" = 2500000000
      "HIDParameters" = {}
    }
`)
	idle, err := parseHIDIdleTime(output)
	if err != nil {
		t.Fatalf("parseHIDIdleTime: %v", err)
	}
	if idle != 2500*time.Millisecond {
		t.Fatalf("idle = %v", idle)
	}

	if _, err := parseHIDIdleTime([]byte("nothing here")); err == nil {
		t.Fatal("expected error without HIDIdleTime")
	}
}
