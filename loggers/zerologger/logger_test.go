package zerologger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := Wrap(zerolog.New(&buf))

	l.Errorf("role %s is not loaded", "ghost")
	out := buf.String()
	if !strings.Contains(out, "role ghost is not loaded") {
		t.Fatalf("error message is missing from output: %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) {
		t.Fatalf("error level is missing from output: %s", out)
	}

	buf.Reset()
	l.Debugf("checking %s", "trips.view.self")
	if !strings.Contains(buf.String(), `"level":"debug"`) {
		t.Fatalf("debug level is missing from output: %s", buf.String())
	}
}
