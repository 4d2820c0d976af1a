package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAndTopN(t *testing.T) {
	Reset()
	defer Reset()

	stop := Track("atlas.Draw")
	time.Sleep(2 * time.Millisecond)
	stop()
	Track("atlas.Draw")()
	Track("texture.Load")()

	phases := Phases()
	if len(phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(phases))
	}
	if phases[0].Name != "atlas.Draw" || phases[0].Calls != 2 {
		t.Errorf("first phase %+v", phases[0])
	}
	if got := SumWithPrefix("atlas."); got < 2*time.Millisecond {
		t.Errorf("SumWithPrefix = %v", got)
	}
	if top := TopN(5); !strings.HasPrefix(top, "atlas.Draw:") || !strings.Contains(top, ", texture.Load:") {
		t.Errorf("TopN = %q", top)
	}
}

func TestFormatMs(t *testing.T) {
	for _, c := range []struct {
		d    time.Duration
		want string
	}{
		{12 * time.Millisecond, "12ms"},
		{1500 * time.Microsecond, "1.5ms"},
		{0, "0ms"},
	} {
		if got := formatMs(c.d); got != c.want {
			t.Errorf("formatMs(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
