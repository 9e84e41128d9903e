package profiling

import (
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTopNAndSums(t *testing.T) {
	ResetFrame()
	record("renderer.Render", 4200*time.Microsecond)
	record("glfw.SwapBuffers", time.Millisecond)
	record("glfw.PollEvents", 500*time.Microsecond)

	if got, want := TopN(2), "renderer.Render:4.2ms, glfw.SwapBuffers:1ms"; got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
	if got := TopN(10); got != "renderer.Render:4.2ms, glfw.SwapBuffers:1ms, glfw.PollEvents:0.5ms" {
		t.Errorf("TopN(10) = %q", got)
	}
	if got := SumWithPrefix("glfw."); got != 1500*time.Microsecond {
		t.Errorf("SumWithPrefix(glfw.) = %v", got)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Fatal("snapshot not empty after reset")
	}
}

func TestTrackRecords(t *testing.T) {
	ResetFrame()
	stop := Track("test.Op")
	time.Sleep(time.Millisecond)
	stop()
	if got := Snapshot()["test.Op"]; got < time.Millisecond {
		t.Fatalf("tracked %v, want at least 1ms", got)
	}
}
