package live

import (
	"sync"
	"testing"
)

func edges(s []float32) int {
	n := 0
	var last float32
	for _, v := range s {
		if v > 0 && last == 0 {
			n++
		}
		last = v
	}
	return n
}

func TestPressBecomesGate(t *testing.T) {
	k := New(4)
	k.PressUp()
	up := make([]float32, 8)
	down := make([]float32, 8)
	k.Fill(up, down)
	want := []float32{High, High, High, High, 0, 0, 0, 0}
	for i := range want {
		if up[i] != want[i] || down[i] != 0 {
			t.Fatalf("frame %d: up=%v down=%v", i, up[i], down[i])
		}
	}
}

func TestQueuedPressesEachGetAnEdge(t *testing.T) {
	k := New(3)
	k.PressDown()
	k.PressDown()
	k.PressDown()
	up := make([]float32, 20)
	down := make([]float32, 20)
	k.Fill(up[:5], down[:5])
	k.Fill(up[5:], down[5:])
	if n := edges(down); n != 3 {
		t.Fatalf("got %d edges, want 3: %v", n, down)
	}
	if down[3] != 0 || down[4] != High {
		t.Fatalf("second gate should start after one low frame: %v", down)
	}
	if u, d := k.Pending(); u != 0 || d != 0 {
		t.Fatalf("pending = %d %d", u, d)
	}
}

func TestQueueIsBounded(t *testing.T) {
	k := New(1)
	for i := 0; i < MaxPending; i++ {
		if !k.PressUp() {
			t.Fatalf("press %d rejected", i)
		}
	}
	if k.PressUp() {
		t.Fatal("press beyond the queue bound should be rejected")
	}
}

func TestConcurrentPresses(t *testing.T) {
	k := New(1)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 3; j++ {
				k.PressUp()
			}
		}()
	}
	wg.Wait()
	up := make([]float32, 64)
	k.Fill(up, make([]float32, 64))
	if n := edges(up); n != 12 {
		t.Fatalf("got %d edges, want 12", n)
	}
}

func TestReset(t *testing.T) {
	k := New(10)
	k.PressUp()
	k.PressUp()
	up := make([]float32, 2)
	k.Fill(up, make([]float32, 2))
	k.Reset()
	k.Fill(up, make([]float32, 2))
	if up[0] != 0 || up[1] != 0 {
		t.Fatalf("gate survived reset: %v", up)
	}
}
