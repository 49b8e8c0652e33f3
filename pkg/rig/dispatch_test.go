package rig

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/driver/simrig"
)

// newSimRig wires a handle directly to a simulated backend so tests can
// reach the backend's failure injection and call journal.
func newSimRig(t *testing.T) (*Rig, *simrig.Rig) {
	t.Helper()
	sim := simrig.New(driver.DefaultPort(driver.PortSerial, "/dev/null"))
	r := &Rig{
		id:             "test",
		requestedModel: driver.ModelDummy,
		model:          driver.ModelDummy,
		portType:       driver.PortSerial,
		address:        "/dev/null",
		drv:            sim,
		disp:           newDispatcher(),
		state:          StateClosed,
	}
	go r.worker()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		r.Destroy(ctx)
	})
	return r, sim
}

func TestDispatchSerializesDriverCalls(t *testing.T) {
	r, sim := newSimRig(t)
	sim.CallDelay = 5 * time.Millisecond
	ctx := context.Background()

	if err := r.Open(ctx); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	const callers = 8
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if err := r.SetFrequency(ctx, int64(14_000_000+n*1000)); err != nil {
				t.Errorf("SetFrequency failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	var windows []simrig.Call
	for _, c := range sim.Journal() {
		if c.Name == "set_freq" {
			windows = append(windows, c)
		}
	}
	if len(windows) != callers {
		t.Fatalf("journal has %d set_freq calls, want %d", len(windows), callers)
	}

	sort.Slice(windows, func(i, j int) bool { return windows[i].Enter.Before(windows[j].Enter) })
	for i := 1; i < len(windows); i++ {
		if windows[i].Enter.Before(windows[i-1].Exit) {
			t.Fatalf("call %d entered at %v before call %d exited at %v",
				i, windows[i].Enter, i-1, windows[i-1].Exit)
		}
	}
}

func TestDispatchOrderIsSubmissionOrder(t *testing.T) {
	r, sim := newSimRig(t)
	ctx := context.Background()

	if err := r.Open(ctx); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	freqs := []int64{14_000_000, 14_001_000, 14_002_000, 14_003_000}
	for _, hz := range freqs {
		if err := r.SetFrequency(ctx, hz); err != nil {
			t.Fatalf("SetFrequency(%d) failed: %v", hz, err)
		}
	}

	var got []string
	for _, c := range sim.Journal() {
		if c.Name == "set_freq" {
			got = append(got, c.Name)
		}
	}
	if len(got) != len(freqs) {
		t.Fatalf("journal has %d set_freq calls, want %d", len(got), len(freqs))
	}

	hz, err := r.GetFrequency(ctx)
	if err != nil {
		t.Fatalf("GetFrequency failed: %v", err)
	}
	if hz != freqs[len(freqs)-1] {
		t.Errorf("final frequency = %d, want %d", hz, freqs[len(freqs)-1])
	}
}

func TestContextBoundsOnlyTheWait(t *testing.T) {
	r, sim := newSimRig(t)
	sim.CallDelay = 30 * time.Millisecond

	if err := r.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.SetFrequency(canceled, 14_100_000)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("SetFrequency with canceled ctx = %v, want context.Canceled", err)
	}

	// The abandoned task still ran to completion.
	hz, err := r.GetFrequency(context.Background())
	if err != nil {
		t.Fatalf("GetFrequency failed: %v", err)
	}
	if hz != 14_100_000 {
		t.Errorf("frequency = %d, abandoned task did not run", hz)
	}
}

func TestInjectedDriverFailure(t *testing.T) {
	r, sim := newSimRig(t)
	ctx := context.Background()

	if err := r.Open(ctx); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	sim.FailWith("set_freq", driver.StatusRejected)
	err := r.SetFrequency(ctx, 14_200_000)
	var de *DriverError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want *DriverError", err)
	}
	if de.Status != driver.StatusRejected {
		t.Errorf("status = %v, want rejected", de.Status)
	}
	if errors.Is(err, ErrUnsupported) {
		t.Error("rejected status must not read as unsupported")
	}

	sim.ClearFailures()
	sim.FailWith("get_ant", driver.StatusNotImplemented)
	_, err = r.GetAntenna(ctx)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("not-implemented status = %v, want ErrUnsupported", err)
	}
}

func TestPanicInDriverWorkIsRecovered(t *testing.T) {
	r, _ := newSimRig(t)
	ctx := context.Background()

	_, err := r.submit(ctx, &task{
		name: "boom",
		run:  func() (any, error) { panic("backend went sideways") },
	})
	if err == nil {
		t.Fatal("panicking task should fail")
	}
	if !strings.Contains(err.Error(), "internal error") {
		t.Errorf("error = %v, want internal error text", err)
	}

	// The worker survived the panic.
	if err := r.Open(ctx); err != nil {
		t.Fatalf("Open after panic failed: %v", err)
	}
}

func TestQueuedTaskAfterDestroyIsGuarded(t *testing.T) {
	r, sim := newSimRig(t)
	sim.CallDelay = 20 * time.Millisecond
	ctx := context.Background()

	if err := r.Open(ctx); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Queue slow work, then destroy. Tasks queued before the destroy run;
	// anything submitted after the seal fails immediately.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.SetFrequency(ctx, 14_300_000)
	}()
	time.Sleep(5 * time.Millisecond)

	if err := r.Destroy(ctx); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	wg.Wait()

	err := r.SetFrequency(ctx, 14_400_000)
	if !IsStateError(err) {
		t.Errorf("SetFrequency after destroy = %v, want state error", err)
	}
}

func TestSealedQueueRejectsEnqueue(t *testing.T) {
	d := newDispatcher()

	if !d.enqueue(&task{name: "a", done: make(chan taskResult, 1)}) {
		t.Fatal("enqueue on open queue failed")
	}
	if !d.enqueue(&task{name: "final", final: true, done: make(chan taskResult, 1)}) {
		t.Fatal("enqueue of final task failed")
	}
	if d.enqueue(&task{name: "late", done: make(chan taskResult, 1)}) {
		t.Fatal("enqueue after seal should fail")
	}

	// Queued tasks are still drained in order, then next returns nil.
	if got := d.next(); got == nil || got.name != "a" {
		t.Fatalf("first task = %v, want a", got)
	}
	if got := d.next(); got == nil || got.name != "final" {
		t.Fatalf("second task = %v, want final", got)
	}
	if got := d.next(); got != nil {
		t.Fatalf("drained queue returned %v, want nil", got)
	}
}
