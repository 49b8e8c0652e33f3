package riglog

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryCall, "CALL"},
		{CategoryState, "STATE"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	original := Event{
		Timestamp: time.Now().UTC(),
		RigID:     "rig-1",
		Model:     1,
		Category:  CategoryCall,
		Call: &CallEvent{
			Op:      "set_freq",
			Latency: 1500 * time.Microsecond,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.RigID != original.RigID || decoded.Model != original.Model {
		t.Errorf("identity fields lost: %+v", decoded)
	}
	if decoded.Category != CategoryCall {
		t.Errorf("category = %v, want CALL", decoded.Category)
	}
	if decoded.Call == nil {
		t.Fatal("call payload lost")
	}
	if decoded.Call.Op != "set_freq" || decoded.Call.Latency != original.Call.Latency {
		t.Errorf("call payload = %+v", decoded.Call)
	}
	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("timestamp = %v, want %v", decoded.Timestamp, original.Timestamp)
	}
}

func TestEncodeStateChangeEvent(t *testing.T) {
	data, err := EncodeEvent(Event{
		Timestamp:   time.Now(),
		RigID:       "rig-2",
		Category:    CategoryState,
		StateChange: &StateChangeEvent{OldState: "closed", NewState: "open"},
	})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if decoded.StateChange == nil {
		t.Fatal("state change payload lost")
	}
	if decoded.StateChange.OldState != "closed" || decoded.StateChange.NewState != "open" {
		t.Errorf("state change = %+v", decoded.StateChange)
	}
	if decoded.Call != nil {
		t.Error("call payload should be absent")
	}
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rig.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		logger.Log(Event{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			RigID:     "rig-1",
			Category:  CategoryCall,
			Call:      &CallEvent{Op: "get_freq"},
		})
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Events after Close are dropped, and a second Close is a no-op.
	logger.Log(Event{RigID: "late"})
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if ev.RigID != "rig-1" {
			t.Errorf("event rig ID = %q", ev.RigID)
		}
		count++
	}
	if count != 3 {
		t.Errorf("read %d events, want 3", count)
	}
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rig.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(Event{RigID: "a", Category: CategoryCall, Call: &CallEvent{Op: "set_freq"}})
	logger.Log(Event{RigID: "a", Category: CategoryError, Call: &CallEvent{Op: "set_mode", Error: "boom"}})
	logger.Log(Event{RigID: "b", Category: CategoryCall, Call: &CallEvent{Op: "set_freq"}})
	logger.Close()

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"by rig", Filter{RigID: "a"}, 2},
		{"by op", Filter{Op: "set_freq"}, 2},
		{"by category", Filter{Category: categoryPtr(CategoryError)}, 1},
		{"rig and op", Filter{RigID: "b", Op: "set_freq"}, 1},
		{"no match", Filter{RigID: "c"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			count := 0
			for {
				if _, err := reader.Next(); err != nil {
					break
				}
				count++
			}
			if count != tt.want {
				t.Errorf("matched %d events, want %d", count, tt.want)
			}
		})
	}
}

func categoryPtr(c Category) *Category { return &c }

type captureLogger struct {
	events []Event
}

func (c *captureLogger) Log(event Event) { c.events = append(c.events, event) }

func TestMultiLogger(t *testing.T) {
	a := &captureLogger{}
	b := &captureLogger{}

	m := NewMultiLogger(a, b, NopLogger{})
	m.Log(Event{RigID: "x"})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("fanout = %d/%d events, want 1/1", len(a.events), len(b.events))
	}
}

func TestTimeWindowFilter(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := Filter{
		TimeStart: timePtr(base),
		TimeEnd:   timePtr(base.Add(time.Minute)),
	}

	if f.matches(Event{Timestamp: base.Add(-time.Second)}) {
		t.Error("event before window matched")
	}
	if !f.matches(Event{Timestamp: base}) {
		t.Error("event at window start did not match")
	}
	if !f.matches(Event{Timestamp: base.Add(30 * time.Second)}) {
		t.Error("event inside window did not match")
	}
	if f.matches(Event{Timestamp: base.Add(time.Minute)}) {
		t.Error("event at window end matched; end is exclusive")
	}
}

func timePtr(t time.Time) *time.Time { return &t }
