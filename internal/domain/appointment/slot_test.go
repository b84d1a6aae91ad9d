package appointment

import "testing"

func TestSlotFor_KnownTimes(t *testing.T) {
	cases := []struct {
		clock string
		want  string
	}{
		{"09:00", "9-10"},
		{"09:59", "9-10"},
		{"10:30", "10-11"},
		{"11:00", "11-12"},
		{"11:59", "11-12"},
		{"12:00", "12-1"},
		{"14:00", "2-3"},
		{"14:45", "2-3"},
		{"15:00", "3-4"},
		{"16:59", "4-5"},
		{"17:00", "5-6"},
		{"17:59", "5-6"},
	}

	for _, tc := range cases {
		got, err := SlotFor(tc.clock)
		if err != nil {
			t.Errorf("SlotFor(%q) returned error: %v", tc.clock, err)
			continue
		}
		if got != tc.want {
			t.Errorf("SlotFor(%q) = %q, want %q", tc.clock, got, tc.want)
		}
	}
}

func TestSlotFor_OutsideSlots(t *testing.T) {
	for _, clock := range []string{"08:59", "13:00", "13:30", "13:59", "18:00", "23:59", "00:00"} {
		if _, err := SlotFor(clock); err == nil {
			t.Errorf("SlotFor(%q) should fail, time is outside every slot", clock)
		}
	}
}

func TestSlotFor_MalformedInput(t *testing.T) {
	for _, clock := range []string{"", "eleven", "25:00", "11:60", "11.00"} {
		if _, err := SlotFor(clock); err == nil {
			t.Errorf("SlotFor(%q) should fail on malformed input", clock)
		}
	}
}

func TestSlotFor_Deterministic(t *testing.T) {
	first, err := SlotFor("10:15")
	if err != nil {
		t.Fatalf("SlotFor returned error: %v", err)
	}

	for i := 0; i < 100; i++ {
		got, err := SlotFor("10:15")
		if err != nil || got != first {
			t.Fatalf("SlotFor is not deterministic: got %q (err %v), want %q", got, err, first)
		}
	}
}

func TestIsSlotLabel(t *testing.T) {
	for _, s := range Slots() {
		if !IsSlotLabel(s.Label) {
			t.Errorf("IsSlotLabel(%q) = false for a table entry", s.Label)
		}
	}

	if IsSlotLabel("6-7") {
		t.Error("IsSlotLabel(\"6-7\") = true, label is not in the table")
	}
}
