package menu

import "testing"

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from Status
		to   Status
	}{
		{StatusPending, StatusAnalyzing},
		{StatusAnalyzing, StatusCompleted},
		{StatusAnalyzing, StatusPending},
		{StatusCompleted, StatusApproved},
		{StatusCompleted, StatusAnalyzing},
		{StatusApproved, StatusAnalyzing},
		{StatusApproved, StatusApproved},
	}

	for _, tc := range allowed {
		next, err := tc.from.Transition(tc.to)
		if err != nil {
			t.Errorf("%s -> %s: unexpected error: %v", tc.from, tc.to, err)
		}
		if next != tc.to {
			t.Errorf("%s -> %s: got %s", tc.from, tc.to, next)
		}
	}

	denied := []struct {
		from Status
		to   Status
	}{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusApproved},
		{StatusAnalyzing, StatusApproved},
		{StatusCompleted, StatusPending},
		{StatusApproved, StatusPending},
		{StatusApproved, StatusCompleted},
	}

	for _, tc := range denied {
		if _, err := tc.from.Transition(tc.to); err == nil {
			t.Errorf("%s -> %s: expected error", tc.from, tc.to)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusAnalyzing, StatusCompleted, StatusApproved} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if Status("deleted").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}
