package call

import (
	"reflect"
	"testing"
	"time"
)

func TestEmptyList(t *testing.T) {
	var l List

	if l.Len() != 0 {
		t.Errorf("expected empty list, got %d records", l.Len())
	}
	if l.Called() {
		t.Error("expected Called to be false")
	}
	if l.First() != nil || l.Last() != nil {
		t.Error("expected First and Last to be nil")
	}
	for _, i := range []int{-2, -1, 0, 1, 100} {
		if l.At(i) != nil {
			t.Errorf("expected At(%d) to be nil", i)
		}
	}
}

func TestAppendOrdering(t *testing.T) {
	var l List

	for i := 0; i < 5; i++ {
		l.Append(&Record{Args: []any{i}, At: time.Now()})
	}

	if l.Len() != 5 {
		t.Fatalf("expected 5 records, got %d", l.Len())
	}
	for i := 0; i < 5; i++ {
		r := l.At(i)
		if r == nil {
			t.Fatalf("expected record at %d", i)
		}
		if r.Args[0] != i {
			t.Errorf("expected record %d to hold %d, got %v", i, i, r.Args[0])
		}
	}
	if l.At(5) != nil || l.At(-1) != nil {
		t.Error("expected out-of-range lookups to be nil")
	}
	if l.First().Args[0] != 0 || l.Last().Args[0] != 4 {
		t.Error("expected First/Last to follow call order")
	}
}

func TestCountQueries(t *testing.T) {
	tt := []struct {
		name   string
		count  int
		once   bool
		twice  bool
		thrice bool
	}{
		{name: "None", count: 0},
		{name: "One", count: 1, once: true},
		{name: "Two", count: 2, twice: true},
		{name: "Three", count: 3, thrice: true},
		{name: "Four", count: 4},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			var l List
			for i := 0; i < tc.count; i++ {
				l.Append(&Record{At: time.Now()})
			}
			if l.Called() != (tc.count > 0) {
				t.Errorf("Called: expected %v", tc.count > 0)
			}
			if l.CalledOnce() != tc.once {
				t.Errorf("CalledOnce: expected %v", tc.once)
			}
			if l.CalledTwice() != tc.twice {
				t.Errorf("CalledTwice: expected %v", tc.twice)
			}
			if l.CalledThrice() != tc.thrice {
				t.Errorf("CalledThrice: expected %v", tc.thrice)
			}
		})
	}
}

func TestMatchArgs(t *testing.T) {
	var l List
	l.Append(&Record{Args: []any{"user-1", 42}, At: time.Now()})
	l.Append(&Record{Args: []any{"user-2", []int{1, 2}}, At: time.Now()})

	eq := Equality(reflect.DeepEqual)

	tt := []struct {
		name string
		args []any
		want bool
	}{
		{name: "Exact match", args: []any{"user-1", 42}, want: true},
		{name: "Deep match", args: []any{"user-2", []int{1, 2}}, want: true},
		{name: "Wrong value", args: []any{"user-1", 43}, want: false},
		{name: "Shorter args", args: []any{"user-1"}, want: false},
		{name: "Longer args", args: []any{"user-1", 42, true}, want: false},
		{name: "No args", args: nil, want: false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.MatchArgs(eq, tc.args...); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}

	t.Run("Nil predicate", func(t *testing.T) {
		if l.MatchArgs(nil, "user-1", 42) {
			t.Error("expected nil predicate to match nothing")
		}
	})

	t.Run("Zero args against zero-arg call", func(t *testing.T) {
		var empty List
		empty.Append(&Record{At: time.Now()})
		if !empty.MatchArgs(eq) {
			t.Error("expected zero-arg match against a zero-arg call")
		}
	})
}

func TestClear(t *testing.T) {
	var l List
	l.Append(&Record{At: time.Now()})
	l.Clear()

	if l.Len() != 0 {
		t.Fatalf("expected empty list after Clear, got %d", l.Len())
	}

	l.Append(&Record{At: time.Now()})
	if l.Len() != 1 {
		t.Error("expected list to stay usable after Clear")
	}
}
