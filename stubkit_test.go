package stubkit_test

import (
	"reflect"
	"testing"

	stubkit "github.com/stubkit-project/stubkit"
	"github.com/stubkit-project/stubkit/async"
	"github.com/stubkit-project/stubkit/intercept"
	"github.com/stubkit-project/stubkit/spy"
)

type service struct {
	Ping func() string
}

func TestIs(t *testing.T) {
	base, err := spy.New(spy.Config{Name: "base", Equal: reflect.DeepEqual})
	if err != nil {
		t.Fatal(err)
	}

	svc := &service{Ping: func() string { return "pong" }}
	h, err := intercept.Method(svc, "Ping")
	if err != nil {
		t.Fatal(err)
	}
	defer h.Restore()

	tt := []struct {
		name string
		v    any
		want bool
	}{
		{name: "Base spy", v: base, want: true},
		{name: "Async decorator", v: async.New("a"), want: true},
		{name: "Interception handle", v: h, want: true},
		{name: "Plain function", v: func() {}, want: false},
		{name: "Plain value", v: 42, want: false},
		{name: "Nil", v: nil, want: false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s, ok := stubkit.Is(tc.v)
			if ok != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, ok)
			}
			if !ok {
				return
			}
			if s.Name() == "" {
				t.Error("expected a name")
			}
			if s.CallCount() != 0 || len(s.CallRecords()) != 0 {
				t.Error("expected a fresh substitute to report zero calls")
			}
		})
	}
}

func TestMatcherLayerView(t *testing.T) {
	svc := &service{Ping: func() string { return "pong" }}
	h, err := intercept.Method(svc, "Ping")
	if err != nil {
		t.Fatal(err)
	}
	defer h.Restore()

	svc.Ping()
	svc.Ping()

	s, ok := stubkit.Is(h)
	if !ok {
		t.Fatal("expected the handle to be recognized")
	}
	if s.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", s.CallCount())
	}
	recs := s.CallRecords()
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].At.After(recs[1].At) {
		t.Error("expected records in call order")
	}
}
