package funccache

import (
	"strings"
	"testing"
)

func namedForTest() int { return 42 }

func TestIdentity(t *testing.T) {
	got := Identity(namedForTest)
	if !strings.HasSuffix(got, ".namedForTest") {
		t.Errorf("Identity() = %q, want suffix .namedForTest", got)
	}
	if !strings.Contains(got, "funccache") {
		t.Errorf("Identity() = %q, want package-qualified name", got)
	}
}

func TestIdentity_Stable(t *testing.T) {
	if Identity(namedForTest) != Identity(namedForTest) {
		t.Error("Identity() must be stable for the same function")
	}
}

func TestIdentity_NonFunction(t *testing.T) {
	if got := Identity(42); got != "int" {
		t.Errorf("Identity(42) = %q, want int", got)
	}
	if got := Identity(nil); got != "<nil>" {
		t.Errorf("Identity(nil) = %q, want <nil>", got)
	}
}
