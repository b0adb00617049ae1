package timezone_test

import (
	"testing"

	"github.com/barberia-app/barberia-api/internal/timezone"
)

func TestIsValid(t *testing.T) {
	if !timezone.IsValid("America/Mexico_City") {
		t.Error("expected America/Mexico_City to be valid")
	}
	if !timezone.IsValid("UTC") {
		t.Error("expected UTC to be valid")
	}
	if timezone.IsValid("") {
		t.Error("expected empty timezone to be invalid")
	}
	if timezone.IsValid("Mars/Olympus_Mons") {
		t.Error("expected unknown timezone to be invalid")
	}
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := timezone.Location("Mars/Olympus_Mons")
	if loc == nil {
		t.Fatal("Location() returned nil")
	}
	if loc.String() != timezone.DefaultTimezone {
		t.Errorf("expected fallback to %s, got %s", timezone.DefaultTimezone, loc)
	}
}

func TestNowIn(t *testing.T) {
	now := timezone.NowIn("UTC")
	if now.IsZero() {
		t.Error("NowIn() returned zero time")
	}
	if now.Location().String() != "UTC" {
		t.Errorf("expected UTC location, got %s", now.Location())
	}
}
