package dose

import (
	"math"
	"testing"
)

func TestCoefficientNearestEnergy(t *testing.T) {
	// 14.1 MeV AP conversion is 495 pSv cm^2 per neutron
	if got := Coefficient(14.1e6); got != 495e-12 {
		t.Errorf("expected 495e-12, got %g", got)
	}
	if got := Coefficient(14.5e6); got != 495e-12 {
		t.Errorf("nearest lookup failed: got %g", got)
	}
	if got := Coefficient(1e6); got != 294e-12 {
		t.Errorf("expected 294e-12, got %g", got)
	}
}

func TestEstimateInverseSquare(t *testing.T) {
	near, err := Estimate(1e18, 100, 14.1e6)
	if err != nil {
		t.Fatal(err)
	}
	far, err := Estimate(1e18, 200, 14.1e6)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(near/far-4) > 1e-9 {
		t.Errorf("expected inverse-square falloff, ratio %f", near/far)
	}
}

func TestEstimateValue(t *testing.T) {
	// 1e18 neutrons of 14.1 MeV at 1 m: fluence 1e18/(4 pi 1e4)
	got, err := Estimate(1e18, 100, 14.1e6)
	if err != nil {
		t.Fatal(err)
	}
	want := 1e18 / (4 * math.Pi * 1e4) * 495e-12
	if math.Abs(got-want)/want > 1e-12 {
		t.Errorf("expected %g Sv, got %g", want, got)
	}
}

func TestEstimateValidation(t *testing.T) {
	if _, err := Estimate(-1, 100, 1e6); err == nil {
		t.Error("expected error for negative particle count")
	}
	if _, err := Estimate(1, 0, 1e6); err == nil {
		t.Error("expected error for zero distance")
	}
}
