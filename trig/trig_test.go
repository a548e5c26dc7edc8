package trig

import (
	"math"
	"testing"
)

func TestAtZeroIsUnitX(t *testing.T) {
	e := At(0)
	if math.Abs(e.Cos-1) > 1e-12 || math.Abs(e.Sin) > 1e-12 {
		t.Fatalf("At(0) = %+v, want (1,0)", e)
	}
}

func TestAtQuarterIsUnitY(t *testing.T) {
	e := At(MaxTheta / 4)
	if math.Abs(e.Cos) > 1e-9 || math.Abs(e.Sin-1) > 1e-9 {
		t.Fatalf("At(MaxTheta/4) = %+v, want (0,1)", e)
	}
}

func TestOppositeAnglesNegate(t *testing.T) {
	e1 := At(10)
	e2 := At(10 + MaxTheta/2)
	if math.Abs(e1.Cos+e2.Cos) > 1e-9 || math.Abs(e1.Sin+e2.Sin) > 1e-9 {
		t.Fatalf("At(10) and At(10+MaxTheta/2) are not antipodal: %+v vs %+v", e1, e2)
	}
}
