package swrast

import "testing"

func TestUnitWeightedSum(t *testing.T) {
	var u Unit
	if got := u.WeightedSum3(Unit{}, Unit{}, 0.2, 0.3, 0.5); got != (Unit{}) {
		t.Errorf("expected zero-value Unit, got %+v", got)
	}
}

func TestF32WeightedSum2(t *testing.T) {
	a, b := F32(0), F32(10)
	got := a.WeightedSum2(b, 0.25, 0.75)
	if want := F32(7.5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestVec2WeightedSum3(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{1, 0}
	c := Vec2{0, 1}
	got := a.WeightedSum3(b, c, 1.0/3, 1.0/3, 1.0/3)
	if got[0] < 0.32 || got[0] > 0.34 || got[1] < 0.32 || got[1] > 0.34 {
		t.Errorf("expected centroid ~(1/3,1/3), got %+v", got)
	}
}

func TestVec3WeightedSum2Endpoints(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{5, 6, 7}
	if got := a.WeightedSum2(b, 1, 0); got != a {
		t.Errorf("weight 1 on self should return self, got %+v", got)
	}
	if got := a.WeightedSum2(b, 0, 1); got != b {
		t.Errorf("weight 1 on other should return other, got %+v", got)
	}
}
