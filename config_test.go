package swrast

import "testing"

func TestDepthModeUsesDepth(t *testing.T) {
	if DepthNone.UsesDepth() {
		t.Error("DepthNone should not use depth")
	}
	if !DepthLessWrite.UsesDepth() {
		t.Error("DepthLessWrite should use depth")
	}
	if !DepthLessPass.UsesDepth() {
		t.Error("DepthLessPass (test only) should use depth")
	}
}

func TestCoordinateModePresets(t *testing.T) {
	cases := []struct {
		name string
		mode CoordinateMode
		hand Handedness
		yDir YAxisDirection
		zMin float32
		zMax float32
	}{
		{"OpenGL", CoordinateModeOpenGL, HandednessRight, YAxisUp, -1, 1},
		{"Vulkan", CoordinateModeVulkan, HandednessLeft, YAxisDown, 0, 1},
		{"Metal", CoordinateModeMetal, HandednessRight, YAxisDown, 0, 1},
		{"DirectX", CoordinateModeDirectX, HandednessLeft, YAxisUp, 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.mode.Handedness != c.hand {
				t.Errorf("handedness: got %v want %v", c.mode.Handedness, c.hand)
			}
			if c.mode.YAxisDirection != c.yDir {
				t.Errorf("y-axis: got %v want %v", c.mode.YAxisDirection, c.yDir)
			}
			if !c.mode.ZClipRange.HasRange || c.mode.ZClipRange.Min != c.zMin || c.mode.ZClipRange.Max != c.zMax {
				t.Errorf("z clip range: got %+v want [%v,%v]", c.mode.ZClipRange, c.zMin, c.zMax)
			}
		})
	}
}

func TestWithoutZClip(t *testing.T) {
	m := CoordinateModeOpenGL.WithoutZClip()
	if m.ZClipRange.HasRange {
		t.Error("expected z-clip range disabled")
	}
	if m.Handedness != HandednessRight {
		t.Error("WithoutZClip should not change other fields")
	}
}

func TestDefaultCoordinateModeIsVulkan(t *testing.T) {
	if DefaultCoordinateMode != CoordinateModeVulkan {
		t.Error("expected default coordinate mode to be Vulkan-like")
	}
}
