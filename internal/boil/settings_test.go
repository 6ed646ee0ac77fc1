package boil

import (
	"testing"

	"github.com/MeKo-Tech/lineboil/internal/mesh"
)

func TestPresets(t *testing.T) {
	s, ok := Preset("subtle")
	if !ok {
		t.Fatal("subtle preset missing")
	}
	if s.Intensity != 0.008 || s.FrameRate != 8 || s.NoiseFrequency != 6 {
		t.Errorf("subtle = %+v", s)
	}

	s, ok = Preset("aggressive")
	if !ok {
		t.Fatal("aggressive preset missing")
	}
	if s.Intensity != 0.04 || s.FrameRate != 4 || s.NoiseFrequency != 12 {
		t.Errorf("aggressive = %+v", s)
	}

	if _, ok := Preset("nope"); ok {
		t.Error("unknown preset should not resolve")
	}

	if len(PresetNames()) != 2 {
		t.Errorf("PresetNames() = %v", PresetNames())
	}
}

func TestSettings_Validate(t *testing.T) {
	cases := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{"subtle", Subtle, false},
		{"aggressive", Aggressive, false},
		{"negative intensity", Settings{Intensity: -0.1, FrameRate: 8, NoiseFrequency: 6}, true},
		{"zero frame rate", Settings{Intensity: 0.01, FrameRate: 0, NoiseFrequency: 6}, true},
		{"zero frequency", Settings{Intensity: 0.01, FrameRate: 8, NoiseFrequency: 0}, true},
		{"zero intensity ok", Settings{Intensity: 0, FrameRate: 8, NoiseFrequency: 6}, false},
	}

	for _, tc := range cases {
		err := tc.s.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestSettings_AtIsASnapshot(t *testing.T) {
	base := Subtle
	snap := base.At(3.5)
	if snap.Time != 3.5 {
		t.Errorf("At(3.5).Time = %v", snap.Time)
	}
	if base.Time != 0 {
		t.Errorf("At mutated the receiver: %v", base.Time)
	}
}

func TestDisplaceVertex_ForwardsAttributes(t *testing.T) {
	normal := mesh.Vec3{X: 0, Y: 0, Z: 1}
	uv := [2]float64{0.25, 0.75}
	tangent := mesh.Vec4{X: 1, Y: 0, Z: 0, W: 1}
	col := [4]float64{1, 0.5, 0.25, 1}

	v := Vertex{
		Position: mesh.Vec4{X: 0.2, Y: 0.3, Z: 0.1, W: 1},
		Normal:   &normal,
		UV:       &uv,
		Tangent:  &tangent,
		Color:    &col,
	}

	out := DisplaceVertex(v, Aggressive.At(0.5))

	if out.Normal != &normal || out.UV != &uv || out.Tangent != &tangent || out.Color != &col {
		t.Error("attributes were not forwarded untouched")
	}
	if out.Position == v.Position {
		t.Error("position was not displaced")
	}
	if out.Position.Z != v.Position.Z || out.Position.W != v.Position.W {
		t.Error("displacement leaked into z/w")
	}

	// Absent attributes stay absent.
	bare := DisplaceVertex(Vertex{Position: v.Position}, Subtle.At(1))
	if bare.Normal != nil || bare.UV != nil || bare.Tangent != nil || bare.Color != nil {
		t.Error("nil attributes should remain nil")
	}
}

func TestDisplaceAll_MatchesSingle(t *testing.T) {
	s := Subtle.At(0.7)
	buf := []mesh.Vec4{
		{X: 0.1, Y: 0.1, Z: 0.1, W: 1},
		{X: -0.4, Y: 0.2, Z: 0.3, W: 2},
		{X: 0.9, Y: -0.9, Z: 0.5, W: 0.5},
	}

	want := make([]mesh.Vec4, len(buf))
	for i, p := range buf {
		want[i] = DisplaceClip(p, s)
	}

	DisplaceAll(buf, s)
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("element %d: %v != %v", i, buf[i], want[i])
		}
	}
}
