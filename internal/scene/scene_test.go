package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
name: test
background: "#ffffff"
camera:
  fov: 60
  eye: [0, 0, 5]
  target: [0, 0, 0]
entities:
  - name: ring
    shape: circle
    center: [1, 2, 0]
    radius: 0.5
    stroke_width: 2
    color: "#336699"
    preset: aggressive
    seed: 7
  - name: path
    shape: polyline
    points: [[0, 0, 0], [1, 0, 0], [1, 1, 0]]
    stroke_width: 1.5
    boil:
      intensity: 0.02
      noise_frequency: 9
`

func TestParse_Sample(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, "test", s.Name)
	require.Equal(t, 60.0, s.Camera.FOV)
	require.Len(t, s.Entities, 2)

	ring := s.Entities[0]
	require.Equal(t, "circle", ring.Shape)
	require.Equal(t, 7.0, ring.Seed)

	rs := ring.Settings()
	require.Equal(t, 0.04, rs.Intensity) // aggressive preset
	require.Equal(t, 7.0, rs.Seed)

	path := s.Entities[1]
	ps := path.Settings()
	require.Equal(t, 0.02, ps.Intensity)     // override
	require.Equal(t, 9.0, ps.NoiseFrequency) // override
	require.Equal(t, 8.0, ps.FrameRate)      // subtle default kept
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"no entities": `
camera: {eye: [0,0,5], target: [0,0,0]}
entities: []
`,
		"bad shape": `
camera: {eye: [0,0,5], target: [0,0,0]}
entities:
  - {name: x, shape: blob}
`,
		"bad preset": `
camera: {eye: [0,0,5], target: [0,0,0]}
entities:
  - {name: x, shape: circle, radius: 1, preset: wild}
`,
		"degenerate camera": `
camera: {eye: [0,0,0], target: [0,0,0]}
entities:
  - {name: x, shape: circle, radius: 1}
`,
		"bad color": `
camera: {eye: [0,0,5], target: [0,0,0]}
entities:
  - {name: x, shape: circle, radius: 1, color: "red"}
`,
	}

	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		require.Error(t, err, name)
	}
}

func TestEntity_Polyline(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	ring := s.Entities[0].Polyline()
	require.True(t, ring.Closed)
	require.NotEmpty(t, ring.Points)

	path := s.Entities[1].Polyline()
	require.False(t, path.Closed)
	// 2 segments x default subdivision 8, plus the trailing endpoint.
	require.Len(t, path.Points, 17)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#336699")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}, c)

	c, err = ParseColor("#00ff0080")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0, G: 0xff, B: 0, A: 0x80}, c)

	_, err = ParseColor("green")
	require.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	s := Default()
	require.NotEmpty(t, s.Entities)
	for i := range s.Entities {
		require.NoError(t, s.Entities[i].validate(), s.Entities[i].Name)
		require.NoError(t, s.Entities[i].Settings().Validate())
	}
}
