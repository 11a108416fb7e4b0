package levelgen

// Kind selects platform behavior and rendering style. Themed looks are a
// render-side concern; the generator only distinguishes behavior.
type Kind int

const (
	KindGround Kind = iota
	KindNormal
	KindCloud
	KindIce
	KindMoving
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindNormal:
		return "normal"
	case KindCloud:
		return "cloud"
	case KindIce:
		return "ice"
	case KindMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// MarshalYAML emits the kind name rather than its numeric value so dumped
// layouts stay readable.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// PlatformSpec is one platform in world pixels, top-left anchored.
type PlatformSpec struct {
	X      int  `yaml:"x"`
	Y      int  `yaml:"y"`
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Kind   Kind `yaml:"kind"`
}

// EnemyStepStone marks a spot where an enemy doubles as a stepping stone:
// stomping it is the intended way across an otherwise oversized gap.
type EnemyStepStone struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Kind string `yaml:"kind"`
}
