package prefabs

import (
	"fmt"

	"github.com/milk9111/shapehopper/ecs/component"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type CameraSpec struct {
	Name           string        `yaml:"name"`
	Transform      TransformSpec `yaml:"transform"`
	Target         string        `yaml:"target"`
	Zoom           float64       `yaml:"zoom"`
	Smoothness     float64       `yaml:"smoothness"`
	ZoomDecay      float64       `yaml:"zoom_decay"`
	ScaleInfluence float64       `yaml:"scale_influence"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ActorSpec struct {
	Name         string          `yaml:"name"`
	SensorRadius float64         `yaml:"sensor_radius"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
	Tuning       TuningSpec      `yaml:"tuning"`
}

// TuningSpec mirrors component.ActorTuning. Fields are pointers so a key
// left out of the file keeps its default instead of becoming zero.
type TuningSpec struct {
	Width    *float64 `yaml:"width"`
	Gravity  *float64 `yaml:"gravity"`
	Friction *float64 `yaml:"friction"`

	WalkAcceleration     *float64 `yaml:"walk_acceleration"`
	RunAcceleration      *float64 `yaml:"run_acceleration"`
	BackwardAcceleration *float64 `yaml:"backward_acceleration"`
	TurnAcceleration     *float64 `yaml:"turn_acceleration"`
	TurnSpeedDivisor     *float64 `yaml:"turn_speed_divisor"`

	ChargeRate      *float64 `yaml:"charge_rate"`
	MaxJumpStrength *float64 `yaml:"max_jump_strength"`
	LaunchBase      *float64 `yaml:"launch_base"`
	LaunchScale     *float64 `yaml:"launch_scale"`

	LandAltitude       *float64 `yaml:"land_altitude"`
	DeathAltitude      *float64 `yaml:"death_altitude"`
	FadeAltitude       *float64 `yaml:"fade_altitude"`
	DeactivateAltitude *float64 `yaml:"deactivate_altitude"`
	MaxScale           *float64 `yaml:"max_scale"`

	LinearSnap  *float64 `yaml:"linear_snap"`
	AngularSnap *float64 `yaml:"angular_snap"`

	EnforceTransitions *bool `yaml:"enforce_transitions"`
}

// Apply overlays the keys present in s onto base.
func (s TuningSpec) Apply(base component.ActorTuning) component.ActorTuning {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&base.Width, s.Width)
	set(&base.Gravity, s.Gravity)
	set(&base.Friction, s.Friction)
	set(&base.WalkAcceleration, s.WalkAcceleration)
	set(&base.RunAcceleration, s.RunAcceleration)
	set(&base.BackwardAcceleration, s.BackwardAcceleration)
	set(&base.TurnAcceleration, s.TurnAcceleration)
	set(&base.TurnSpeedDivisor, s.TurnSpeedDivisor)
	set(&base.ChargeRate, s.ChargeRate)
	set(&base.MaxJumpStrength, s.MaxJumpStrength)
	set(&base.LaunchBase, s.LaunchBase)
	set(&base.LaunchScale, s.LaunchScale)
	set(&base.LandAltitude, s.LandAltitude)
	set(&base.DeathAltitude, s.DeathAltitude)
	set(&base.FadeAltitude, s.FadeAltitude)
	set(&base.DeactivateAltitude, s.DeactivateAltitude)
	set(&base.MaxScale, s.MaxScale)
	set(&base.LinearSnap, s.LinearSnap)
	set(&base.AngularSnap, s.AngularSnap)

	if s.EnforceTransitions != nil {
		base.Transitions = component.TransitionAdvisory
		if *s.EnforceTransitions {
			base.Transitions = component.TransitionEnforced
		}
	}
	return base
}

func LoadActorSpec() (*ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec]("actor.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadActorTuning reads actor.yaml and fills in defaults for missing keys.
func LoadActorTuning() (component.ActorTuning, error) {
	spec, err := LoadActorSpec()
	if err != nil {
		return component.DefaultActorTuning(), err
	}
	return spec.Tuning.Apply(component.DefaultActorTuning()), nil
}
