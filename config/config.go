// Package config loads the host's robot configuration: the serial
// port, the scheduler cycle time, and the per-joint affine
// calibration (pkg/host/joint.Spec) that overrides DefaultSpecs.
//
// This is intentionally a direct gopkg.in/yaml.v3 struct mapping
// rather than the teacher's cmd/spectrometer/internal/config
// Loader/Saver pair: that abstraction exists to reflect into
// protobuf-generated message types across json/yaml/proto
// interchangeably, which has no reason to exist here since
// SPEC_FULL.md carries no protobuf schema (see DESIGN.md's "Dropped
// teacher dependencies"). x/marshaller/yaml itself is just a thin
// wrapper around gopkg.in/yaml.v3, so this still reuses the same
// underlying library, without the generic-Marshaller indirection.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mcx/dcservo/pkg/host/joint"
)

// JointConfig overrides one joint's node addressing and affine
// calibration. Zero-value fields fall back to DefaultSpecs when Specs
// converts the entry, so a joint entry only needs to set the fields
// whose calibration differs from the default.
type JointConfig struct {
	NodeID                  byte    `yaml:"nodeId"`
	Scale                   float32 `yaml:"scale"`
	Offset                  float32 `yaml:"offset"`
	PositionReferenceOffset float32 `yaml:"positionReferenceOffset"`
	UScale                  float32 `yaml:"uScale"`
}

// Robot is the host's top-level configuration document.
type Robot struct {
	SerialPort string        `yaml:"serialPort"`
	Baud       int           `yaml:"baud"`
	CycleTime  time.Duration `yaml:"cycleTime"`
	Joints     []JointConfig `yaml:"joints"`
}

// Default returns the configuration original_source/MasterCommunication
// boots with absent a config file: 115200 baud, the 12ms cycle time
// DCServo.h's loadTimeInterval matches, and all 6 joints at their
// DefaultSpecs calibration.
func Default() Robot {
	r := Robot{
		SerialPort: "/dev/ttyACM0",
		Baud:       115200,
		CycleTime:  12 * time.Millisecond,
	}
	for _, s := range joint.DefaultSpecs {
		r.Joints = append(r.Joints, JointConfig{
			NodeID:                  s.NodeID,
			Scale:                   s.Scale,
			Offset:                  s.Offset,
			PositionReferenceOffset: s.PositionReferenceOffset,
			UScale:                  s.UScale,
		})
	}
	return r
}

// Load reads a YAML document from path, starting from Default() so a
// partial file only needs to specify the fields it overrides.
func Load(path string) (Robot, error) {
	r := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Robot{}, errors.Wrapf(err, "config: reading %s", path)
	}

	if err := yaml.Unmarshal(data, &r); err != nil {
		return Robot{}, errors.Wrapf(err, "config: parsing %s", path)
	}

	if len(r.Joints) == 0 {
		return Robot{}, errors.New("config: at least one joint is required")
	}

	return r, nil
}

// Specs converts the configured joints into pkg/host/joint.Spec
// values, falling back to DefaultSpecs for fields left at their zero
// value (a JointConfig entry that only sets NodeID keeps the matching
// DefaultSpecs calibration).
func (r Robot) Specs() []joint.Spec {
	specs := make([]joint.Spec, 0, len(r.Joints))
	for _, jc := range r.Joints {
		spec := joint.Spec{
			NodeID:                  jc.NodeID,
			Scale:                   jc.Scale,
			Offset:                  jc.Offset,
			PositionReferenceOffset: jc.PositionReferenceOffset,
			UScale:                  jc.UScale,
		}
		if def, ok := defaultSpecForNode(jc.NodeID); ok {
			if spec.Scale == 0 {
				spec.Scale = def.Scale
			}
			if spec.Offset == 0 {
				spec.Offset = def.Offset
			}
			if spec.PositionReferenceOffset == 0 {
				spec.PositionReferenceOffset = def.PositionReferenceOffset
			}
			if spec.UScale == 0 {
				spec.UScale = def.UScale
			}
		}
		specs = append(specs, spec)
	}
	return specs
}

func defaultSpecForNode(nodeID byte) (joint.Spec, bool) {
	for _, s := range joint.DefaultSpecs {
		if s.NodeID == nodeID {
			return s, true
		}
	}
	return joint.Spec{}, false
}
