package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHasSixJoints(t *testing.T) {
	r := Default()
	assert.Len(t, r.Joints, 6)
	assert.Equal(t, 115200, r.Baud)
}

func TestLoadOverridesSerialPortOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "robot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serialPort: /dev/ttyUSB1\n"), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB1", r.SerialPort)
	assert.Len(t, r.Joints, 6)
}

func TestLoadRejectsEmptyJointList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "robot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("joints: []\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSpecsFallBackToDefaultScale(t *testing.T) {
	r := Robot{Joints: []JointConfig{{NodeID: 1}}}
	specs := r.Specs()
	require.Len(t, specs, 1)
	assert.NotZero(t, specs[0].Scale)
}
