// Package snapshot compares values against golden YAML files kept under testdata/
package snapshot

import (
	"os"
	"path/filepath"

	"blackjack/internal/util"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

// Dir is where snapshot files are read from and written to, relative to the package under test
const Dir = "testdata"

// T is the part of *testing.T a snapshot check needs
type T interface {
	require.TestingT
	Helper()
	Logf(format string, args ...interface{})
}

// Match checks obj against testdata/<name>.yaml
// Both sides are compared as decoded YAML, so quoting and layout in the file do not matter.
// A missing snapshot fails the check. Set UPDATE_SNAPSHOTS=1 to write or rewrite snapshots.
func Match(t T, name string, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := Filename(name)
	actual, err := yaml.Marshal(obj)
	require.NoError(t, err)

	if util.Getenv("UPDATE_SNAPSHOTS", "") == "1" {
		require.NoError(t, write(filename, actual))
		return true
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		t.Errorf("snapshot %s does not exist, run with UPDATE_SNAPSHOTS=1 to create it", filename)
		return false
	}

	require.NoError(t, err)

	var want, got interface{}
	require.NoError(t, yaml.Unmarshal(expects, &want))
	require.NoError(t, yaml.Unmarshal(actual, &got))
	if !assert.Equal(t, want, got, msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

// Filename returns the path of the named snapshot
func Filename(name string) string {
	return filepath.Join(Dir, name+".yaml")
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0o644)
}
