// Package util holds small helpers shared by the demo commands.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OpenLog opens a file for appending log output, falling back to
// discard on failure so the TUI still comes up.
func OpenLog(path string, mode os.FileMode) (file io.Writer) {

	var err error
	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		fmt.Printf("warning: %s\n", err.Error())
		file = io.Discard
	}

	return
}

// CloseLog closes the writer when it is an actual file.
func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}

// LoadConfig unmarshals a yaml file into cfg.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	err = yaml.Unmarshal(data, cfg)
	err = errors.Wrapf(err, "failed to unmarshal")
	return
}

// WriteConfig marshals cfg to a yaml file.
func WriteConfig(cfg any, path string, mode os.FileMode) (err error) {

	data, err := yaml.Marshal(cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal")
		return
	}

	err = os.WriteFile(path, data, mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}

// SampleConfig writes data to path unless something is already there.
func SampleConfig(data []byte, path string, mode os.FileMode) (err error) {

	_, err = os.Stat(path)
	if err == nil {
		return
	}

	err = os.WriteFile(path, data, mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}
