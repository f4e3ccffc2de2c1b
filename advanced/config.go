package advanced

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var algorithmNames = map[Algorithm]string{
	Sweep: "sweep",
	Wrap:  "wrap",
}

var modeNames = map[Mode]string{
	Sequential:    "sequential",
	Decomposition: "decomposition",
	Reduction:     "reduction",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseAlgorithm accepts the algorithm names ("sweep", "wrap") in any case.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown algorithm %q", name)
}

// ParseMode accepts the mode names ("sequential", "decomposition",
// "reduction") in any case.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown mode %q", name)
}

func (a Algorithm) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

func (a *Algorithm) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseAlgorithm(name)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*a = parsed
	return nil
}

func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseMode(name)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*m = parsed
	return nil
}

// LoadConfig reads a YAML document such as
//
//	algorithm: wrap
//	mode: reduction
//	workers: 8
//
// Missing keys keep their zero values (sequential sweep on every CPU) and an
// empty document is the zero Config. Unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	var config Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "could not decode hull config")
	}
	if config.Workers < 0 {
		return Config{}, errors.Errorf("worker count must not be negative, got %d", config.Workers)
	}
	return config, nil
}
