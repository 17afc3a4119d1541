package deploy

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"webapp-standalone/core/contextprops"
	"webapp-standalone/core/database"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DescriptorPath is the location of the descriptor inside an application.
const DescriptorPath = "META-INF/context.yaml"

// Descriptor is the deployment descriptor of an application.
type Descriptor struct {
	Welcome        string              `yaml:"welcome"`
	NotFound       string              `yaml:"notFound"`
	Reloadable     bool                `yaml:"reloadable"`
	ParametersPath string              `yaml:"parametersPath"`
	Parameters     map[string]string   `yaml:"parameters"`
	Resources      []database.Resource `yaml:"resources" validate:"dive"`
}

func defaultDescriptor() *Descriptor {
	return &Descriptor{
		Welcome:        "index.html",
		ParametersPath: "context.json",
		Parameters:     map[string]string{},
	}
}

// LoadDescriptor reads the descriptor of the application rooted at root and expands it
// with props. A missing descriptor yields the defaults.
func LoadDescriptor(fsys afero.Fs, root string, props contextprops.Properties) (*Descriptor, error) {
	d := defaultDescriptor()

	path := filepath.Join(root, filepath.FromSlash(DescriptorPath))
	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read descriptor %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parse descriptor %s: %w", path, err)
	}

	if d.Parameters == nil {
		d.Parameters = map[string]string{}
	}
	for k, v := range d.Parameters {
		d.Parameters[k] = props.Expand(v)
	}
	for i := range d.Resources {
		d.Resources[i].DSN = props.Expand(d.Resources[i].DSN)
	}

	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("invalid descriptor %s: %w", path, err)
	}
	return d, nil
}

func (d *Descriptor) validate() error {
	if err := validator.New().Struct(d); err != nil {
		return err
	}
	seen := make(map[string]bool, len(d.Resources))
	for _, r := range d.Resources {
		if seen[r.Name] {
			return fmt.Errorf("duplicate resource %q", r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}
