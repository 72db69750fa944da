package catalog

import (
	_ "embed"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/city-viewer/internal/model"
)

//go:embed cities.yaml
var builtinDataset []byte

// dataset is the top-level shape of a catalog YAML document.
type dataset struct {
	Cities []model.City `yaml:"cities"`
}

// Parse decodes a catalog YAML document and builds the catalog.
func Parse(data []byte) (*Catalog, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, eris.Wrap(err, "catalog: parse dataset")
	}
	return New(ds.Cities)
}

// Builtin returns the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	return Parse(builtinDataset)
}

// Load returns the catalog read from path, or the built-in catalog when
// path is empty. It is meant to run once at startup.
func Load(path string) (*Catalog, error) {
	log := zap.L().With(zap.String("component", "catalog"))

	if path == "" {
		c, err := Builtin()
		if err != nil {
			return nil, err
		}
		log.Debug("loaded built-in catalog", zap.Int("cities", c.Len()))
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read dataset %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: load %s", path)
	}
	log.Info("loaded catalog", zap.String("path", path), zap.Int("cities", c.Len()))
	return c, nil
}
