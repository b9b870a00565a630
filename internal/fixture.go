package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/DrGermanius/Zencoo/internal/model"
)

type FixtureFormat string

const (
	FixtureJSON FixtureFormat = "json"
	FixtureYAML FixtureFormat = "yaml"
)

func fixtureFormat(path string) FixtureFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FixtureYAML
	default:
		return FixtureJSON
	}
}

// LoadPlacedOrders reads placed orders from a JSON or YAML file. An empty
// path means no placed orders.
func LoadPlacedOrders(path string) ([]model.PlacedOrder, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read placed orders")
	}
	return ParsePlacedOrders(data, fixtureFormat(path))
}

// LoadReceivedOrders reads received orders from a JSON or YAML file. An empty
// path means no received orders.
func LoadReceivedOrders(path string) ([]model.ReceivedOrder, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read received orders")
	}
	return ParseReceivedOrders(data, fixtureFormat(path))
}

func ParsePlacedOrders(data []byte, format FixtureFormat) ([]model.PlacedOrder, error) {
	var orders []model.PlacedOrder
	if err := decodeFixture(data, format, &orders); err != nil {
		return nil, errors.Wrap(err, "decode placed orders")
	}
	return orders, nil
}

func ParseReceivedOrders(data []byte, format FixtureFormat) ([]model.ReceivedOrder, error) {
	var orders []model.ReceivedOrder
	if err := decodeFixture(data, format, &orders); err != nil {
		return nil, errors.Wrap(err, "decode received orders")
	}
	return orders, nil
}

// decodeFixture goes through JSON for YAML input too, so the json tags and
// unmarshalers of the model types apply to both formats.
func decodeFixture(data []byte, format FixtureFormat, out interface{}) error {
	if format == FixtureYAML {
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == nil {
			return nil
		}

		var err error
		data, err = json.Marshal(raw)
		if err != nil {
			return err
		}
	}

	return json.Unmarshal(data, out)
}
