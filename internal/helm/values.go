package helm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadValuesFile reads a YAML values file and returns it as a map
func LoadValuesFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file %s: %w", path, err)
	}

	var values map[string]interface{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse values file %s: %w", path, err)
	}

	return values, nil
}

// CheckValuesFiles makes sure every file exists and holds a YAML mapping,
// so a typo fails here rather than halfway through an install
func CheckValuesFiles(paths []string) error {
	for _, path := range paths {
		if _, err := LoadValuesFile(path); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
	}
	return nil
}
