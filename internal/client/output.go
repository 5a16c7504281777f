package client

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// render prints v in the selected output format. YAML is produced from the
// JSON form so both formats share field names.
func (a *App) render(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	if a.format == formatYAML {
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return fmt.Errorf("error converting output to YAML: %w", err)
		}
	} else {
		data = append(data, '\n')
	}

	_, err = a.out.Write(data)
	return err
}
