package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/nutribudget/internal/display"
	"github.com/hammamikhairi/nutribudget/internal/domain"
)

// Output formats for the plan command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(f string) bool {
	switch f {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}

// writePlan prints plan in the given format.
func writePlan(w io.Writer, plan *domain.PlanResponse, format string) error {
	var out []byte
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return err
		}
		out = append(data, '\n')
	case formatYAML:
		data, err := toYAML(plan)
		if err != nil {
			return err
		}
		out = data
	default:
		out = []byte(display.RenderSummary(plan) + "\n")
	}
	_, err := w.Write(out)
	return err
}

// toYAML converts v through its JSON form so field names and the order of
// the breakdown counts match the service response.
func toYAML(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("converting to yaml: %w", err)
	}
	blockStyle(&node)
	return yaml.Marshal(&node)
}

// blockStyle clears the flow and quoting styles the JSON input left on
// every node. The encoder still quotes strings that would otherwise read
// as another type.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
