package commands

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/BasBBakkerIMF/imfcharts/breaks"
	"github.com/BasBBakkerIMF/imfcharts/internal/tables"
)

type BreaksCmd struct {
	Values []float64 `arg:"" name:"values" help:"Series values to plan breaks for." required:"true"`
	By     float64   `help:"Explicit major step. Chosen from the span when omitted."`
	Output string    `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (b *BreaksCmd) Run(ctx *Context) error {
	var (
		plan breaks.Plan
		err  error
	)
	if b.By != 0 {
		plan, err = breaks.WithStep(b.Values, b.By)
		if err != nil {
			return err
		}
	} else {
		plan = breaks.Auto(b.Values)
	}

	switch b.Output {
	case "table":
		fmt.Println(tables.BreakPlan(plan).View())
	case "json":
		out, err := toJSON(plan)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := toYAML(plan)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

func massagePlan(plan breaks.Plan) map[string]interface{} {
	return map[string]interface{}{
		"major":  plan.Major,
		"minor":  plan.Minor,
		"limits": []float64{plan.Limits.Low, plan.Limits.High},
	}
}

func toJSON(plan breaks.Plan) ([]byte, error) {
	return json.MarshalIndent(massagePlan(plan), "", "  ")
}

func toYAML(plan breaks.Plan) ([]byte, error) {
	return yaml.Marshal(massagePlan(plan))
}
