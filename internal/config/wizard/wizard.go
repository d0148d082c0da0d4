package wizard

import (
	"context"
	"strconv"

	"github.com/vlanadm/vlanadm/internal/config"
	"github.com/vlanadm/vlanadm/internal/util/labels"
	"github.com/vlanadm/vlanadm/internal/util/ptr"
)

// Result holds the wizard answers. The string fields ending in Input
// hold raw form text; ToFile converts them after validation.
type Result struct {
	Prefix        string
	Namespace     string
	Kind          config.Kind
	Bridge        string
	MacSpoofCheck bool
	Description   string

	mtuInput         string
	startInput       string
	endInput         string
	concurrencyInput string
	labelsInput      string
}

// Run walks through all question groups and returns the answers.
// Cancelling any form aborts the wizard with huh's cancel error.
func Run(ctx context.Context) (*Result, error) {
	result := &Result{MacSpoofCheck: true}

	steps := []func(context.Context, *Result) error{
		runNetworkGroup,
		runKindDetailsGroup,
		runRangeGroup,
		runLabelsGroup,
		runDescriptionGroup,
	}
	for _, step := range steps {
		if err := step(ctx, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ToFile converts the answers into the vlanadm.yaml layout. The form
// validators guarantee the numeric fields parse.
func (r *Result) ToFile() *config.File {
	file := &config.File{
		Prefix:      r.Prefix,
		Kind:        r.Kind,
		Namespace:   r.Namespace,
		Description: r.Description,
	}

	if r.Kind == config.KindBridge {
		file.Bridge = r.Bridge
		if !r.MacSpoofCheck {
			file.MacSpoofCheck = ptr.Bool(false)
		}
	} else if r.mtuInput != "" {
		file.MTU = atoi(r.mtuInput)
	}

	if set, err := labels.Parse(r.labelsInput); err == nil {
		file.Labels = set
	}

	file.Range = &config.FileRange{
		Start: atoi(r.startInput),
		End:   atoi(r.endInput),
	}
	if r.concurrencyInput != "" {
		file.Concurrency = atoi(r.concurrencyInput)
	}
	return file
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
