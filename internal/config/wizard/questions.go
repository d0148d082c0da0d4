package wizard

import (
	"context"
	"regexp"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/vlanadm/vlanadm/internal/config"
	"github.com/vlanadm/vlanadm/internal/util/labels"
)

// prefixRegex validates name prefixes: DNS-1123 compatible once the
// decimal VLAN id is appended.
var prefixRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// kindOptions are the attachment kinds offered by the wizard.
var kindOptions = []huh.Option[config.Kind]{
	huh.NewOption("Bridge (VLAN-tagged software bridge)", config.KindBridge),
	huh.NewOption("Localnet (OVN localnet overlay)", config.KindLocalnet),
}

// runNetworkGroup prompts for the resource naming and placement.
func runNetworkGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name Prefix").
				Description("Resource names are the prefix plus the VLAN id, e.g. vlan-100").
				Placeholder("vlan-").
				Value(&result.Prefix).
				Validate(validatePrefix),
			huh.NewInput().
				Title("Namespace").
				Description("Namespace that receives the generated resources").
				Placeholder("default").
				Value(&result.Namespace).
				Validate(validateNamespace),
			huh.NewSelect[config.Kind]().
				Title("Attachment Kind").
				Description("How workloads attach to the VLAN").
				Options(kindOptions...).
				Value(&result.Kind),
		).Title("Network"),
	).RunWithContext(ctx)
}

// runKindDetailsGroup prompts for the kind-specific fields.
func runKindDetailsGroup(ctx context.Context, result *Result) error {
	if result.Kind == config.KindBridge {
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Bridge Device").
					Description("Linux bridge the attachments are tagged onto").
					Placeholder("br0").
					Value(&result.Bridge).
					Validate(validateBridge),
				huh.NewConfirm().
					Title("MAC Spoof Check").
					Description("Filter frames with a forged source MAC").
					Value(&result.MacSpoofCheck),
			).Title("Bridge Options"),
		).RunWithContext(ctx)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("MTU (Optional)").
				Description("Leave empty to inherit the network's MTU").
				Value(&result.mtuInput).
				Validate(validateOptionalMTU),
		).Title("Localnet Options"),
	).RunWithContext(ctx)
}

// runRangeGroup prompts for the VLAN range and worker budget.
func runRangeGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First VLAN ID").
				Placeholder("100").
				Value(&result.startInput).
				Validate(validateVlanID),
			huh.NewInput().
				Title("Last VLAN ID").
				Placeholder("120").
				Value(&result.endInput).
				Validate(validateVlanID),
			huh.NewInput().
				Title("Concurrency").
				Description("How many resources are applied in parallel").
				Value(&result.concurrencyInput).
				Validate(validateConcurrency),
		).Title("VLAN Range"),
	).RunWithContext(ctx)
}

// runLabelsGroup prompts for the label set applied to every resource.
func runLabelsGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Labels").
				Description("Comma-separated key=value pairs, e.g. env=prod,team=net").
				Placeholder("env=prod").
				Value(&result.labelsInput).
				Validate(validateLabels),
		).Title("Labels"),
	).RunWithContext(ctx)
}

// runDescriptionGroup prompts for the optional description template.
func runDescriptionGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description (Optional)").
				Description("Template copied to each resource; {vlan} becomes the VLAN id").
				Placeholder("VLAN {vlan} tenant attachment").
				Value(&result.Description),
		).Title("Description"),
	).RunWithContext(ctx)
}

func validatePrefix(s string) error {
	if s == "" {
		return errPrefixRequired
	}
	if !prefixRegex.MatchString(s) {
		return errPrefixInvalid
	}
	return nil
}

func validateNamespace(s string) error {
	if s == "" {
		return errNamespaceRequired
	}
	return nil
}

func validateBridge(s string) error {
	if s == "" {
		return errBridgeRequired
	}
	return nil
}

func validateVlanID(s string) error {
	id, err := strconv.Atoi(s)
	if err != nil || id < config.MinVlanID || id > config.MaxVlanID {
		return errVlanIDInvalid
	}
	return nil
}

func validateConcurrency(s string) error {
	if s == "" {
		return nil // falls back to the default
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return errConcurrencyInvalid
	}
	return nil
}

func validateOptionalMTU(s string) error {
	if s == "" {
		return nil
	}
	mtu, err := strconv.Atoi(s)
	if err != nil || mtu < config.MinMTU || mtu > config.MaxMTU {
		return errMTUInvalid
	}
	return nil
}

func validateLabels(s string) error {
	_, err := labels.Parse(s)
	return err
}
