package commands

import (
	"github.com/spf13/cobra"

	"github.com/vlanadm/vlanadm/cmd/vlanadm/handlers"
)

// Create returns the create command.
//
// The create command is a parent for the attachment kinds. It carries no
// behavior of its own; running it without a subcommand prints usage.
func Create() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create network attachments for a VLAN range",
		Long: `Create one NetworkAttachmentDefinition per VLAN id in a range.

Resource names are formed by appending the decimal VLAN id to the
prefix, so --prefix vlan- --start 100 --end 102 produces vlan-100,
vlan-101 and vlan-102. Creation is idempotent: an attachment that
already exists is updated in place to the rendered manifest.

Choose the attachment implementation with a subcommand:
  bridge    cnv-bridge attachments over a VLAN-tagged software bridge
  localnet  ovn-k8s-cni-overlay attachments on an OVN localnet`,
	}

	cmd.AddCommand(createBridge())
	cmd.AddCommand(createLocalnet())

	return cmd
}

// createBridge returns the create bridge subcommand.
func createBridge() *cobra.Command {
	var (
		opts     handlers.CreateOptions
		macSpoof bool
	)

	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Create cnv-bridge attachments over a Linux bridge",
		Long: `Create bridge-backed attachments for every VLAN id in the range.

Each generated resource embeds a cnv-bridge CNI configuration that tags
traffic with its VLAN id on the named bridge device. MAC spoof checking
is enabled unless --mac-spoof-check=false is given.

Example:
  vlanadm create bridge --start 100 --end 199 --prefix vlan- \
    --namespace production --bridge br0 --labels env=prod,team=net`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("mac-spoof-check") {
				opts.MacSpoofCheck = &macSpoof
			}
			return handlers.CreateBridge(cmd.Context(), &opts)
		},
	}

	bindCreateFlags(cmd, &opts)
	cmd.Flags().StringVarP(&opts.Bridge, "bridge", "b", "", "Bridge device name (required unless set in config file)")
	cmd.Flags().BoolVar(&macSpoof, "mac-spoof-check", true, "Enable MAC spoof checking on the attachment")

	return cmd
}

// createLocalnet returns the create localnet subcommand.
func createLocalnet() *cobra.Command {
	var opts handlers.CreateOptions

	cmd := &cobra.Command{
		Use:   "localnet",
		Short: "Create OVN localnet attachments",
		Long: `Create OVN localnet attachments for every VLAN id in the range.

Each generated resource embeds an ovn-k8s-cni-overlay configuration
with localnet topology, tagging traffic with its VLAN id on the
underlying provider network. The MTU is left to the CNI default unless
--mtu is given.

Example:
  vlanadm create localnet --start 200 --end 250 --prefix tenant- \
    --namespace tenants --labels env=prod --mtu 1400`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.CreateLocalnet(cmd.Context(), &opts)
		},
	}

	bindCreateFlags(cmd, &opts)
	cmd.Flags().IntVar(&opts.MTU, "mtu", 0, "MTU for the attachment (68-9000, default: CNI default)")

	return cmd
}

// bindCreateFlags binds the flags shared by both create subcommands.
func bindCreateFlags(cmd *cobra.Command, opts *handlers.CreateOptions) {
	cmd.Flags().IntVar(&opts.Start, "start", 0, "First VLAN id of the range (1-4094)")
	cmd.Flags().IntVar(&opts.End, "end", 0, "Last VLAN id of the range, inclusive (1-4094)")
	cmd.Flags().StringVarP(&opts.Prefix, "prefix", "p", "", "Resource name prefix, appended with the VLAN id")
	cmd.Flags().StringVarP(&opts.Namespace, "namespace", "n", "", "Namespace to create the attachments in")
	cmd.Flags().StringVarP(&opts.Labels, "labels", "l", "", "Labels applied to every attachment (key=value, comma-separated)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Description annotation; {vlan} is replaced with the VLAN id")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "Maximum attachments processed in parallel (default 10)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Render manifests without contacting the cluster")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a vlanadm.yaml defaults file")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to the kubeconfig file (default: in-cluster or $KUBECONFIG)")
}
