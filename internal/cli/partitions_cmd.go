package cli

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/mugiliam/hatchrelclient/pkg/client"
	"github.com/mugiliam/hatchrelclient/pkg/dto"
	"github.com/mugiliam/hatchrelclient/pkg/namespace"
	"github.com/mugiliam/hatchrelclient/pkg/rel"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func newPartitionsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "partitions",
		Aliases: []string{"partition", "part"},
		Short:   "List, inspect, add and drop table partitions",
	}
	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newAddCmd(opts),
		newDropCmd(opts),
		newExistsCmd(opts),
	)
	return cmd
}

// partitions loads the selected table and returns its partition capability.
func (o *rootOptions) partitions(cmd *cobra.Command) (rel.SupportsPartitions, error) {
	if err := o.requireTable(); err != nil {
		return nil, err
	}
	ns, err := namespace.OfTable(o.cfg.Metalake, o.catalog, o.schema)
	if err != nil {
		return nil, err
	}
	tbl, err := client.LoadTable(cmd.Context(), o.client, ns, o.table)
	if err != nil {
		return nil, err
	}
	return rel.Partitions(tbl)
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List partition names, or full partitions with --details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sp, err := opts.partitions(cmd)
			if err != nil {
				return err
			}
			if !details {
				names, err := sp.ListPartitionNames(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), names)
			}
			parts, err := sp.ListPartitions(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]dto.PartitionDTO, 0, len(parts))
			for _, p := range parts {
				out = append(out, dto.ToPartitionDTO(p))
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "Print full partition descriptions")
	return cmd
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Print one partition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := opts.partitions(cmd)
			if err != nil {
				return err
			}
			p, err := sp.GetPartition(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.ToPartitionDTO(p))
		},
	}
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "add -f FILE",
		Short: "Add the partition described in a YAML or JSON file",
		Long: `Add a partition. The file holds one partition in the catalog service's
wire form, for example:

  type: identity
  name: dt=2024-01-01
  fieldNames: [[dt]]
  values:
    - type: literal
      dataType: date
      value: "2024-01-01"

Use "-" to read the description from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readPartitionFile(cmd, file)
			if err != nil {
				return err
			}
			sp, err := opts.partitions(cmd)
			if err != nil {
				return err
			}
			added, err := sp.AddPartition(cmd.Context(), p)
			if err != nil {
				return err
			}
			log.Ctx(cmd.Context()).Info().Str("partition", added.Name()).Msg("partition added")
			return printJSON(cmd.OutOrStdout(), dto.ToPartitionDTO(added))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Partition description file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newDropCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "drop NAME",
		Short: "Drop one partition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := opts.partitions(cmd)
			if err != nil {
				return err
			}
			dropped, err := sp.DropPartition(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]bool{"dropped": dropped})
		},
	}
}

func newExistsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exists NAME",
		Short: "Report whether a partition exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := opts.partitions(cmd)
			if err != nil {
				return err
			}
			exists, err := rel.PartitionExists(cmd.Context(), sp, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]bool{"exists": exists})
		},
	}
}

// readPartitionFile accepts YAML or JSON, since JSON is valid YAML.
func readPartitionFile(cmd *cobra.Command, file string) (rel.Partition, error) {
	var (
		b   []byte
		err error
	)
	if file == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, catalogerrors.ErrIllegalArgument.MsgErr("unable to read "+file, err)
	}
	j, err := yaml.YAMLToJSON(b)
	if err != nil {
		return nil, catalogerrors.ErrIllegalArgument.MsgErr("unable to parse "+file, err)
	}
	pd := &dto.PartitionDTO{}
	if err := json.Unmarshal(j, pd); err != nil {
		return nil, catalogerrors.ErrIllegalArgument.MsgErr("unable to parse "+file, err)
	}
	if err := pd.Validate(); err != nil {
		return nil, err
	}
	return pd.ToPartition(), nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
