package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	strummer "github.com/cbegin/strummer-go"
	"github.com/cbegin/strummer-go/internal/scale"
)

var scalesExotic bool

var scalesCmd = &cobra.Command{
	Use:   "scales [filter]",
	Short: "List the scale table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) == 1 {
			filter = strings.ToLower(args[0])
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tINTERVALS")
		for id := 0; id < scale.Count; id++ {
			if scalesExotic && !scale.IsExotic(id) {
				continue
			}
			if filter != "" && !strings.Contains(strings.ToLower(scale.Name(id)), filter) {
				continue
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\n", id, scale.Name(id), intervals(id))
		}
		return tw.Flush()
	},
}

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "List parameters and their defaults, by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := strummer.NewParamStore()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDEFAULT")
		for _, name := range strummer.SortedNames() {
			p, _ := strummer.ParseParam(name)
			fmt.Fprintf(tw, "%s\t%s\n", name, strconv.FormatFloat(store.Get(p), 'g', -1, 64))
		}
		return tw.Flush()
	},
}

func init() {
	scalesCmd.Flags().BoolVar(&scalesExotic, "exotic", false, "Only list the exotic scales")
}

func intervals(id int) string {
	sc, ok := scale.Resolve(id)
	if !ok {
		return ""
	}
	parts := make([]string, sc.Len())
	for i := range parts {
		parts[i] = strconv.FormatFloat(sc.At(i), 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
