package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npillmayer/bimap/backend/ordered"
	"github.com/npillmayer/bimap/mem"
)

func newDotCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Write the tree of an ordered map in Graphviz DOT format",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := v.GetInt("keys")
			if n < 0 {
				return errInvalidConfig
			}
			m := ordered.New[int, string]()
			for k := 0; k < n; k++ {
				kh, _ := mem.Share(k)
				vh, _ := mem.Share(valueFor(k))
				m.Insert(kh, vh)
			}
			return m.WriteDot(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int("keys", 30, "number of keys in the map")
	return cmd
}
