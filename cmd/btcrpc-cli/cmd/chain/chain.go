package chain

import (
	"strconv"

	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "chain",
	Short: "Commands related to chain, network and mining state.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func boolToStr(val bool) string {
	if val {
		return "TRUE"
	}
	return "FALSE"
}
