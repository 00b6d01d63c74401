package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/automoto/platformkit/shared/leveldata"
	"github.com/spf13/cobra"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and their block counts",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "dir", "levels", "Directory holding .tmx files, inside the assets")
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels, names, err := leveldata.LoadAll(assetsFS(), flagLevelsDir)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tHARD\tSOFT\tDOOR\tSAND\tSPAWNS")
	for _, name := range names {
		l := levels[name]
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%d\t%d\t%d\t%d\n",
			name, l.MapWidth, l.MapHeight,
			len(l.HardBlocks), len(l.SoftBlocks), len(l.DoorBlocks), len(l.SandBlocks),
			len(l.SpawnPoints))
	}
	return w.Flush()
}
