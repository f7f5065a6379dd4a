package main

import (
	"fmt"
	"log"
	"os"

	"github.com/matt-g-everett/robotface/face"
	"github.com/spf13/cobra"
)

// newPlayCmd plays a sequence without a browser, printing the log to stdout.
func newPlayCmd(a *app) *cobra.Command {
	var demo bool
	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "play a sequence headless",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := a.Config
			if len(args) == 1 {
				config.Prediction.Source = args[0]
			}
			stage := face.NewStage(config, log.New(cmd.OutOrStdout(), "", 0))

			if demo {
				return stage.Sequencer.Play(cmd.Context(), face.DemoSequence())
			}
			seq, err := stage.Loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			return stage.Sequencer.Play(cmd.Context(), seq)
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "play the built-in demo sequence")
	return cmd
}

// newValidateCmd checks a prediction file without playing it.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "validate a prediction file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			seq, err := face.ParseSequence(data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames, %s\n", args[0], len(seq), seq.TotalHold())
			return nil
		},
	}
}
