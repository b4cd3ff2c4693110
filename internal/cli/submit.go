package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ionworks/ionworks-schema/client"
)

type SubmitCmd struct{}

func NewSubmitCmd() *SubmitCmd {
	return &SubmitCmd{}
}

func (c *SubmitCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Build a pipeline and submit it to the execution API",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, env, err := rootFlags(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			input, err := cmd.Flags().GetString("input")
			if err != nil {
				return fmt.Errorf("failed to get input flag: %w", err)
			}

			log := newLogger(verbose)

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			p, err := loadPipeline(log, input)
			if err != nil {
				return err
			}

			apiClient, err := client.NewForEnv(log, env)
			if err != nil {
				return err
			}

			job, err := apiClient.SubmitPipeline(ctx, p)
			if err != nil {
				return err
			}

			fmt.Println("Job ID:", job.ID)
			fmt.Println("Status:", job.Status)
			fmt.Println("Submitted:", job.SubmittedAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Path to the YAML pipeline description")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
