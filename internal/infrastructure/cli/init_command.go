package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sleepystudio/terminai/internal/app"
	"github.com/sleepystudio/terminai/internal/domain"
)

func newInitCommand(container *app.Container) *cobra.Command {
	var (
		force    bool
		provider string
		apiKey   string
		model    string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the credentials and persona files",
		Long: `Write ~/.terminai/config.yaml and a persona skeleton.

The credentials file needs three fields before suggestions work:
  api_provider: xai | openrouter
  api_key:      your bearer token
  model:        model identifier for the chosen provider

Flags prefill the fields; anything left empty must be edited in by hand.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := container.ConfigLoader
			if _, err := os.Stat(loader.Path()); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", loader.Path())
			}

			cfg := domain.Config{
				Provider: domain.Provider(provider),
				APIKey:   apiKey,
				Model:    model,
			}
			if err := loader.Save(cfg); err != nil {
				return fmt.Errorf("write credentials: %w", err)
			}

			// Persona generation lives elsewhere; init only guarantees the
			// file exists so a later editor or generator can fill it.
			if _, err := os.Stat(container.PersonaStore.Path()); err != nil {
				if err := container.PersonaStore.Save(domain.Personality{}); err != nil {
					return fmt.Errorf("write persona: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", loader.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", container.PersonaStore.Path())
			fmt.Fprintln(cmd.OutOrStdout(), "Next: fill in any empty fields, then run `terminai doctor`.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing credentials file")
	cmd.Flags().StringVar(&provider, "provider", string(domain.ProviderXAI), "API provider (xai or openrouter)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Bearer token for the provider")
	cmd.Flags().StringVar(&model, "model", "", "Model identifier")

	return cmd
}
