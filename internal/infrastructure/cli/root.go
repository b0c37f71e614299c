package cli

import (
	"context"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"

	"github.com/sleepystudio/terminai/internal/app"
	"github.com/sleepystudio/terminai/internal/application/suggest"
	"github.com/sleepystudio/terminai/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The shell's command-not-found hook
// calls the binary with the unresolved tokens as bare arguments, so the root
// command runs the suggestion cycle on anything that is not a subcommand.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.SuggestService.Presenter = NewConsolePresenter()

	root := &cobra.Command{
		Use:   "terminai [command tokens...]",
		Short: "terminai - AI help for unresolved shell commands",
		Long:  "terminai intercepts command-not-found failures, asks a language model for an explanation and a fix, and runs the fix when it passes the safety denylist.",
		// The hook hands over arbitrary unresolved tokens; without this a
		// root command that has subcommands rejects unknown first args.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd.Context(), container.SuggestService, args, domain.DefaultRequestTimeout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Unresolved command lines may carry flag-like tokens (`gti -c`), which
	// must reach RunE as positionals.
	root.Flags().SetInterspersed(false)

	root.AddCommand(newSuggestCommand(container))
	root.AddCommand(newInitCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newHookCommand())
	root.AddCommand(newDoctorCommand(container))
	return root, nil
}

func newSuggestCommand(container *app.Container) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "suggest [command tokens...]",
		Short: "Explain an unresolved command and auto-run a vetted fix",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd.Context(), container.SuggestService, args, timeout)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", domain.DefaultRequestTimeout, "Bound the completion request (never the executed command)")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// runSuggest executes one suggestion cycle and converts its exit code into
// the error that carries it out of cobra. The timeout is handed to the
// service, which scopes it to the completion request; a deadline on ctx here
// would propagate into the executed command and kill a long-running fix
// mid-flight.
func runSuggest(ctx context.Context, service *suggest.Service, args []string, timeout time.Duration) error {
	service.RequestTimeout = timeout

	outcome, err := service.Handle(ctx, buildInvocation(args))
	if err != nil {
		return err
	}
	return exitWithCode(outcome.ExitCode)
}

func buildInvocation(args []string) domain.Invocation {
	wd, _ := os.Getwd()
	return domain.Invocation{
		Tokens:     args,
		WorkingDir: wd,
		User:       currentUser(),
	}
}

func currentUser() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
