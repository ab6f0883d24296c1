package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/samsonr/cli/cmd"
	"github.com/samsonr/cli/constants"
	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/lib/logging"
	"github.com/samsonr/cli/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "samson",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "Deploy with Samson from your terminal",
	Long:          "List Samson projects and stages, and deploy branches or commits to a stage.",
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logger := logging.New(os.Stderr, verbosity)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = logging.WithLogger(ctx, logger)

		defer func() {
			if r := recover(); r != nil {
				logger.Debug("recovered panic", "command", cmd.Name(), "stack", string(debug.Stack()))
				err = fmt.Errorf("%s %v", ui.RedText(fmt.Sprintf("samson %s crashed:", cmd.Name())), r)
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.PersistentFlags().StringP("token", "t", "", "Samson access token (overrides the config file)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file")
	rootCmd.PersistentFlags().String("host", "", "Samson base URL")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentPreRunE = contextualize(handler.Setup)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "projects",
		Short: "List all available projects",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Projects),
	})

	stagesCmd := &cobra.Command{
		Use:   "stages",
		Short: "List the stages of a project",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Stages),
	}
	stagesCmd.Flags().IntP("project-id", "p", 0, "Project to list stages for (defaults to the linked project)")
	rootCmd.AddCommand(stagesCmd)

	deployCmd := &cobra.Command{
		Use:   "deploy [reference]",
		Short: "Deploy a branch or commit to a stage",
		Long:  "Deploy a branch or commit to a stage. Without a reference the current git branch is deployed.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Deploy),
	}
	deployCmd.Flags().IntP("stage-id", "s", 0, "Stage to deploy to")
	deployCmd.Flags().IntP("project-id", "p", 0, "Project to deploy (defaults to the linked project)")
	rootCmd.AddCommand(deployCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "login",
		Short: "Save a Samson access token",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Login),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Remove the saved access token",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Logout),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "link [project-id]",
		Short: "Set the default project",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Link),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "unlink",
		Short: "Forget the default project",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Unlink),
	})

	openCmd := &cobra.Command{
		Use:       "open [page]",
		Short:     "Open a Samson page in the browser",
		ValidArgs: pages(),
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE:      contextualize(handler.Open),
	}
	openCmd.Flags().IntP("project-id", "p", 0, "Project to open (defaults to the linked project)")
	rootCmd.AddCommand(openCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the token, project and reference that would be used",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Status),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of the Samson CLI",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Version),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate a shell completion script",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE:      contextualize(handler.Completion),
	})
}

func pages() []string {
	pages := make([]string, 0, len(constants.WebURLMap))
	for page := range constants.WebURLMap {
		pages = append(pages, page)
	}
	return pages
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if strings.Contains(err.Error(), "unknown command") && len(os.Args) > 1 {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Fprintf(os.Stderr, "Unknown command \"%s\" for \"%s\".%s"+
				"ee \"samson --help\" for available commands.\n",
				os.Args[1], rootCmd.CommandPath(), suggStr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
