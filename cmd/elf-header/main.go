package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/raven-betanet/elf-header/internal/elfhdr"
	"github.com/raven-betanet/elf-header/internal/utils"
)

const programName = "elf-header"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		reportError(stderr, err)
		return elfhdr.ExitCode
	}
	return 0
}

// reportError writes the one-line diagnostic for err
func reportError(w io.Writer, err error) {
	var usage *elfhdr.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(w, usage.Error())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		outputFormat string
		configFile   string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   programName + " elf_filename",
		Short: "Display the ELF header of a file",
		Long: `elf-header reads the fixed-size ELF header at the start of a file and
prints its identification fields, object type and entry point address.

Only the header is inspected; sections and program headers are not read.

Exit codes:
  0  - Header decoded and printed
  98 - Wrong arguments, unreadable file, short header or not an ELF file`,
		Example: `  elf-header /bin/ls
  elf-header --format json ./a.out`,
		Version:       utils.GetVersionString(),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &elfhdr.UsageError{Program: programName, Got: len(args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				config.OutputFormat = outputFormat
			}

			loggerConfig := config.LoggerConfig()
			loggerConfig.Output = cmd.ErrOrStderr()
			if verbose {
				loggerConfig.Level = utils.LogLevelDebug
			}
			ctx := utils.WithLogger(cmd.Context(), utils.NewLogger(loggerConfig))

			return inspect(ctx, args[0], config.OutputFormat, stdout)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", utils.OutputFormatText, "Output format (text, json)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func loadConfig(configFile string) (*utils.Config, error) {
	if configFile != "" {
		return utils.LoadConfigFromFile(configFile)
	}
	return utils.LoadDefaultConfig()
}

// inspect reads the header of path and writes the report to w.
// Nothing is written unless the header was read and validated.
func inspect(ctx context.Context, path, format string, w io.Writer) error {
	logger := utils.LoggerFromContext(ctx).WithComponent("elfhdr").WithField("path", path)

	var render func(io.Writer, elfhdr.Header) error
	switch format {
	case utils.OutputFormatText:
		render = elfhdr.Render
	case utils.OutputFormatJSON:
		render = elfhdr.RenderJSON
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	logger.Debug("Reading ELF header")
	h, err := elfhdr.ReadFile(path)
	if err != nil {
		logger.WithError(errors.Cause(err)).Debug("Header rejected")
		return err
	}
	logger.WithField("class", h.ClassName()).WithField("type", h.TypeName()).Debug("Header decoded")

	var buf bytes.Buffer
	if err := render(&buf, h); err != nil {
		return errors.Wrap(err, "render header")
	}
	_, err = w.Write(buf.Bytes())
	return err
}
