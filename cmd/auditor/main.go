// Command auditor is the IEC 62304 compliance audit assistant.
// It queues regulatory documentation, extracts bounded excerpts, and submits
// them to a Claude-backed auditor team for a structured compliance report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/adapters/extractor"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/adapters/filewatcher"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/adapters/llm"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/agents"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/config"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/ports"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/usecases"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/infrastructure/console"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		verbose bool
	)

	root := &cobra.Command{
		Use:          "auditor",
		Short:        "IEC 62304 compliance audit assistant",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cfgPath, verbose)
			if err != nil {
				return err
			}
			defer app.close()
			return app.shell.Run(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newRunCmd(&cfgPath, &verbose))
	return root
}

// newRunCmd audits the given patterns once, without the interactive shell.
func newRunCmd(cfgPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file-patterns>...",
		Short: "Audit the given files and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(*cfgPath, *verbose)
			if err != nil {
				return err
			}
			defer app.close()

			if added := app.queue.Add(args); added == 0 {
				return fmt.Errorf("no supported files matched %v", args)
			}

			items := app.evidence.Load(cmd.Context(), app.queue.List())
			transcript, err := app.audit.Run(cmd.Context(), items)
			if transcript != nil {
				console.PrintTranscript(cmd.OutOrStdout(), transcript)
			}
			return err
		},
	}
}

// app bundles the wired dependencies for one process.
type app struct {
	queue    *usecases.QueueUseCase
	evidence *usecases.EvidenceUseCase
	audit    *usecases.AuditUseCase
	shell    *console.Shell
	log      *zap.SugaredLogger
}

func (a *app) close() {
	_ = a.log.Sync()
}

// buildApp is the composition root: config, adapters, usecases, shell.
func buildApp(cfgPath string, verbose bool) (*app, error) {
	// Best-effort, same as the dotenv convention elsewhere: absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log := logging.New(verbose)

	extractors := []ports.EvidenceExtractor{
		extractor.NewPDFExtractor(),
		extractor.NewDOCXExtractor(),
		extractor.NewXLSXExtractor(),
	}
	evidence := usecases.NewEvidenceUseCase(extractors, cfg.PerFileChars)
	queue := usecases.NewQueueUseCase(evidence.SupportedExtensions())

	client := llm.NewAnthropicAdapter(llm.Config{
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	})
	log.Debugw("model client ready", "model", client.Model())

	audit := usecases.NewAuditUseCase(
		client,
		agents.AuditTeam(),
		agents.Translator(),
		agents.CompletionMarker,
		cfg.MaxMessages,
		cfg.Timeout(),
		cfg.ContextChars,
	)

	newWatcher := func() (ports.FileWatcher, error) {
		return filewatcher.NewFSNotifyWatcher(evidence.SupportedExtensions())
	}

	shell := console.NewShell(queue, evidence, audit, newWatcher, log, os.Stdin, os.Stdout)

	return &app{
		queue:    queue,
		evidence: evidence,
		audit:    audit,
		shell:    shell,
		log:      log,
	}, nil
}
