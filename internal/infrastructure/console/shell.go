// Package console provides the interactive command shell.
// Clean Architecture: Framework/driver layer - outermost circle.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/entities"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/ports"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/usecases"
)

const prompt = "iec62304> "

// WatcherFactory builds a fresh directory watcher for the `watch` command.
type WatcherFactory func() (ports.FileWatcher, error)

// Shell is the line-oriented audit session: queue commands, then `run`.
type Shell struct {
	queue      *usecases.QueueUseCase
	evidence   *usecases.EvidenceUseCase
	audit      *usecases.AuditUseCase
	newWatcher WatcherFactory
	log        *zap.SugaredLogger
	in         io.Reader
	out        io.Writer

	watcher     ports.FileWatcher
	watchCancel context.CancelFunc
	watchDir    string
}

// NewShell creates a shell with injected usecases and IO streams.
func NewShell(
	queue *usecases.QueueUseCase,
	evidence *usecases.EvidenceUseCase,
	audit *usecases.AuditUseCase,
	newWatcher WatcherFactory,
	log *zap.SugaredLogger,
	in io.Reader,
	out io.Writer,
) *Shell {
	return &Shell{
		queue:      queue,
		evidence:   evidence,
		audit:      audit,
		newWatcher: newWatcher,
		log:        log,
		in:         in,
		out:        out,
	}
}

// Run reads commands until quit/exit or EOF.
func (s *Shell) Run(ctx context.Context) error {
	s.printHelp()
	defer s.stopWatch()

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		switch cmd {
		case "quit", "exit":
			fmt.Fprintln(s.out, "Bye.")
			return scanner.Err()
		case "help":
			s.printHelp()
		case "add":
			s.handleAdd(args)
		case "list":
			s.handleList()
		case "clear":
			s.queue.Clear()
			fmt.Fprintln(s.out, "Queue cleared")
		case "run":
			s.handleRun(ctx)
		case "watch":
			s.handleWatch(ctx, args)
		case "unwatch":
			s.handleUnwatch()
		default:
			fmt.Fprintln(s.out, "Unknown command")
		}
	}

	fmt.Fprintln(s.out, "\nBye.")
	return scanner.Err()
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "\nIEC 62304 Auditor Commands:")
	fmt.Fprintln(s.out, "  add <files>  - Add documentation (glob patterns allowed)")
	fmt.Fprintln(s.out, "  list         - Show queued files")
	fmt.Fprintln(s.out, "  clear        - Clear queue")
	fmt.Fprintln(s.out, "  run          - Execute audit")
	fmt.Fprintln(s.out, "  watch <dir>  - Auto-queue supported files created in dir")
	fmt.Fprintln(s.out, "  unwatch      - Stop watching")
	fmt.Fprintln(s.out, "  quit         - Exit")
	fmt.Fprintln(s.out, "")
}

func (s *Shell) handleAdd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: add <files>")
		return
	}
	if added := s.queue.Add(args); added > 0 {
		fmt.Fprintf(s.out, "Added %d files\n", added)
	} else {
		fmt.Fprintln(s.out, "No supported files found")
	}
}

func (s *Shell) handleList() {
	paths := s.queue.List()
	if len(paths) == 0 {
		fmt.Fprintln(s.out, "Queue empty")
		return
	}
	for i, p := range paths {
		fmt.Fprintf(s.out, "%2d. %s\n", i+1, p)
	}
}

func (s *Shell) handleRun(ctx context.Context) {
	paths := s.queue.List()
	if len(paths) == 0 {
		fmt.Fprintln(s.out, "Queue empty")
		return
	}

	items := s.evidence.Load(ctx, paths)
	evidence, _ := usecases.BuildContext(items, s.audit.ContextChars())
	fmt.Fprintf(s.out, "Context length: %d chars\n", len(evidence))
	fmt.Fprintln(s.out, "Starting audit...")

	transcript, err := s.audit.Run(ctx, items)
	if errors.Is(err, usecases.ErrNoEvidence) {
		fmt.Fprintln(s.out, "No evidence. Use `add <files>`")
		return
	}
	if transcript != nil {
		s.printTranscript(transcript)
	}
	if err != nil {
		fmt.Fprintf(s.out, "Audit failed: %v\n", err)
	}
}

func (s *Shell) printTranscript(t *entities.Transcript) {
	PrintTranscript(s.out, t)
}

// PrintTranscript writes the audit transcript with its token accounting.
// Shared by the shell and the one-shot run command.
func PrintTranscript(w io.Writer, t *entities.Transcript) {
	fmt.Fprintln(w, "\n=== IEC 62304 Audit Results ===")
	fmt.Fprintf(w, "Tokens - Total: %d, In: %d, Out: %d\n",
		t.Usage.Total(), t.Usage.InputTokens, t.Usage.OutputTokens)
	for _, msg := range t.Messages {
		fmt.Fprintf(w, "[%s]: %s\n", msg.Source, msg.Content)
		fmt.Fprintln(w, strings.Repeat("-", 50))
	}
	if t.Stop != entities.StopMarker {
		fmt.Fprintf(w, "Audit stopped early (%s)\n", t.Stop)
	}
}

func (s *Shell) handleWatch(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: watch <dir>")
		return
	}
	if s.newWatcher == nil {
		fmt.Fprintln(s.out, "Watching is not available")
		return
	}
	s.stopWatch()

	watcher, err := s.newWatcher()
	if err != nil {
		fmt.Fprintf(s.out, "Cannot watch: %v\n", err)
		return
	}

	watchCtx, cancel := context.WithCancel(ctx)
	events, err := watcher.Watch(watchCtx, args[0])
	if err != nil {
		cancel()
		watcher.Stop()
		fmt.Fprintf(s.out, "Cannot watch %s: %v\n", args[0], err)
		return
	}

	s.watcher = watcher
	s.watchCancel = cancel
	s.watchDir = args[0]

	go func() {
		for ev := range events {
			if ev.Operation == ports.FileDeleted {
				continue
			}
			if s.queue.AddPath(ev.Path) {
				s.log.Infow("queued from watch", "path", ev.Path)
			}
		}
	}()

	fmt.Fprintf(s.out, "Watching %s\n", args[0])
}

func (s *Shell) handleUnwatch() {
	if s.watcher == nil {
		fmt.Fprintln(s.out, "Not watching")
		return
	}
	dir := s.watchDir
	s.stopWatch()
	fmt.Fprintf(s.out, "Stopped watching %s\n", dir)
}

func (s *Shell) stopWatch() {
	if s.watcher == nil {
		return
	}
	s.watchCancel()
	s.watcher.Stop()
	s.watcher = nil
	s.watchCancel = nil
	s.watchDir = ""
}
