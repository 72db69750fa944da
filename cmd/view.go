package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/city-viewer/internal/surface"
	"github.com/sells-group/city-viewer/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Start an interactive viewing session",
	Long: "Shows the first city (or --city) on a console map, then reads commands from stdin: " +
		"a city name or list number selects that city; list, legend, help and quit do what they say.",
	RunE: runView,
}

func init() {
	viewCmd.Flags().String("city", "", "City to select after startup")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	city, _ := cmd.Flags().GetString("city")

	if err := cfg.Map.Validate(); err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	v := viewer.New(cat, surface.NewConsole(os.Stdout), viewerOptions(cfg.Map))
	if city != "" {
		if err := v.Selection.Choose(city); err != nil {
			return eris.Wrap(err, "view")
		}
	}

	s := newSession(v, os.Stdin, os.Stdout)
	zap.L().Info("viewing session started",
		zap.String("session_id", s.id),
		zap.String("city", v.Selection.Current()),
	)
	return s.run(ctx)
}

// session reads selection commands line by line and applies them to a
// viewer.
type session struct {
	id     string
	viewer *viewer.Viewer
	in     io.Reader
	out    io.Writer
	log    *zap.Logger
}

func newSession(v *viewer.Viewer, in io.Reader, out io.Writer) *session {
	id := uuid.NewString()
	return &session{
		id:     id,
		viewer: v,
		in:     in,
		out:    out,
		log:    zap.L().With(zap.String("component", "session"), zap.String("session_id", id)),
	}
}

// run processes commands until quit, end of input or ctx is done.
func (s *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	s.prompt()
	for {
		select {
		case <-ctx.Done():
			s.log.Info("session interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return eris.Wrap(err, "session: read input")
					}
				default:
				}
				return nil
			}
			if done := s.handle(strings.TrimSpace(line)); done {
				return nil
			}
			s.prompt()
		}
	}
}

// handle applies one command line and reports whether the session ends.
func (s *session) handle(line string) bool {
	switch strings.ToLower(line) {
	case "":
		return false
	case "quit", "exit", "q":
		return true
	case "list", "ls":
		s.list()
		return false
	case "legend":
		if err := s.viewer.Legend.Render(s.out); err != nil {
			s.log.Debug("legend write failed", zap.Error(err))
		}
		return false
	case "help", "?":
		s.help()
		return false
	}

	var err error
	if n, convErr := strconv.Atoi(line); convErr == nil {
		err = s.viewer.Selection.ChooseIndex(n)
		// A city may be named by digits alone.
		if err != nil && s.viewer.Selection.Contains(line) {
			err = s.viewer.Selection.Choose(line)
		}
	} else {
		err = s.viewer.Selection.Choose(line)
	}
	if err != nil {
		s.log.Debug("selection rejected", zap.String("input", line), zap.Error(err))
		s.printf("error: %v\n", err)
		return false
	}
	s.log.Debug("city selected", zap.String("city", s.viewer.Selection.Current()))
	return false
}

func (s *session) list() {
	for i, opt := range s.viewer.Selection.Options() {
		mark := " "
		if opt.Selected {
			mark = "*"
		}
		s.printf("%s %d. %s\n", mark, i+1, opt.Name)
	}
}

func (s *session) help() {
	s.printf("commands:\n")
	s.printf("  <name>|<number>  select a city\n")
	s.printf("  list             show the cities\n")
	s.printf("  legend           show the district colors\n")
	s.printf("  quit             end the session\n")
}

func (s *session) prompt() {
	s.printf("city> ")
}

func (s *session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
