// Package shell is a line-oriented front end. It reads one command per line
// and prints the list after every change, which makes it easy to drive from
// scripts and tests.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/arthur-debert/nanotasks/formats"
	"github.com/arthur-debert/nanotasks/internal/app"
	"github.com/arthur-debert/nanotasks/internal/validation"
	"github.com/arthur-debert/nanotasks/tasklist"
	"github.com/arthur-debert/nanotasks/types"
)

const prompt = "> "

// errQuit stops the loop without reporting an error
var errQuit = errors.New("quit")

// Shell binds an app to an input and an output stream
type Shell struct {
	app    *app.App
	out    io.Writer
	format *formats.Format
	prompt bool
}

// New creates a shell printing snapshots in the app's configured format.
// When interactive is true a prompt is printed before each line.
func New(a *app.App, out io.Writer, interactive bool) (*Shell, error) {
	format, err := formats.Get(a.Config.Format)
	if err != nil {
		return nil, err
	}
	s := &Shell{app: a, out: out, format: format, prompt: interactive}
	a.Subscribe(tasklist.ViewFunc(s.print))
	return s, nil
}

// Run processes lines from in until EOF, "quit" or ctx is done
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if s.prompt {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.Exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Exec runs a single command line
func (s *Shell) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "add":
		text, category := splitSuffix(rest, '#')
		return s.submit(validation.Input{Text: text, Mode: string(types.PriorityRegular), Category: category})
	case "urgent":
		text, deadline := splitSuffix(rest, '@')
		return s.submit(validation.Input{Text: text, Mode: string(types.PriorityUrgent), Deadline: deadline})
	case "toggle", "done":
		index, err := parseIndex(rest)
		if err != nil {
			return err
		}
		return s.app.Toggle(index)
	case "delete", "rm":
		index, err := parseIndex(rest)
		if err != nil {
			return err
		}
		return s.app.Delete(index)
	case "list", "ls":
		s.print(s.app.Snapshot())
		return nil
	case "stats":
		st := s.app.Stats()
		fmt.Fprintf(s.out, "Total: %d  Completed: %d  Pending: %d  Urgent: %d\n", st.Total, st.Completed, st.Pending, st.Urgent)
		return nil
	case "export":
		return s.export(ctx, rest)
	case "formats":
		fmt.Fprintln(s.out, strings.Join(formats.List(), "\n"))
		return nil
	case "help", "?":
		fmt.Fprint(s.out, usage)
		return nil
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try \"help\")", cmd)
	}
}

func (s *Shell) submit(in validation.Input) error {
	_, err := s.app.Submit(in)
	return err
}

func (s *Shell) export(ctx context.Context, args string) error {
	fields := strings.Fields(args)
	var path, format string
	if len(fields) > 0 {
		path = fields[0]
	}
	if len(fields) > 1 {
		format = fields[1]
	}

	written, err := s.app.Export(ctx, path, format)
	if err != nil {
		return err
	}
	if info, err := os.Stat(written); err == nil {
		fmt.Fprintf(s.out, "Exported to %s (%s)\n", written, humanize.Bytes(uint64(info.Size())))
		return nil
	}
	fmt.Fprintf(s.out, "Exported to %s\n", written)
	return nil
}

// print is the shell's tasklist.View
func (s *Shell) print(snap tasklist.Snapshot) {
	out, err := s.format.Render(snap)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	_, _ = s.out.Write(out)
}

// splitSuffix separates "text #suffix" into its parts. Only the last marker
// preceded by a space counts, so markers inside the text are kept.
func splitSuffix(s string, marker byte) (string, string) {
	if strings.HasPrefix(s, string(marker)) {
		return "", strings.TrimSpace(s[1:])
	}
	idx := strings.LastIndex(s, " "+string(marker))
	if idx < 0 {
		return s, ""
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+2:])
}

func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("missing task number")
	}
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task number %q", s)
	}
	return index, nil
}

const usage = `Commands:
  add <text> [#category]       Add a regular task
  urgent <text> [@deadline]    Add an urgent task
  toggle <n>                   Mark task n done or not done
  delete <n>                   Delete task n
  list                         Show the list
  stats                        Show counts
  export [path] [format]       Write the list to a file
  formats                      List output formats
  help                         Show this help
  quit                         Leave
`
