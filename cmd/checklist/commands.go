package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"item-checklist/internal/checklist"
	"item-checklist/internal/description"
	"item-checklist/internal/tui"
	"item-checklist/pkg/stamp"
)

var now = time.Now

// ioOptions selects where a description is read from and written to.
type ioOptions struct {
	File  string
	Write bool
}

func addIOArgs(cmd *cobra.Command, o *ioOptions) {
	cmd.PersistentFlags().StringVarP(&o.File, "file", "f", "",
		"Read the description from this file instead of stdin.")
	cmd.PersistentFlags().BoolVarP(&o.Write, "write", "w", false,
		"Write the result back to --file instead of stdout.")
}

func (o *ioOptions) read(cmd *cobra.Command) (string, error) {
	if o.File == "" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(o.File)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", o.File, err)
	}
	return string(b), nil
}

func (o *ioOptions) emit(cmd *cobra.Command, desc string) error {
	if o.Write {
		return o.writeFile(desc)
	}
	_, err := io.WriteString(cmd.OutOrStdout(), desc)
	return err
}

func (o *ioOptions) writeFile(desc string) error {
	if o.File == "" {
		return errors.New("--write requires --file")
	}
	info, err := os.Stat(o.File)
	if err != nil {
		return err
	}
	return os.WriteFile(o.File, []byte(desc), info.Mode().Perm())
}

// transform reads the description, applies fn and emits the result.
func (o *ioOptions) transform(cmd *cobra.Command, fn func(string) (string, error)) error {
	desc, err := o.read(cmd)
	if err != nil {
		return err
	}
	next, err := fn(desc)
	if err != nil {
		return err
	}
	return o.emit(cmd, next)
}

func newRootCmd() *cobra.Command {
	o := &ioOptions{}

	root := &cobra.Command{
		Use:   "checklist",
		Short: "Edit markdown-style checklists inside a description",
		Long: `checklist edits "- [ ] text" lines in a description read from stdin
or --file. Lines that are not checklist lines are left untouched.`,
		SilenceUsage: true,
	}
	addIOArgs(root, o)

	root.AddCommand(
		newToggleCmd(o),
		newResetCmd(o),
		newAddCmd(o),
		newStatsCmd(o),
		newStampCmd(o),
		newTUICmd(o),
	)
	return root
}

func newToggleCmd(o *ioOptions) *cobra.Command {
	var line int

	cmd := &cobra.Command{
		Use:   "toggle [text]",
		Short: "Flip the checklist rows matching text, or the row at --line",
		Example: `
checklist toggle -f notes.md -w "buy milk"
checklist toggle --line 0 < notes.md
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("line") {
				if len(args) > 0 {
					return errors.New("give either text or --line, not both")
				}
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires the row text or --line")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			byLine := cmd.Flags().Changed("line")
			text := strings.Join(args, " ")
			return o.transform(cmd, func(desc string) (string, error) {
				if byLine {
					next, err := checklist.ToggleLine(desc, line)
					if err != nil {
						return "", fmt.Errorf("row %d: %w", line, err)
					}
					return next, nil
				}
				return checklist.Toggle(desc, text), nil
			})
		},
	}
	cmd.Flags().IntVar(&line, "line", 0, "0-based position of the row among checklist rows.")
	return cmd
}

func newResetCmd(o *ioOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Uncheck every checklist row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.transform(cmd, func(desc string) (string, error) {
				return checklist.Reset(desc), nil
			})
		},
	}
}

func newAddCmd(o *ioOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add an unchecked row after the last checklist row",
		Example: `
checklist add -f notes.md -w buy milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return errors.New("requires non-empty row text")
			}
			return o.transform(cmd, func(desc string) (string, error) {
				return checklist.AddItem(desc, text), nil
			})
		},
	}
}

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// statsReport is the machine-readable form of the stats command.
type statsReport struct {
	Stats checklist.ChecklistStats `json:"stats" yaml:"stats"`
	Rows  []checklist.Checkbox     `json:"rows" yaml:"rows"`
}

var (
	doneColor    = color.New(color.FgGreen)
	pendingColor = color.New(color.FgYellow)
	summaryColor = color.New(color.Bold)
)

func newStatsCmd(o *ioOptions) *cobra.Command {
	var (
		verbose bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print checklist progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := o.read(cmd)
			if err != nil {
				return err
			}
			report := statsReport{
				Stats: checklist.GetStats(desc),
				Rows:  checklist.ParseCheckboxes(desc),
			}
			out := cmd.OutOrStdout()

			switch output {
			case outputJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			case outputYAML:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return err
				}
				return enc.Close()
			case outputText:
			default:
				return fmt.Errorf("unknown output %q: want text, json or yaml", output)
			}

			s := report.Stats
			summaryColor.Fprintf(out, "%d/%d completed (%.0f%%)\n", s.Completed, s.Total, s.Progress)
			if verbose {
				for _, cb := range report.Rows {
					if cb.Checked {
						doneColor.Fprintf(out, "%3d [x] %s\n", cb.Index, cb.Text)
						continue
					}
					pendingColor.Fprintf(out, "%3d [ ] %s\n", cb.Index, cb.Text)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every row with its index.")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml.")
	return cmd
}

func newStampCmd(o *ioOptions) *cobra.Command {
	var (
		cursor   int
		at       string
		timezone string
		layout   string
	)

	cmd := &cobra.Command{
		Use:   "stamp",
		Short: "Insert a timestamp at a cursor position",
		Example: `
checklist stamp --cursor 12 -f notes.md -w
checklist stamp --at tomorrow < notes.md
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stamper, err := stamp.New(timezone, layout)
			if err != nil {
				return err
			}
			text, err := stamper.StampExpr(at, now())
			if err != nil {
				return err
			}
			return o.transform(cmd, func(desc string) (string, error) {
				return description.InsertAt(desc, cursor, text), nil
			})
		},
	}
	cmd.Flags().IntVar(&cursor, "cursor", 0, "Character offset to insert at; clamped to the description.")
	cmd.Flags().StringVar(&at, "at", "", `Date expression such as "tomorrow" or "next friday"; empty means now.`)
	cmd.Flags().StringVar(&timezone, "tz", "Local", "IANA timezone of the timestamp.")
	cmd.Flags().StringVar(&layout, "layout", stamp.DefaultLayout, "Go time layout of the timestamp.")
	return cmd
}

func newTUICmd(o *ioOptions) *cobra.Command {
	var (
		timezone string
		layout   string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit the checklist interactively",
		Long: `tui opens the description in a terminal view. Rows toggle with space,
"a" adds a row, "r" resets, "t" appends a timestamp and "s" saves to --file.`,
		Example: `
checklist tui -f notes.md
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.File == "" {
				return errors.New("tui requires --file")
			}
			stamper, err := stamp.New(timezone, layout)
			if err != nil {
				return err
			}
			desc, err := o.read(cmd)
			if err != nil {
				return err
			}
			_, err = tui.Run(desc, stamper, o.writeFile)
			return err
		},
	}
	cmd.Flags().StringVar(&timezone, "tz", "Local", "IANA timezone of inserted timestamps.")
	cmd.Flags().StringVar(&layout, "layout", stamp.DefaultLayout, "Go time layout of inserted timestamps.")
	return cmd
}
