package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/2beens/squashcoach/internal/coaching"
	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/coaching/messages"
	"github.com/2beens/squashcoach/internal/coaching/store"
	"github.com/2beens/squashcoach/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type options struct {
	snapshotPath string
	lang         string
	phase        string
	today        string
	configPath   string
	env          string
}

// session is everything a command needs, resolved from the flags.
type session struct {
	engine   *analytics.Engine
	catalog  *messages.Catalog
	lang     messages.Language
	phase    analytics.Phase
	snapshot *store.Snapshot
	today    time.Time
}

func (o *options) session() (*session, error) {
	if o.snapshotPath == "" {
		return nil, errors.New("--file is required")
	}
	snap, err := store.LoadSnapshot(o.snapshotPath)
	if err != nil {
		return nil, err
	}
	phase, err := analytics.ParsePhase(o.phase)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	if o.today != "" {
		today, err = time.Parse(dateLayout, o.today)
		if err != nil {
			return nil, fmt.Errorf("invalid --today, expected YYYY-MM-DD: %w", err)
		}
	}

	engineOpts := []analytics.Option{analytics.WithClock(analytics.FixedClock(today))}
	if o.configPath != "" {
		cfg, err := config.Load(o.env, o.configPath)
		if err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, analytics.WithThresholds(cfg.Thresholds))
	}

	catalog := messages.NewCatalog(messages.DefaultLanguage)
	return &session{
		engine:   analytics.NewEngine(engineOpts...),
		catalog:  catalog,
		lang:     messages.ParseLanguage(o.lang, catalog.DefaultLanguage()),
		phase:    phase,
		snapshot: snap,
		today:    today,
	}, nil
}

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	warningStyle = color.New(color.FgRed, color.Bold)
	goodStyle    = color.New(color.FgGreen)
	labelStyle   = color.New(color.FgMagenta, color.Bold)
)

func printHeader(w io.Writer, title string) {
	line := strings.Repeat("─", len([]rune(title))+2)
	headerStyle.Fprintf(w, "┌%s┐\n│ %s │\n└%s┘\n", line, title, line)
}

func printList(w io.Writer, title string, style *color.Color, items []string) {
	if len(items) == 0 {
		return
	}
	labelStyle.Fprintln(w, title)
	for _, item := range items {
		style.Fprintf(w, "  • %s\n", item)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "coachctl",
		Short:         "Offline squash coaching analyses over an exported history snapshot",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.snapshotPath, "file", "f", "", `snapshot JSON file ({"logs": [...], "memos": [...]})`)
	root.PersistentFlags().StringVar(&opts.lang, "lang", string(messages.DefaultLanguage), "output language [ko | en]")
	root.PersistentFlags().StringVar(&opts.phase, "phase", string(analytics.PhasePreparation), "training phase [preparation | intensity | peak | recovery]")
	root.PersistentFlags().StringVar(&opts.today, "today", "", "evaluate as of this date (YYYY-MM-DD), defaults to now")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "optional TOML config with engine thresholds")
	root.PersistentFlags().StringVar(&opts.env, "env", "development", "config environment")

	root.AddCommand(
		newReportCmd(opts),
		newPlanCmd(opts),
		newAdviceCmd(opts),
		newInterpretCmd(opts),
	)
	return root
}

func newReportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Comprehensive report: trend, injury risk, health and technique",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			report := s.engine.BuildComprehensiveReport(s.snapshot.Logs, s.snapshot.Memos, s.phase)

			w := cmd.OutOrStdout()
			printHeader(w, "REPORT")
			fmt.Fprintln(w, s.catalog.Render(s.lang, report.Summary))
			fmt.Fprintln(w)
			printList(w, "Warnings", warningStyle, s.catalog.RenderAll(s.lang, report.Warnings))
			printList(w, "Recommendations", goodStyle, s.catalog.RenderAll(s.lang, report.Recommendations))
			printList(w, "Next steps", goodStyle, s.catalog.RenderAll(s.lang, report.NextSteps))
			return nil
		},
	}
}

func newPlanCmd(opts *options) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Seven day training plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			targetDate := s.today.AddDate(0, 0, 7*coaching.DefaultTargetWeeks)
			if target != "" {
				targetDate, err = time.Parse(dateLayout, target)
				if err != nil {
					return fmt.Errorf("invalid --target, expected YYYY-MM-DD: %w", err)
				}
			}
			plan := s.engine.BuildWeeklyPlan(s.snapshot.Logs, s.phase, targetDate)

			w := cmd.OutOrStdout()
			printHeader(w, "PLAN "+string(plan.Phase))
			for _, day := range plan.Days {
				labelStyle.Fprintf(w, "%s  ", day.Date.Format("Mon 01-02"))
				if day.Rest {
					fmt.Fprintln(w, s.catalog.Template(s.lang, messages.LabelRestDay))
					continue
				}
				fmt.Fprintf(w, "%s, %d min, intensity %.1f\n",
					s.catalog.Template(s.lang, day.TimeOfDay.Label()), day.DurationMinutes, day.TargetIntensity)
				for _, ex := range day.Exercises {
					fmt.Fprintf(w, "    - %s x%d\n", s.catalog.Template(s.lang, ex.Name), ex.Sets)
				}
			}
			fmt.Fprintln(w)
			printList(w, "Goals", goodStyle, s.catalog.RenderAll(s.lang, plan.WeeklyGoals))
			printList(w, "Adjust when", warningStyle, s.catalog.RenderAll(s.lang, plan.AdjustmentTriggers))
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "target date (YYYY-MM-DD), defaults to 12 weeks from today")
	return cmd
}

func newAdviceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "advice",
		Short: "Prioritised advice from the most recent workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			entries := s.engine.AnalyzeWorkoutData(s.snapshot.Logs, s.snapshot.Memos)

			w := cmd.OutOrStdout()
			printHeader(w, "ADVICE")
			if len(entries) == 0 {
				fmt.Fprintln(w, "no advice")
				return nil
			}
			for _, e := range entries {
				style := goodStyle
				if e.Priority == analytics.PriorityHigh {
					style = warningStyle
				}
				style.Fprintf(w, "[%s] ", e.Priority)
				fmt.Fprintf(w, "%s: %s\n", e.Type, s.catalog.Render(s.lang, e.Message))
			}
			return nil
		},
	}
}

func newInterpretCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "interpret [journal text]",
		Short: "Reply to a journal entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			reply := s.engine.InterpretJournalEntry(text, s.snapshot.Memos, s.snapshot.Logs)
			goodStyle.Fprintln(cmd.OutOrStdout(), s.catalog.Render(s.lang, reply))
			return nil
		},
	}
}
