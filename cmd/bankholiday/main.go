// bankholiday - is it a bank holiday?
//
// To the extent possible under law, the author(s) have dedicated all copyright
// and related and neighboring rights to this software to the public domain
// worldwide. This software is distributed without any warranty.
//
// You should have received a copy of the CC0 Public Domain Dedication along with
// this software. If not, see <https://creativecommons.org/publicdomain/zero/1.0/>.
//
// SPDX-License-Identifier: CC0-1.0

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/therootcompany/bankholiday"
)

// errNotHoliday sets the exit status of `is` without printing anything
var errNotHoliday = errors.New("not a holiday")

type CLIConfig struct {
	envFile      string
	jurisdiction string
	noColor      bool

	// resolved before any subcommand runs
	j   bankholiday.Jurisdiction
	now func() time.Time
}

func main() {
	cfg := &CLIConfig{now: time.Now}
	root := newRootCmd(cfg)

	if err := root.Execute(); err != nil {
		if errors.Is(err, errNotHoliday) {
			os.Exit(1)
			return
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(2)
	}
}

func newRootCmd(cfg *CLIConfig) *cobra.Command {
	root := &cobra.Command{
		Use:   name,
		Short: "Answer whether a date is a public holiday",
		Long: strings.TrimSpace(`
Answer whether a date is an observed public holiday.

Dates are YYYY-MM-DD, or one of today, tomorrow and yesterday.
The jurisdiction defaults to BANKHOLIDAY_JURISDICTION (from the environment
or the --envfile), then to uk.`),
		Example: strings.Join([]string{
			"  bankholiday is 2022-06-03",
			"  bankholiday is --quiet today && echo 'day off'",
			"  bankholiday list --year 2023",
			"  bankholiday workdays 2017-04-13 --after 1",
		}, "\n"),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cfg.resolve,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.envFile, "envfile", ".env", "Load ENVs from this file")
	flags.StringVarP(&cfg.jurisdiction, "jurisdiction", "j", "", "uk, gb, england, us (default uk)")
	flags.BoolVar(&cfg.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newIsCmd(cfg),
		newListCmd(cfg),
		newNextCmd(cfg),
		newEasterCmd(cfg),
		newWorkdaysCmd(cfg),
		newExceptionsCmd(cfg),
		newAuditCmd(cfg),
		&cobra.Command{
			Use:   "version",
			Short: "Show version and exit",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				printVersion(cmd.OutOrStdout())
			},
		},
	)

	return root
}

func (cfg *CLIConfig) resolve(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(cfg.envFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("could not read %s: %w", cfg.envFile, err)
		}
	}

	color.NoColor = cfg.noColor || !term.IsTerminal(int(os.Stdout.Fd()))

	s := cfg.jurisdiction
	if !cmd.Flags().Changed("jurisdiction") {
		s = os.Getenv("BANKHOLIDAY_JURISDICTION")
	}
	if s == "" {
		s = string(bankholiday.UK)
	}
	j, err := bankholiday.ParseJurisdiction(s)
	if err != nil {
		return err
	}
	cfg.j = j

	if cfg.now == nil {
		cfg.now = time.Now
	}
	return nil
}
