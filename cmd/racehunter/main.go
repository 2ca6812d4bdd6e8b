package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		flags        scanFlags
		thresholdSec float64
		timeoutSec   float64
	)

	cmd := &cobra.Command{
		Use:   "racehunter [domain]",
		Short: "Concurrent race-window triage for historically-seen endpoints",
		Long: `racehunter collects every URL the Wayback Machine and AlienVault OTX have
seen for a target domain, ranks them by a suspicion heuristic, and probes
them concurrently. Responses that complete faster than the configured
threshold are flagged as potential race-condition windows and persisted
for review.

Flagging is a timing heuristic: it points at endpoints that may skip a
server-side serialization step, it never confirms an exploitable race.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.toConfig(args[0], thresholdSec, timeoutSec)
			if err != nil {
				return err
			}
			return runScan(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.subdomains, "subdomain", "s", false, "include subdomains in the corpus query")
	f.IntVarP(&flags.threads, "threads", "t", 5, "number of concurrent probe workers")
	f.Float64VarP(&thresholdSec, "response-time-threshold", "r", 0.1, "flag responses strictly faster than this many seconds")
	f.Float64Var(&timeoutSec, "request-timeout", 10, "hard per-request timeout in seconds")
	f.IntVar(&flags.maxProbe, "max-probe", 0, "probe only the N highest-ranked URLs (0 = all)")
	f.StringVar(&flags.db, "db", "race_conditions.db", "sqlite database file (or postgres:// DSN)")
	f.StringVar(&flags.report, "report", "race_conditions_report.html", "HTML report path (empty disables)")
	f.StringVar(&flags.logDir, "log-dir", "logs", "directory for rotated scan logs")
	f.BoolVar(&flags.insecure, "insecure", true, "skip TLS verification when probing")
	f.BoolVar(&flags.noScore, "no-score", false, "probe in discovery order without scoring")

	return cmd
}
