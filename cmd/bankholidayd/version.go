package main

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

const (
	name         = "bankholidayd"
	licenseYear  = "2025"
	licenseOwner = "AJ ONeal <aj@therootcompany.com> (https://therootcompany.com)"
	licenseType  = "CC0-1.0"
)

// set by GoReleaser via ldflags
var (
	version = ""
	commit  = ""
	date    = ""
)

func init() {
	// workaround for `tinygo` ldflag replacement handling not allowing default values
	// See <https://github.com/tinygo-org/tinygo/issues/2976>
	if len(version) == 0 {
		version = gitOr("0.0.0-dev", "describe", "--tags", "--abbrev=7", "--dirty=+local", "--always")
		version = strings.TrimPrefix(version, "v")
	}
	if len(commit) == 0 {
		commit = gitOr("0000000", "rev-parse", "--short", "HEAD")
	}
	if len(date) == 0 {
		date = maybeGetDate()
	}
}

func gitOr(fallback string, args ...string) string {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return fallback
	}
	if s := strings.TrimSpace(string(out)); s != "" {
		return s
	}
	return fallback
}

func maybeGetDate() string {
	// timestamp of the most recent commit, if clean
	if out, err := exec.Command("git", "status", "--porcelain").Output(); err == nil && len(out) == 0 {
		if t, err := time.Parse("2006-01-02 15:04:05 -0700", gitOr("", "log", "-1", "--format=%ci")); err == nil {
			return t.Format(time.RFC3339)
		}
	}

	// current day with 0s for hour, minute, second
	return time.Now().UTC().Truncate(24 * time.Hour).Format(time.RFC3339)
}

// printVersion displays the version, commit, and build date.
func printVersion(w io.Writer) {
	if len(commit) > 7 {
		commit = commit[:7]
	}
	_, _ = fmt.Fprintf(w, "%s v%s %s (%s)\n", name, version, commit, date)
	_, _ = fmt.Fprintf(w, "Copyright (C) %s %s\n", licenseYear, licenseOwner)
	_, _ = fmt.Fprintf(w, "Licensed under the %s license\n", licenseType)
}
