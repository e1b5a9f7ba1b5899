package main

import (
	"fmt"
	"net/netip"
	"os"
	"slices"
	"strconv"

	"github.com/therootcompany/bankholiday"
)

func peekOption(args []string, flags []string, defaultOpt string) string {
	n := len(args)
	for i := range n {
		if slices.Contains(flags, args[i]) {
			if i+1 < n {
				return args[i+1]
			}
			break
		}
	}

	return defaultOpt
}

func parseEnvs(opts *MainConfig) error {
	if envPort := os.Getenv("PORT"); envPort != "" {
		if p, err := strconv.Atoi(envPort); err == nil && p > 0 {
			opts.defaultPort = p
		} else {
			return fmt.Errorf("invalid PORT environment variable value: %q", envPort)
		}
	}
	if envAddress := os.Getenv("ADDRESS"); envAddress != "" {
		if _, err := netip.ParseAddr(envAddress); err != nil {
			return fmt.Errorf("invalid ADDRESS environment variable value: %q", envAddress)
		}
		opts.defaultAddress = envAddress
	}
	if envRate := os.Getenv("RATE_LIMIT_PER_MINUTE"); envRate != "" {
		if n, err := strconv.Atoi(envRate); err == nil && n >= 0 {
			opts.ratePerMinute = n
		} else {
			return fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE environment variable value: %q", envRate)
		}
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		opts.logLevel = envLevel
	}
	if envJurisdiction := os.Getenv("BANKHOLIDAY_JURISDICTION"); envJurisdiction != "" {
		if _, err := bankholiday.ParseJurisdiction(envJurisdiction); err != nil {
			return fmt.Errorf("invalid BANKHOLIDAY_JURISDICTION environment variable value: %q", envJurisdiction)
		}
		opts.jurisdiction = envJurisdiction
	}

	return nil
}
