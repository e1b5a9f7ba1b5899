package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/therootcompany/bankholiday"
)

// FileConfig is the optional YAML config file, e.g.
//
//	address: 0.0.0.0
//	port: 3080
//	jurisdiction: uk
//	log_level: info
//	rate_limit:
//	  per_minute: 120
//	  burst: 20
type FileConfig struct {
	Address      string `yaml:"address"`
	Port         int    `yaml:"port"`
	Jurisdiction string `yaml:"jurisdiction"`
	LogLevel     string `yaml:"log_level"`
	RateLimit    struct {
		PerMinute *int `yaml:"per_minute"`
		Burst     int  `yaml:"burst"`
	} `yaml:"rate_limit"`
}

// loadConfigFile applies the file on top of cfg. Only fields that are set in
// the file are applied.
func loadConfigFile(path string, cfg *MainConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	var fc FileConfig
	if err := yaml.UnmarshalStrict(data, &fc); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}

	if fc.Address != "" {
		cfg.defaultAddress = fc.Address
	}
	if fc.Port < 0 || fc.Port > 65535 {
		return errors.Errorf("config file %s: port %d is out of range", path, fc.Port)
	}
	if fc.Port != 0 {
		cfg.defaultPort = fc.Port
	}
	if fc.Jurisdiction != "" {
		if _, err := bankholiday.ParseJurisdiction(fc.Jurisdiction); err != nil {
			return errors.Wrapf(err, "config file %s", path)
		}
		cfg.jurisdiction = fc.Jurisdiction
	}
	if fc.LogLevel != "" {
		cfg.logLevel = fc.LogLevel
	}
	if fc.RateLimit.PerMinute != nil {
		if *fc.RateLimit.PerMinute < 0 {
			return errors.Errorf("config file %s: rate_limit.per_minute must not be negative", path)
		}
		cfg.ratePerMinute = *fc.RateLimit.PerMinute
	}
	if fc.RateLimit.Burst != 0 {
		cfg.rateBurst = fc.RateLimit.Burst
	}

	if err := cfg.validateRateLimit(); err != nil {
		return errors.Wrapf(err, "config file %s", path)
	}
	return nil
}

func (cfg *MainConfig) validateRateLimit() error {
	if cfg.ratePerMinute < 0 {
		return errors.Errorf("rate limit must not be negative, not %d", cfg.ratePerMinute)
	}
	if cfg.ratePerMinute > 0 && cfg.rateBurst < 1 {
		return errors.Errorf("rate burst must be at least 1 when rate limiting is on, not %d", cfg.rateBurst)
	}
	return nil
}
