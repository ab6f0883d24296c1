package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
)

// optionalInt returns nil when the flag was not given on the command line.
func optionalInt(flags *pflag.FlagSet, name string) (*int, error) {
	flag := flags.Lookup(name)
	if flag == nil || !flag.Changed {
		return nil, nil
	}
	value, err := flags.GetInt(name)
	if err != nil {
		return nil, err
	}
	if value <= 0 {
		return nil, fmt.Errorf("--%s must be a positive number, got %d", name, value)
	}
	return &value, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
