// Package config defines the flag plumbing shared by the wis commands,
// translating Cobra/Viper flag values into a strongly typed struct.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Result orders.
const (
	OrderChronological  = "chronological"
	OrderReconstruction = "reconstruction"
)

// Options holds the CLI configuration of `wis solve`.
type Options struct {
	Output    string
	Order     string
	Presorted bool
	NoColor   bool
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		Output: OutputText,
		Order:  OrderChronological,
	}
}

// AddFlags binds configuration flags to the provided Cobra command.
func (o *Options) AddFlags(cmd *cobra.Command) {
	o.BindFlags(cmd.Flags())
}

// BindFlags attaches the solve flags to fs and returns their names.
func (o *Options) BindFlags(fs *pflag.FlagSet) []string {
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Output format: text, json or yaml")
	fs.StringVar(&o.Order, "order", o.Order, "Result order: chronological or reconstruction (latest end first)")
	fs.BoolVar(&o.Presorted, "presorted", o.Presorted, "Trust input files to be sorted by end bound; unsorted input is rejected instead of sorted")
	fs.BoolVar(&o.NoColor, "no-color", o.NoColor, "Disable colored output")

	return []string{"output", "order", "presorted", "no-color"}
}

// Validate normalizes and checks the option values.
func (o *Options) Validate() error {
	o.Output = strings.ToLower(strings.TrimSpace(o.Output))
	switch o.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid --output %q (expected text, json, or yaml)", o.Output)
	}

	o.Order = strings.ToLower(strings.TrimSpace(o.Order))
	switch o.Order {
	case OrderChronological, OrderReconstruction:
	default:
		return fmt.Errorf("invalid --order %q (expected chronological or reconstruction)", o.Order)
	}

	return nil
}

// Chronological reports whether results should be earliest end first.
func (o *Options) Chronological() bool {
	return o.Order == OrderChronological
}
