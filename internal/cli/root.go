// Package cli builds the lvqubo command tree.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvqubo/internal/ui"
	"github.com/katalvlaran/lvqubo/sampler"
)

const (
	envPrefix  = "LVQUBO"
	configName = "lvqubo"

	samplerExact  = "exact"
	samplerAnneal = "anneal"
	samplerHybrid = "hybrid"
)

// ErrUnknownSampler indicates a --sampler value outside exact|anneal|hybrid.
var ErrUnknownSampler = errors.New("unknown sampler")

// settings holds the persistent flags shared by every subcommand.
type settings struct {
	sampler       string
	numReads      int
	seed          int64
	label         string
	chainStrength float64
	sweeps        int
	loglevel      string
	configFile    string
	envFile       string
}

// NewRoot returns a fresh command tree; every call has its own flags and
// configuration.
func NewRoot() *cobra.Command {
	s := &settings{}
	v := viper.New()

	root := &cobra.Command{
		Use:           "lvqubo",
		Short:         "Formulate combinatorial problems as QUBO models and sample them",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.sampler, "sampler", samplerAnneal, "Sampler backend: exact, anneal or hybrid")
	pf.IntVar(&s.numReads, "num-reads", sampler.DefaultNumReads, "Number of reads")
	pf.Int64Var(&s.seed, "seed", 0, "Random seed (0 selects the default seed)")
	pf.StringVar(&s.label, "label", "", "Free-text label recorded with the run")
	pf.Float64Var(&s.chainStrength, "chain-strength", 0, "Chain strength, recorded and ignored by software samplers")
	pf.IntVar(&s.sweeps, "sweeps", sampler.DefaultSweeps, "Annealing sweeps per read")
	pf.StringVar(&s.loglevel, "loglevel", "info", "Console log level")
	pf.StringVar(&s.configFile, "config", "", "Configuration file (default ./lvqubo.yaml when present)")
	pf.StringVar(&s.envFile, "env-file", ".env", "Dotenv file loaded before reading LVQUBO_* variables")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfiguration(v, cmd, s); err != nil {
			return err
		}
		ll, err := ui.LogLevelString(s.loglevel)
		if err != nil {
			ui.Error().Msgf("Invalid log level: %v - use one of: %v", s.loglevel, ui.LogLevelStrings())
		} else {
			ui.SetLoglevel(ll)
		}
		return nil
	}

	root.AddCommand(newMaxcutCmd(s), newPartitionCmd(s), newKnapsackCmd(s), newToyCmd(s))
	return root
}

// loadConfiguration reads the dotenv file, LVQUBO_* variables and the
// config file, then applies them to every flag the user did not set.
func loadConfiguration(v *viper.Viper, cmd *cobra.Command, s *settings) error {
	if s.envFile != "" {
		if err := godotenv.Load(s.envFile); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "loading %s", s.envFile)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if s.configFile != "" {
		v.SetConfigFile(s.configFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err == nil {
		ui.Debug().Msgf("Using configuration file: %v", v.ConfigFileUsed())
	} else {
		var notFound viper.ConfigFileNotFoundError
		if s.configFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "reading configuration")
		}
	}

	return bindFlags(v, cmd)
}

// bindFlags applies configured values to flags that were not set on the
// command line.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var err error
	apply := func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if serr := f.Value.Set(v.GetString(f.Name)); serr != nil {
			err = fmt.Errorf("%s=%q: %w", f.Name, v.GetString(f.Name), serr)
		}
	}
	cmd.Flags().VisitAll(apply)
	return err
}

// backend resolves --sampler.
func (s *settings) backend() (sampler.Sampler, error) {
	switch s.sampler {
	case samplerExact:
		return sampler.Exact{}, nil
	case samplerAnneal:
		return sampler.Annealer{}, nil
	case samplerHybrid:
		return sampler.Hybrid{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownSampler, "--sampler=%q", s.sampler)
	}
}

// params assembles sampler.Params from the flags.
func (s *settings) params() sampler.Params {
	return sampler.Params{
		NumReads:      s.numReads,
		Label:         s.label,
		Seed:          s.seed,
		ChainStrength: s.chainStrength,
		Sweeps:        s.sweeps,
	}
}

// Execute runs the command tree with os.Args and reports the outcome.
func Execute() int {
	if err := NewRoot().Execute(); err != nil {
		ui.Error().Msgf("%v", err)
		return 1
	}
	return 0
}
