package cli

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "polycalc",
	Short: "Arithmetic on dense univariate polynomials.",
	Long: `Arithmetic on dense univariate polynomials over a choice of coefficient rings.
Polynomials are written as comma separated coefficients in ascending degree,
so "3,-1,2" is 2*x^2-x+3. Put -- before arguments that start with a minus sign.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "debug") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("ring", defaultRing, "coefficient ring: "+strings.Join(Rings, ", "))
	rootCmd.PersistentFlags().Uint64("modulus", defaultModulus, "prime modulus for the mod ring")
	rootCmd.PersistentFlags().String("config", "", "TOML or YAML config file (default $"+configEnv+")")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	for _, c := range []struct{ name, usage, short string }{
		{"format", "P", "Print P in human readable form."},
		{"add", "P Q", "Print P+Q."},
		{"sub", "P Q", "Print P-Q."},
		{"mul", "P Q", "Print P*Q."},
		{"div", "P Q", "Print the quotient of P by Q."},
		{"rem", "P Q", "Print the remainder of P by Q."},
		{"gcd", "P Q", "Print the monic greatest common divisor of P and Q."},
		{"compose", "P Q", "Print P(Q(x))."},
		{"eval", "P X", "Evaluate P at X."},
		{"degree", "P", "Print the degree of P (-1 for the zero polynomial)."},
		{"deriv", "P", "Print the formal derivative of P."},
		{"interpolate", "XS YS", "Print the lowest degree polynomial through the points (XS[i], YS[i])."},
	} {
		rootCmd.AddCommand(newOpCmd(c.name, c.usage, c.short))
	}
}

func newOpCmd(name, usage, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " " + usage,
		Short: short,
		Args:  cobra.ExactArgs(arity[name]),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				log.Error(err)
				os.Exit(2)
			}

			if err := Run(cfg, name, args, cmd.OutOrStdout()); err != nil {
				log.Error(fmt.Errorf("%s: %w", name, err))
				os.Exit(1)
			}
		},
	}
}

// resolveConfig layers explicitly set flags over the config file, which in
// turn is layered over the defaults.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()

	path := getString(cmd, "config")
	if path == "" {
		path = os.Getenv(configEnv)
	}

	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return Config{}, err
		}

		log.Debugf("loaded config from %s", path)
	}

	flags := cmd.Flags()

	if flags.Changed("ring") {
		cfg.Ring = getString(cmd, "ring")
	}

	if flags.Changed("modulus") {
		m, err := flags.GetUint64("modulus")
		if err != nil {
			return Config{}, err
		}

		cfg.Modulus = m
	}

	return cfg, nil
}

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
