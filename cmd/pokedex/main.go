// Command pokedex browses the PokeAPI catalog from the terminal: filtered
// listings, detail profiles, name search, stat comparison and random picks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pokedex",
		Short: "Browse the Pokémon catalog",
		Long: `pokedex lists, searches and compares Pokémon using the public PokeAPI.

Configuration is read from a .env file and the environment
(POKEAPI_BASE_URL, POKEDEX_USER_AGENT, POKEDEX_TIMEOUT, POKEDEX_LOG_LEVEL,
POKEDEX_LOG_PRETTY, POKEDEX_REDIS_ADDR); flags override both.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.flags.envFile, "env-file", ".env", "dotenv file to load")
	flags.StringVar(&a.flags.baseURL, "base-url", "", "PokeAPI base URL")
	flags.StringVar(&a.flags.userAgent, "user-agent", "", "User-Agent header")
	flags.DurationVar(&a.flags.timeout, "timeout", 0, "per-request timeout (0 disables)")
	flags.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	flags.StringVar(&a.flags.redisAddr, "redis-addr", "", "Redis address for the optional response cache")
	flags.BoolVar(&a.flags.metrics, "metrics", false, "print Prometheus metrics to stderr after the command")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newSearchCmd(a),
		newCompareCmd(a),
		newRandomCmd(a),
	)
	return root
}
