// Package config holds the external constants spec.md §6 says the
// selection façade must supply: MAX_MONEY, MIN_CHANGE, and the two
// budget knobs the algorithms are parameterised by, TOTAL_TRIES and
// SUBSET_APPROXIMATION_ITERATIONS. All are environment-overridable
// following the same viper-backed pattern the teacher repo's own
// internal/config/config.go uses.
package config

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
)

const (
	// MaxMoneyKey overrides the domain-wide monetary ceiling.
	MaxMoneyKey = "MAX_MONEY"
	// MinChangeKey overrides the smallest change amount the knapsack
	// approximator is willing to create.
	MinChangeKey = "MIN_CHANGE"
	// TotalTriesKey overrides the branch-and-bound try budget.
	TotalTriesKey = "TOTAL_TRIES"
	// SubsetIterationsKey overrides the number of repetitions the
	// subset approximator runs per target.
	SubsetIterationsKey = "SUBSET_APPROXIMATION_ITERATIONS"
	// LogLevelKey overrides the configured log level name.
	LogLevelKey = "LOG_LEVEL"
)

var (
	vip *viper.Viper

	// defaultMaxMoney mirrors btcutil's own ceiling on a single amount:
	// 21 million BTC expressed in satoshi. Grounded in a real upstream
	// constant rather than a magic number re-derived here.
	defaultMaxMoney   = int64(btcutil.MaxSatoshi)
	defaultMinChange  = int64(10000000) // 0.1 BTC, Bitcoin Core's historical default.
	defaultTotalTries = 100000
	defaultIterations = 1000
	defaultLogLevel   = "info"
)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("COINSELECT")
	vip.AutomaticEnv()

	vip.SetDefault(MaxMoneyKey, defaultMaxMoney)
	vip.SetDefault(MinChangeKey, defaultMinChange)
	vip.SetDefault(TotalTriesKey, defaultTotalTries)
	vip.SetDefault(SubsetIterationsKey, defaultIterations)
	vip.SetDefault(LogLevelKey, defaultLogLevel)
}

// MaxMoney is the domain-wide ceiling on any single monetary quantity
// (spec.md §3's MAX_MONEY invariant).
func MaxMoney() int64 { return vip.GetInt64(MaxMoneyKey) }

// MinChange is the smallest change amount the wallet is willing to
// create; it drives the knapsack approximator's second target.
func MinChange() int64 { return vip.GetInt64(MinChangeKey) }

// TotalTries is the branch-and-bound try budget (spec.md §4.2/§5).
func TotalTries() int { return vip.GetInt(TotalTriesKey) }

// SubsetIterations is the number of repetitions the subset approximator
// runs per target before giving up (spec.md §4.3).
func SubsetIterations() int { return vip.GetInt(SubsetIterationsKey) }

// LogLevel is the configured logrus level name. Nothing in this module
// applies it: the selectors always log at Debug level, so their lines
// appear only when the caller sets logrus to Debug.
func LogLevel() string { return vip.GetString(LogLevelKey) }
