package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"portfoliotracker/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const EnvPrefix = "TRACKER"

type Config struct {
	Env        string           `mapstructure:"env"        validate:"oneof=dev test prod"`
	Port       int              `mapstructure:"port"       validate:"required,min=1,max=65535"`
	Db         DbConfig         `mapstructure:"db"`
	Breaker    BreakerConfig    `mapstructure:"breaker"`
	Strategies StrategiesConfig `mapstructure:"strategies"`
}

type DbConfig struct {
	Host      string `mapstructure:"host"      validate:"required"`
	Port      string `mapstructure:"port"      validate:"required"`
	User      string `mapstructure:"user"      validate:"required"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"  validate:"required"`
	EnableSsl bool   `mapstructure:"enablessl"`
}

func (t DbConfig) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

type BreakerConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	MaxRequests  uint32        `mapstructure:"maxrequests"`
	Interval     time.Duration `mapstructure:"interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
	FailureRatio float64       `mapstructure:"failureratio" validate:"gte=0,lte=1"`
	MinRequests  uint32        `mapstructure:"minrequests"`
}

// StrategyConfig amounts are strings so they reach decimal without a
// float round trip.
type StrategyConfig struct {
	CashSymbol        string `mapstructure:"cashsymbol"        validate:"required"`
	InitialInvestment string `mapstructure:"initialinvestment" validate:"required,numeric"`
	MinValuation      string `mapstructure:"minvaluation"      validate:"required,numeric"`
	NeutralPrice      string `mapstructure:"neutralprice"      validate:"required,numeric"`
}

type StrategiesConfig struct {
	Intraday StrategyConfig `mapstructure:"intraday"`
	Weekly   StrategyConfig `mapstructure:"weekly"`
	Hold     StrategyConfig `mapstructure:"hold"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "prod")
	v.SetDefault("port", 3009)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5440")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.database", "postgres")
	v.SetDefault("db.enablessl", false)

	v.SetDefault("breaker.enabled", true)
	v.SetDefault("breaker.maxrequests", 1)
	v.SetDefault("breaker.interval", time.Minute)
	v.SetDefault("breaker.timeout", 30*time.Second)
	v.SetDefault("breaker.failureratio", 0.5)
	v.SetDefault("breaker.minrequests", 5)

	for _, strategy := range domain.AllStrategies() {
		settings := domain.DefaultStrategySettings(strategy)
		prefix := "strategies." + strategy.String() + "."
		v.SetDefault(prefix+"cashsymbol", settings.CashSymbol)
		v.SetDefault(prefix+"initialinvestment", settings.InitialInvestment.String())
		v.SetDefault(prefix+"minvaluation", settings.MinValuation.String())
		v.SetDefault(prefix+"neutralprice", settings.NeutralPrice.String())
	}
}

// Load reads path, or config.yaml from the working directory when path is
// empty. A missing default file is fine; defaults and TRACKER_* variables
// still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	conf := Config{}
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(conf); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &conf, nil
}

func (c StrategiesConfig) byStrategy() map[domain.Strategy]StrategyConfig {
	return map[domain.Strategy]StrategyConfig{
		domain.StrategyIntraday: c.Intraday,
		domain.StrategyWeekly:   c.Weekly,
		domain.StrategyHold:     c.Hold,
	}
}

func (c Config) StrategySettings() (map[domain.Strategy]domain.StrategySettings, error) {
	out := map[domain.Strategy]domain.StrategySettings{}
	for strategy, sc := range c.Strategies.byStrategy() {
		settings, err := sc.toSettings(strategy)
		if err != nil {
			return nil, fmt.Errorf("invalid %s strategy config: %w", strategy, err)
		}
		out[strategy] = settings
	}
	return out, nil
}

func (sc StrategyConfig) toSettings(strategy domain.Strategy) (domain.StrategySettings, error) {
	initial, err := decimal.NewFromString(sc.InitialInvestment)
	if err != nil {
		return domain.StrategySettings{}, fmt.Errorf("initialInvestment: %w", err)
	}
	minValuation, err := decimal.NewFromString(sc.MinValuation)
	if err != nil {
		return domain.StrategySettings{}, fmt.Errorf("minValuation: %w", err)
	}
	neutral, err := decimal.NewFromString(sc.NeutralPrice)
	if err != nil {
		return domain.StrategySettings{}, fmt.Errorf("neutralPrice: %w", err)
	}
	return domain.StrategySettings{
		Strategy:          strategy,
		CashSymbol:        sc.CashSymbol,
		InitialInvestment: initial,
		MinValuation:      minValuation,
		NeutralPrice:      neutral,
	}, nil
}
