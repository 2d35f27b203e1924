package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/internal/service/pricing"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Catalog      CatalogConfig      `toml:"catalog"`
	Cache        CacheConfig        `toml:"cache"`
	Weather      WeatherConfig      `toml:"weather"`
	Pricing      PricingConfig      `toml:"pricing"`
	Availability AvailabilityConfig `toml:"availability"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"gt=0,lte=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"gt=0"`     // секунды
	WriteTimeout    int `toml:"write_timeout" validate:"gt=0"`    // секунды
	IdleTimeout     int `toml:"idle_timeout" validate:"gt=0"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"gt=0"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"` // пусто - stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
}

type CatalogConfig struct {
	File string `toml:"file"` // YAML реестр тарифов, промокодов и праздников; пусто - встроенный
}

type CacheConfig struct {
	TTLMinutes int `toml:"ttl_minutes" validate:"gte=0"`
}

type WeatherConfig struct {
	Seed string `toml:"seed"`
}

// PricingConfig тарифные константы, см. pricing.Config
type PricingConfig struct {
	VATRate                    float64            `toml:"vat_rate" validate:"gte=0,lt=1"`
	PricePerCubicMetre         float64            `toml:"price_per_cubic_metre" validate:"gte=0"`
	VolumeDiscountThreshold    float64            `toml:"volume_discount_threshold" validate:"gte=0"`
	VolumeDiscountRate         float64            `toml:"volume_discount_rate" validate:"gte=0,lt=1"`
	FreeDistanceKm             float64            `toml:"free_distance_km" validate:"gte=0"`
	LongDistanceThresholdKm    float64            `toml:"long_distance_threshold_km" validate:"gte=0"`
	LongDistanceSurchargePerKm float64            `toml:"long_distance_surcharge_per_km" validate:"gte=0"`
	MinimumHours               float64            `toml:"minimum_hours" validate:"gte=0"`
	PianoSurcharge             float64            `toml:"piano_surcharge" validate:"gte=0"`
	FragileSurcharge           float64            `toml:"fragile_surcharge" validate:"gte=0"`
	ValuableSurcharge          float64            `toml:"valuable_surcharge" validate:"gte=0"`
	HeavyItemSurcharge         float64            `toml:"heavy_item_surcharge" validate:"gte=0"`
	HeavyItemThresholdKg       float64            `toml:"heavy_item_threshold_kg" validate:"gte=0"`
	NoLiftSurchargePerFloor    float64            `toml:"no_lift_surcharge_per_floor" validate:"gte=0"`
	NarrowAccessSurcharge      float64            `toml:"narrow_access_surcharge" validate:"gte=0"`
	LongCarrySurcharge         float64            `toml:"long_carry_surcharge" validate:"gte=0"`
	MaxDiscountAmount          float64            `toml:"max_discount_amount" validate:"gte=0"`
	MaxDiscountPercent         float64            `toml:"max_discount_percent" validate:"gte=0,lte=1"`
	WeekendDemandMultiplier    float64            `toml:"weekend_demand_multiplier" validate:"gt=0"`
	MaxOffPeakSuggestions      int                `toml:"max_off_peak_suggestions" validate:"gte=0"`
	SeasonalMultipliers        map[string]float64 `toml:"seasonal" validate:"dive,gt=0"` // ключ - месяц, "june"
	DemandMultipliers          map[string]float64 `toml:"demand" validate:"dive,keys,oneof=low medium high,endkeys,gt=0"`
}

// AvailabilityConfig параметры модели доступности, см. availability.Config
type AvailabilityConfig struct {
	WeekdayOpen           string             `toml:"weekday_open" validate:"datetime=15:04"`
	WeekdayClose          string             `toml:"weekday_close" validate:"datetime=15:04"`
	WeekendOpen           string             `toml:"weekend_open" validate:"datetime=15:04"`
	WeekendClose          string             `toml:"weekend_close" validate:"datetime=15:04"`
	SlotDurationMinutes   int                `toml:"slot_duration_minutes" validate:"gt=0"`
	SlotBufferMinutes     int                `toml:"slot_buffer_minutes" validate:"gte=0"`
	MinAdvanceNoticeHours int                `toml:"min_advance_notice_hours" validate:"gte=0"`
	MaxAdvanceBookingDays int                `toml:"max_advance_booking_days" validate:"gte=0"`
	AlternativeSearchDays int                `toml:"alternative_search_days" validate:"gte=0"`
	AlternativeDatesCount int                `toml:"alternative_dates_count" validate:"gte=0"`
	PopularTimes          []string           `toml:"popular_times" validate:"dive,datetime=15:04"`
	WeekendFactor         float64            `toml:"weekend_factor" validate:"gt=0"`
	PeakFactor            float64            `toml:"peak_factor" validate:"gt=0"`
	PopularFactor         float64            `toml:"popular_factor" validate:"gt=0"`
	EarlyFactor           float64            `toml:"early_factor" validate:"gt=0"`
	LateFactor            float64            `toml:"late_factor" validate:"gt=0"`
	EveningFactor         float64            `toml:"evening_factor" validate:"gt=0"`
	WeatherFactors        map[string]float64 `toml:"weather" validate:"dive,keys,oneof=clear cloudy rain heavy_rain snow,endkeys,gt=0"`
}

// Load читает .env (если есть), затем TOML файл поверх значений по умолчанию,
// применяет переопределения из окружения и валидирует результат
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadConfig, err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию по тегам и согласованность движков
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	for name := range c.Pricing.SeasonalMultipliers {
		if _, ok := parseMonth(name); !ok {
			return fmt.Errorf("%w: unknown month %q in [pricing.seasonal]", ErrInvalidConfig, name)
		}
	}

	if err := c.PricingEngineConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := c.AvailabilityModelConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// applyEnv переопределяет значения из переменных окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT: %v", ErrInvalidConfig, err)
		}
		c.Server.HTTPPort = port
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = strings.ToLower(v)
	}

	if v, ok := os.LookupEnv("CATALOG_FILE"); ok {
		c.Catalog.File = v
	}

	return nil
}

// QuoteCacheTTL время жизни расчета в кэше
func (c *Config) QuoteCacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

// PricingEngineConfig конфигурация движка расчета
func (c *Config) PricingEngineConfig() pricing.Config {
	p := c.Pricing

	seasonal := make(map[time.Month]float64, len(p.SeasonalMultipliers))
	for name, f := range p.SeasonalMultipliers {
		if month, ok := parseMonth(name); ok {
			seasonal[month] = f
		}
	}

	demand := make(map[domain.DemandLevel]float64, len(p.DemandMultipliers))
	for level, f := range p.DemandMultipliers {
		demand[domain.DemandLevel(level)] = f
	}

	return pricing.Config{
		VATRate:                    p.VATRate,
		PricePerCubicMetre:         p.PricePerCubicMetre,
		VolumeDiscountThreshold:    p.VolumeDiscountThreshold,
		VolumeDiscountRate:         p.VolumeDiscountRate,
		FreeDistanceKm:             p.FreeDistanceKm,
		LongDistanceThresholdKm:    p.LongDistanceThresholdKm,
		LongDistanceSurchargePerKm: p.LongDistanceSurchargePerKm,
		MinimumHours:               p.MinimumHours,
		PianoSurcharge:             p.PianoSurcharge,
		FragileSurcharge:           p.FragileSurcharge,
		ValuableSurcharge:          p.ValuableSurcharge,
		HeavyItemSurcharge:         p.HeavyItemSurcharge,
		HeavyItemThresholdKg:       p.HeavyItemThresholdKg,
		NoLiftSurchargePerFloor:    p.NoLiftSurchargePerFloor,
		NarrowAccessSurcharge:      p.NarrowAccessSurcharge,
		LongCarrySurcharge:         p.LongCarrySurcharge,
		MaxDiscountAmount:          p.MaxDiscountAmount,
		MaxDiscountPercent:         p.MaxDiscountPercent,
		SeasonalMultipliers:        seasonal,
		WeekendDemandMultiplier:    p.WeekendDemandMultiplier,
		DemandMultipliers:          demand,
		MaxOffPeakSuggestions:      p.MaxOffPeakSuggestions,
	}
}

// AvailabilityModelConfig конфигурация модели доступности.
// Границы типов слотов и часы пика не настраиваются и берутся из availability.DefaultConfig.
func (c *Config) AvailabilityModelConfig() availability.Config {
	a := c.Availability
	cfg := availability.DefaultConfig()

	cfg.WeekdayOpen = types.TimeString(a.WeekdayOpen)
	cfg.WeekdayClose = types.TimeString(a.WeekdayClose)
	cfg.WeekendOpen = types.TimeString(a.WeekendOpen)
	cfg.WeekendClose = types.TimeString(a.WeekendClose)

	cfg.SlotDurationMinutes = a.SlotDurationMinutes
	cfg.SlotBufferMinutes = a.SlotBufferMinutes
	cfg.MinAdvanceNoticeHours = a.MinAdvanceNoticeHours
	cfg.MaxAdvanceBookingDays = a.MaxAdvanceBookingDays
	cfg.AlternativeSearchDays = a.AlternativeSearchDays
	cfg.AlternativeDatesCount = a.AlternativeDatesCount

	cfg.PopularTimes = make([]types.TimeString, 0, len(a.PopularTimes))
	for _, ts := range a.PopularTimes {
		cfg.PopularTimes = append(cfg.PopularTimes, types.TimeString(ts))
	}

	cfg.WeekendFactor = a.WeekendFactor
	cfg.PeakFactor = a.PeakFactor
	cfg.PopularFactor = a.PopularFactor
	cfg.EarlyFactor = a.EarlyFactor
	cfg.LateFactor = a.LateFactor
	cfg.EveningFactor = a.EveningFactor

	cfg.WeatherFactors = make(map[domain.WeatherCondition]float64, len(a.WeatherFactors))
	for condition, f := range a.WeatherFactors {
		cfg.WeatherFactors[domain.WeatherCondition(condition)] = f
	}

	return cfg
}

func parseMonth(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, true
		}
	}
	return 0, false
}
