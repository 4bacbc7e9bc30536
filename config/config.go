package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultDashboardLimit     = 5
	defaultDispatchWorkers    = 8
	defaultSendTimeout        = 10 * time.Second
	defaultRunTimeout         = 2 * time.Minute
	defaultPushTTL            = 24 * 60 * 60
	defaultCacheTTL           = 60 * time.Second
	defaultCacheSizeMB        = 8
	defaultMetricsPath        = "/metrics"
	defaultHTTPPort           = 8080
	defaultWorkerPort         = 8081
	defaultSlowQuery          = 200 * time.Millisecond
	defaultPoolMonitor        = 5 * time.Second
	defaultPoolWaitWarn       = 50 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker configures the Pub/Sub push receiver
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Storage tunes the PostgreSQL client built on top of the postgres section
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Trigger string `json:"trigger" yaml:"trigger"`
	} `json:"secretKey" yaml:"secretKey"`

	// Alerts configures the expiration evaluator; shared by the dashboard and dispatch paths
	Alerts *AlertsConfig `json:"alerts" yaml:"alerts"`

	// Dispatch configures the notification fan-out
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Push selects the push transport
	Push *PushConfig `json:"push" yaml:"push"`

	// WebPush holds the VAPID credentials for the webpush transport
	WebPush *WebPushConfig `json:"webPush" yaml:"webPush"`

	// Firebase configuration for the fcm transport
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for run request publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Registration configures push subscription registration
	Registration *RegistrationConfig `json:"registration" yaml:"registration"`

	// Cache configures the dashboard alert cache
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Metrics configures the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines query logging, pool monitoring and schema management
type StorageConfig struct {
	// Queries slower than this are logged as warnings
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// How often connection pool waits are checked
	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`

	// Pool waits longer than this within one interval are logged as warnings
	PoolWaitWarnThreshold time.Duration `json:"poolWaitWarnThreshold" yaml:"poolWaitWarnThreshold"`

	// Create or update the push_subscriptions table on start. The vehicles table is never migrated.
	MigrateSubscriptions bool `json:"migrateSubscriptions" yaml:"migrateSubscriptions"`
}

// AlertsConfig defines the alerting windows and dashboard bounds
type AlertsConfig struct {
	Thresholds *entity.Thresholds `json:"thresholds" yaml:"thresholds"`

	// Number of alerts shown on the dashboard; the total is always reported separately
	DashboardLimit int `json:"dashboardLimit" yaml:"dashboardLimit"`

	// IANA time zone used to decide what "today" is
	Timezone string `json:"timezone" yaml:"timezone"`
}

// DispatchConfig defines the notification fan-out behaviour
type DispatchConfig struct {
	// Maximum number of concurrent deliveries
	Workers int `json:"workers" yaml:"workers"`

	// Deadline for a single delivery attempt
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`

	// Deadline for a whole run; in-flight deliveries are abandoned past it
	RunTimeout time.Duration `json:"runTimeout" yaml:"runTimeout"`

	// Notification title
	Title string `json:"title" yaml:"title"`
}

// PushConfig defines the push transport
type PushConfig struct {
	// Transport: "webpush" or "fcm"
	Transport string `json:"transport" yaml:"transport"`

	// Seconds the push service keeps an undelivered message
	TTL int `json:"ttl" yaml:"ttl"`

	// Web push urgency hint: very-low, low, normal, high
	Urgency string `json:"urgency" yaml:"urgency"`
}

// WebPushConfig defines the VAPID credentials
type WebPushConfig struct {
	VAPIDPublicKey  string `json:"vapidPublicKey" yaml:"vapidPublicKey"`
	VAPIDPrivateKey string `json:"vapidPrivateKey" yaml:"vapidPrivateKey"`

	// Contact (mailto: or https:) sent in the VAPID JWT
	Subscriber string `json:"subscriber" yaml:"subscriber"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RegistrationConfig defines push subscription registration rules
type RegistrationConfig struct {
	// Accept registrations without a user token; they are owned by entity.SystemOwnerID
	AllowAnonymous bool `json:"allowAnonymous" yaml:"allowAnonymous"`
}

// CacheConfig defines the dashboard cache
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	SizeMB  int           `json:"sizeMB" yaml:"sizeMB"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections and validates the alerting windows.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port <= 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = defaultWorkerPort
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.SlowQueryThreshold <= 0 {
		cfg.Storage.SlowQueryThreshold = defaultSlowQuery
	}
	if cfg.Storage.PoolMonitorInterval <= 0 {
		cfg.Storage.PoolMonitorInterval = defaultPoolMonitor
	}
	if cfg.Storage.PoolWaitWarnThreshold <= 0 {
		cfg.Storage.PoolWaitWarnThreshold = defaultPoolWaitWarn
	}

	if cfg.Alerts == nil {
		cfg.Alerts = &AlertsConfig{}
	}
	if cfg.Alerts.Thresholds == nil {
		defaults := entity.DefaultThresholds()
		cfg.Alerts.Thresholds = &defaults
	}
	if err := cfg.Alerts.Thresholds.Validate(); err != nil {
		return errors.Wrap(err, "invalid alerts.thresholds")
	}
	if cfg.Alerts.DashboardLimit <= 0 {
		cfg.Alerts.DashboardLimit = defaultDashboardLimit
	}
	if cfg.Alerts.Timezone == "" {
		cfg.Alerts.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(cfg.Alerts.Timezone); err != nil {
		return errors.Wrapf(err, "invalid alerts.timezone %q", cfg.Alerts.Timezone)
	}

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	if cfg.Dispatch.Workers <= 0 {
		cfg.Dispatch.Workers = defaultDispatchWorkers
	}
	if cfg.Dispatch.SendTimeout <= 0 {
		cfg.Dispatch.SendTimeout = defaultSendTimeout
	}
	if cfg.Dispatch.RunTimeout <= 0 {
		cfg.Dispatch.RunTimeout = defaultRunTimeout
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.Transport == "" {
		cfg.Push.Transport = constants.PushTransportWebPush
	}
	if cfg.Push.Transport != constants.PushTransportWebPush && cfg.Push.Transport != constants.PushTransportFCM {
		return errors.Errorf("unknown push transport: %s", cfg.Push.Transport)
	}
	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = defaultPushTTL
	}

	if cfg.Registration == nil {
		cfg.Registration = &RegistrationConfig{}
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.SizeMB <= 0 {
		cfg.Cache.SizeMB = defaultCacheSizeMB
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	return nil
}

// Location returns the configured alerts time zone.
func (cfg *Config) Location() *time.Location {
	loc, err := time.LoadLocation(cfg.Alerts.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// Thresholds returns the single threshold configuration shared by every evaluation path.
func (cfg *Config) Thresholds() entity.Thresholds {
	if cfg.Alerts == nil || cfg.Alerts.Thresholds == nil {
		return entity.DefaultThresholds()
	}

	return *cfg.Alerts.Thresholds
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

// NewThresholds provides the thresholds to fx so the dashboard and the dispatch run share one instance.
func NewThresholds(cfg *Config) *entity.Thresholds {
	thresholds := cfg.Thresholds()

	return &thresholds
}
