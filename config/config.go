package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// EnvLocal is the env.env value of a developer machine.
const EnvLocal = "local"

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultSessionTokenTTL        = 2 * time.Hour
	defaultStepUpTokenTTL         = 10 * time.Minute
	defaultVerificationCodeTTL    = 5 * time.Minute
	defaultVerificationCodeLength = 6
	defaultAttemptsPerMinute      = 10
	defaultAttemptBurst           = 5
	defaultAttemptIdleTTL         = 15 * time.Minute
	defaultTOTPIssuer             = "Container View"
	defaultQRCodeSize             = 256
	defaultMetricsPath            = "/metrics"
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey SecretKey `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Bootstrap creates the first administrator on an empty user table
	Bootstrap *BootstrapConfig `json:"bootstrap" yaml:"bootstrap"`

	// Mail configuration for verification code delivery
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// TOTP configuration for authenticator app enrollment
	TOTP *TOTPConfig `json:"totp" yaml:"totp"`

	// PubSub configuration for auth event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// SecretKey holds the HMAC secrets of the two token classes.
type SecretKey struct {
	Session string `json:"session" yaml:"session"`
	StepUp  string `json:"stepUp" yaml:"stepUp"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig controls schema management on startup
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost             int                `json:"bcryptCost" yaml:"bcryptCost"`
	SessionTokenTTL        time.Duration      `json:"sessionTokenTTL" yaml:"sessionTokenTTL"`
	StepUpTokenTTL         time.Duration      `json:"stepUpTokenTTL" yaml:"stepUpTokenTTL"`
	VerificationCodeTTL    time.Duration      `json:"verificationCodeTTL" yaml:"verificationCodeTTL"`
	VerificationCodeLength int                `json:"verificationCodeLength" yaml:"verificationCodeLength"`
	CodeSweepInterval      time.Duration      `json:"codeSweepInterval" yaml:"codeSweepInterval"`
	AttemptLimit           AttemptLimitConfig `json:"attemptLimit" yaml:"attemptLimit"`
}

// AttemptLimitConfig bounds login and verification attempts per identity
type AttemptLimitConfig struct {
	PerMinute float64       `json:"perMinute" yaml:"perMinute"`
	Burst     int           `json:"burst" yaml:"burst"`
	IdleTTL   time.Duration `json:"idleTTL" yaml:"idleTTL"`
}

// BootstrapConfig defines the default administrator account
type BootstrapConfig struct {
	Admin struct {
		Enabled   bool   `json:"enabled" yaml:"enabled"`
		TaxID     string `json:"taxId" yaml:"taxId"`
		FirstName string `json:"firstName" yaml:"firstName"`
		LastName  string `json:"lastName" yaml:"lastName"`
		Email     string `json:"email" yaml:"email"`
		Password  string `json:"password" yaml:"password"`
	} `json:"admin" yaml:"admin"`
}

// MailConfig defines the verification code delivery channel
type MailConfig struct {
	// Provider type: "smtp" for a real mail server or "log" for development
	Provider string `json:"provider" yaml:"provider"`

	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`

	// Security mode: "starttls", "ssl" or "none"
	Security string `json:"security" yaml:"security"`

	Subject string `json:"subject" yaml:"subject"`
}

// TOTPConfig defines authenticator app enrollment settings
type TOTPConfig struct {
	Issuer               string `json:"issuer" yaml:"issuer"`
	QRCodeSize           int    `json:"qrCodeSize" yaml:"qrCodeSize"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: SECRETKEY_STEPUP -> secretKey.stepUp
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section that was left out of the file.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.SessionTokenTTL <= 0 {
		c.Auth.SessionTokenTTL = defaultSessionTokenTTL
	}
	if c.Auth.StepUpTokenTTL <= 0 {
		c.Auth.StepUpTokenTTL = defaultStepUpTokenTTL
	}
	if c.Auth.VerificationCodeTTL <= 0 {
		c.Auth.VerificationCodeTTL = defaultVerificationCodeTTL
	}
	if c.Auth.VerificationCodeLength == 0 {
		c.Auth.VerificationCodeLength = defaultVerificationCodeLength
	}
	if c.Auth.AttemptLimit.PerMinute <= 0 {
		c.Auth.AttemptLimit.PerMinute = defaultAttemptsPerMinute
	}
	if c.Auth.AttemptLimit.Burst <= 0 {
		c.Auth.AttemptLimit.Burst = defaultAttemptBurst
	}
	if c.Auth.AttemptLimit.IdleTTL <= 0 {
		c.Auth.AttemptLimit.IdleTTL = defaultAttemptIdleTTL
	}

	if c.Bootstrap == nil {
		c.Bootstrap = &BootstrapConfig{}
	}

	if c.Mail == nil {
		c.Mail = &MailConfig{}
	}
	if c.Mail.Provider == "" {
		c.Mail.Provider = "log"
	}

	if c.TOTP == nil {
		c.TOTP = &TOTPConfig{}
	}
	if c.TOTP.Issuer == "" {
		c.TOTP.Issuer = defaultTOTPIssuer
	}
	if c.TOTP.QRCodeSize <= 0 {
		c.TOTP.QRCodeSize = defaultQRCodeSize
	}
	if c.TOTP.ErrorCorrectionLevel == "" {
		c.TOTP.ErrorCorrectionLevel = "M"
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
}

// Validate rejects configurations the auth core cannot run with.
func (c *Config) Validate() error {
	if c.SecretKey.Session == "" || c.SecretKey.StepUp == "" {
		return errors.New("secretKey.session and secretKey.stepUp must be provided")
	}
	if c.SecretKey.Session == c.SecretKey.StepUp {
		return errors.New("secretKey.session and secretKey.stepUp must differ")
	}
	if c.Auth != nil && c.Auth.VerificationCodeLength != defaultVerificationCodeLength {
		return errors.Errorf("auth.verificationCodeLength must be %d, got %d",
			defaultVerificationCodeLength, c.Auth.VerificationCodeLength)
	}
	if c.Bootstrap != nil && c.Bootstrap.Admin.Enabled {
		if c.Bootstrap.Admin.TaxID == "" || c.Bootstrap.Admin.Password == "" {
			return errors.New("bootstrap.admin requires taxId and password when enabled")
		}
	}

	return nil
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
