package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"

	defaultMinScale        = 0.8
	defaultMaxScale        = 4.0
	defaultZoomSpeed       = 0.15
	defaultFitPadding      = 40.0
	defaultRotationOffset  = 90.0
	defaultHitRadius       = 8.0
	defaultContainerWidth  = 1280.0
	defaultContainerHeight = 720.0

	defaultMaxSessions     = 64
	defaultIdleTTL         = 30 * time.Minute
	defaultJanitorInterval = time.Minute

	defaultJournalCapacity = 1000
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Map configuration for the viewport, animation and hit testing
	Map *MapConfig `json:"map" yaml:"map"`

	// Session configuration for live map sessions
	Session *SessionConfig `json:"session" yaml:"session"`

	// Snapshot configuration for seeding sessions from CSV files
	Snapshot *SnapshotConfig `json:"snapshot" yaml:"snapshot"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the map event consumer
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MapConfig defines the interaction constants of the map view
type MapConfig struct {
	MinScale       float64 `json:"minScale" yaml:"minScale"`
	MaxScale       float64 `json:"maxScale" yaml:"maxScale"`
	ZoomSpeed      float64 `json:"zoomSpeed" yaml:"zoomSpeed"`
	FitPadding     float64 `json:"fitPadding" yaml:"fitPadding"`
	RotationOffset float64 `json:"rotationOffset" yaml:"rotationOffset"`

	// Pointer tolerance in screen pixels
	HitRadius float64 `json:"hitRadius" yaml:"hitRadius"`

	// Container size used when a session is created without one
	DefaultContainer struct {
		Width  float64 `json:"width" yaml:"width"`
		Height float64 `json:"height" yaml:"height"`
	} `json:"defaultContainer" yaml:"defaultContainer"`
}

// SessionConfig defines limits of the in-memory session store
type SessionConfig struct {
	MaxSessions     int           `json:"maxSessions" yaml:"maxSessions"`
	IdleTTL         time.Duration `json:"idleTTL" yaml:"idleTTL"`
	JanitorInterval time.Duration `json:"janitorInterval" yaml:"janitorInterval"`
}

// SnapshotConfig defines where seed snapshots are read from
type SnapshotConfig struct {
	// Directory holding metadata.json and the CSV files
	DataDir string `json:"dataDir" yaml:"dataDir"`

	// Verify file checksums listed in metadata.json
	VerifyChecksums bool `json:"verifyChecksums" yaml:"verifyChecksums"`
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

// WorkerConfig defines the map event consumer
type WorkerConfig struct {
	// Number of events kept in the journal; older events are dropped first
	JournalCapacity int `json:"journalCapacity" yaml:"journalCapacity"`

	// Expected audience of Google push tokens; empty means the request URL
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
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
			// Example: SESSION_IDLETTL -> session.idleTTL (not session.idlettl)
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

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills optional sections so that callers never see a nil section.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Map == nil {
		cfg.Map = &MapConfig{}
	}
	if cfg.Map.MinScale <= 0 {
		cfg.Map.MinScale = defaultMinScale
	}
	if cfg.Map.MaxScale <= 0 {
		cfg.Map.MaxScale = defaultMaxScale
	}
	if cfg.Map.ZoomSpeed <= 0 {
		cfg.Map.ZoomSpeed = defaultZoomSpeed
	}
	if cfg.Map.FitPadding <= 0 {
		cfg.Map.FitPadding = defaultFitPadding
	}
	if cfg.Map.RotationOffset == 0 {
		cfg.Map.RotationOffset = defaultRotationOffset
	}
	if cfg.Map.HitRadius <= 0 {
		cfg.Map.HitRadius = defaultHitRadius
	}
	if cfg.Map.DefaultContainer.Width <= 0 || cfg.Map.DefaultContainer.Height <= 0 {
		cfg.Map.DefaultContainer.Width = defaultContainerWidth
		cfg.Map.DefaultContainer.Height = defaultContainerHeight
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.MaxSessions <= 0 {
		cfg.Session.MaxSessions = defaultMaxSessions
	}
	if cfg.Session.IdleTTL <= 0 {
		cfg.Session.IdleTTL = defaultIdleTTL
	}
	if cfg.Session.JanitorInterval <= 0 {
		cfg.Session.JanitorInterval = defaultJanitorInterval
	}

	if cfg.Snapshot == nil {
		cfg.Snapshot = &SnapshotConfig{}
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.JournalCapacity <= 0 {
		cfg.Worker.JournalCapacity = defaultJournalCapacity
	}
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
