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

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// StaffAuth guards the staff routes. Token issuance is handled by the
	// company SSO, not by this service; only the verification key lives here.
	StaffAuth *StaffAuthConfig `json:"staffAuth" yaml:"staffAuth"`

	// Shop holds site-wide shop behavior (price visibility, public URLs).
	Shop *ShopConfig `json:"shop" yaml:"shop"`

	// PDF holds branding for generated order documents.
	PDF *PDFConfig `json:"pdf" yaml:"pdf"`

	// Email holds transactional email settings (provider + templates).
	Email *EmailConfig `json:"email" yaml:"email"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StaffAuthConfig defines verification settings for staff bearer tokens.
type StaffAuthConfig struct {
	Secret string `json:"secret" yaml:"secret"`
}

// ShopConfig defines site-wide shop behavior.
type ShopConfig struct {
	// ShowPrices controls whether prices appear anywhere in the shop,
	// including generated documents. When false customers must request a quote.
	ShowPrices bool `json:"showPrices" yaml:"showPrices"`

	// PublicBaseURL is the site root used to build confirmation links.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// PDFConfig defines branding for generated order documents.
type PDFConfig struct {
	// LogoBucketURL is a gocloud bucket URL (file://, s3://, gs://, mem://).
	LogoBucketURL string `json:"logoBucketUrl" yaml:"logoBucketUrl"`
	// LogoKey is the object key of the logo inside the bucket.
	LogoKey string `json:"logoKey" yaml:"logoKey"`

	CompanyName    string `json:"companyName" yaml:"companyName"`
	HeaderEmail    string `json:"headerEmail" yaml:"headerEmail"`
	HeaderPhone    string `json:"headerPhone" yaml:"headerPhone"`
	HeaderLocation string `json:"headerLocation" yaml:"headerLocation"`
	DocumentTitle  string `json:"documentTitle" yaml:"documentTitle"`

	// AccentColor is the header accent colour (hex), e.g. #2E7D32.
	AccentColor     string `json:"accentColor" yaml:"accentColor"`
	FooterText      string `json:"footerText" yaml:"footerText"`
	ShowPageNumbers bool   `json:"showPageNumbers" yaml:"showPageNumbers"`
}

// EmailConfig defines transactional email settings.
type EmailConfig struct {
	// Provider endpoint and credentials (Brevo-compatible REST API).
	APIURL  string        `json:"apiUrl" yaml:"apiUrl"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	FromEmail string `json:"fromEmail" yaml:"fromEmail"`
	FromName  string `json:"fromName" yaml:"fromName"`
	ReplyTo   string `json:"replyTo" yaml:"replyTo"`

	// InternalRecipients is one address per line, or comma-separated.
	InternalRecipients string `json:"internalRecipients" yaml:"internalRecipients"`

	SendToCustomer bool `json:"sendToCustomer" yaml:"sendToCustomer"`
	SendToInternal bool `json:"sendToInternal" yaml:"sendToInternal"`

	AttachOrderPDF bool `json:"attachOrderPdf" yaml:"attachOrderPdf"`

	// Templates support {order_ref}, {order_id} and {order_number}
	// placeholders. Built-in defaults apply when left empty.
	PDFFilenameTemplate     string `json:"pdfFilenameTemplate" yaml:"pdfFilenameTemplate"`
	CustomerSubjectTemplate string `json:"customerSubjectTemplate" yaml:"customerSubjectTemplate"`
	InternalSubjectTemplate string `json:"internalSubjectTemplate" yaml:"internalSubjectTemplate"`
	FooterNote              string `json:"footerNote" yaml:"footerNote"`
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
			// Example: EMAIL_APIKEY -> email.apiKey (not email.apikey)
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

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
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
