package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	UploadDir           string // where uploaded CSVs are saved before processing
	ReportsDir          string // where generated workbooks are written
	TemplatePath        string // prepared report template (.xlsx); fatal if missing at generation time
	LogoPath            string // optional logo overlay; missing file is tolerated
	MaxUploadMB         int    // per-request multipart body limit
	FrontendURLEndsWith string // CORS origin suffix; empty allows any origin
	HealthAdminKey      string // key for /reset; empty disables the endpoint
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	maxUpload := 16
	if raw := viper.GetString("MAX_UPLOAD_MB"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxUpload = n
		}
	}

	return &Config{
		Env:                 env,
		Port:                port,
		UploadDir:           withDefault(viper.GetString("UPLOAD_DIR"), "uploads"),
		ReportsDir:          withDefault(viper.GetString("REPORTS_DIR"), "reports"),
		TemplatePath:        withDefault(viper.GetString("TEMPLATE_PATH"), "template2.xlsx"),
		LogoPath:            withDefault(viper.GetString("LOGO_PATH"), "logo.png"),
		MaxUploadMB:         maxUpload,
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		HealthAdminKey:      viper.GetString("HEALTH_ADMIN_KEY"),
	}, nil
}

func withDefault(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
