package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Server holds API server configuration (env + Viper).
type Server struct {
	Env            string
	Port           string
	ScenarioDir    string   // directory of preset scenario YAMLs
	AllowedOrigins []string // CORS; empty means allow all (local tooling)
}

// LoadServer loads server config from env and an optional .env file.
func LoadServer() (*Server, error) {
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

	dir := viper.GetString("SCENARIO_DIR")
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, "examples", "scenarios")
		} else {
			dir = "./examples/scenarios"
		}
	}

	var origins []string
	if raw := viper.GetString("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Server{
		Env:            env,
		Port:           port,
		ScenarioDir:    dir,
		AllowedOrigins: origins,
	}, nil
}
