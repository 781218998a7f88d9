package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Report Report `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Report struct {
	// DiagnosticsPath vazio desabilita a gravação do arquivo de diagnósticos
	DiagnosticsPath string `mapstructure:"report_diagnostics_path"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text") // text ou json

	v.SetDefault("REPORT_DIAGNOSTICS_PATH", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	SetDefaults(v)

	// Variáveis de ambiente têm precedência sobre os valores padrão
	v.AutomaticEnv()

	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv. O arquivo é opcional.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Debug("Não foi possível obter o diretório atual:", err)
		return
	}

	location := filepath.Join(cwd, ".env")
	if err := godotenv.Load(location); err != nil {
		logrus.Debug("Arquivo .env não carregado:", err)
		return
	}

	logrus.Debug("Arquivo .env carregado de:", location)
}
