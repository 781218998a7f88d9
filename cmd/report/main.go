package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report/internal/cli"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível do log com base na configuração
	if err := log.Configure(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		logrus.WithError(err).Error("Falha na execução")
		os.Exit(1)
	}
}
