package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/JaimeStill/dockerflow/internal/config"
)

func main() {
	configPath := pflag.StringP("config", "c", config.BaseConfigFile, "Path to the base TOML configuration file")
	env := pflag.StringP("env", "e", "", "Configuration overlay name (overrides "+config.EnvServiceEnv+")")
	pflag.Parse()

	cfg, err := config.Load(*configPath, *env)
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	if err := cfg.Finalize(); err != nil {
		log.Fatal("config finalize failed: ", err)
	}

	svc, err := NewService(cfg, os.Stdout)
	if err != nil {
		log.Fatal("service init failed: ", err)
	}

	if err := svc.Start(); err != nil {
		log.Fatal("service start failed: ", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	if err := svc.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		log.Fatal("shutdown failed: ", err)
	}

	log.Println("service stopped gracefully")
}
