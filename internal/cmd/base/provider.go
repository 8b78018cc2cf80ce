package base

import (
	"github.com/hashicorp-forge/gitrefs/internal/config"
	"github.com/hashicorp-forge/gitrefs/pkg/refs"
)

// ProviderFlags are the flags shared by every command that needs a
// configured reference parser. Flag values override the config file.
type ProviderFlags struct {
	Provider   string
	Namespace  string
	Project    string
	BaseURL    string
	ConfigPath string
}

// Register declares the provider flags on the given flag set.
func (p *ProviderFlags) Register(f *FlagSet) {
	f.StringVar(
		&p.Provider, "provider", "",
		"Hosting provider to resolve references against (github|gitlab).",
	)
	f.StringVar(
		&p.Namespace, "namespace", "",
		"Default namespace (organization or user) for same-repository references.",
	)
	f.StringVar(
		&p.Project, "project", "",
		"Default project (repository) for same-repository references.",
	)
	f.StringVar(
		&p.BaseURL, "base-url", "",
		"Base URL of a self-hosted instance. Defaults to the provider's public instance.",
	)
	f.StringVar(
		&p.ConfigPath, "config", "",
		"Path to an HCL configuration file with a provider block.",
	)
}

// Parser resolves the flags, and the config file when one is given, into a
// reference parser.
func (p *ProviderFlags) Parser() (refs.Parser, error) {
	provider := &config.Provider{Type: "github"}

	if p.ConfigPath != "" {
		cfg, err := config.NewConfig(p.ConfigPath)
		if err != nil {
			return nil, err
		}
		if cfg.Provider != nil {
			provider = cfg.Provider
		}
	}

	if p.Provider != "" {
		provider.Type = p.Provider
	}
	if p.Namespace != "" {
		provider.Namespace = p.Namespace
	}
	if p.Project != "" {
		provider.Project = p.Project
	}
	if p.BaseURL != "" {
		provider.BaseURL = p.BaseURL
	}

	return provider.NewParser()
}
