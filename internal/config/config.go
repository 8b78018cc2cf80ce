// Package config loads the gitrefs CLI configuration from an HCL file.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/hashicorp-forge/gitrefs/pkg/refs"
)

// Config is the top-level CLI configuration.
//
// Example:
//
//	provider "gitlab" {
//	  namespace = "gitlab-org"
//	  project   = "gitlab"
//	  base_url  = "https://gitlab.example.com"
//	}
type Config struct {
	Provider *Provider `hcl:"provider,block"`
}

// Provider describes the hosting provider references resolve against.
type Provider struct {
	Type      string `hcl:"type,label"`
	Namespace string `hcl:"namespace"`
	Project   string `hcl:"project"`
	BaseURL   string `hcl:"base_url,optional"`
}

// NewConfig parses the configuration file at path.
func NewConfig(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding configuration file: %w", err)
	}
	return &cfg, nil
}

// NewParser builds the reference parser the provider block describes.
func (p *Provider) NewParser() (refs.Parser, error) {
	var opts []refs.Option
	if p.BaseURL != "" {
		opts = append(opts, refs.WithBaseURL(p.BaseURL))
	}

	switch p.Type {
	case "github":
		return refs.NewGitHub(p.Namespace, p.Project, opts...)
	case "gitlab":
		return refs.NewGitLab(p.Namespace, p.Project, opts...)
	default:
		return nil, fmt.Errorf("unknown provider type: %q (valid: github, gitlab)", p.Type)
	}
}
