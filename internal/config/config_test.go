package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "./", cfg.Prefix.Literal)
	assert.False(t, cfg.Prefix.Bracket)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UserConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*UserConfig) {}},
		{name: "empty fallback allowed", mutate: func(c *UserConfig) { c.Fallback = "" }},
		{name: "absolute fallback", mutate: func(c *UserConfig) { c.Fallback = "absolute" }},
		{name: "none fallback", mutate: func(c *UserConfig) { c.Fallback = "none" }},
		{name: "bad fallback", mutate: func(c *UserConfig) { c.Fallback = "panic" }, wantErr: true},
		{name: "negative limit", mutate: func(c *UserConfig) { c.AbbrevLimit = -1 }, wantErr: true},
		{name: "unknown resolver", mutate: func(c *UserConfig) { c.Resolvers = []string{"svn"} }, wantErr: true},
		{name: "fixed resolver allowed", mutate: func(c *UserConfig) { c.Resolvers = []string{"fixed", "git"} }},
		{name: "bad log level", mutate: func(c *UserConfig) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "empty log level allowed", mutate: func(c *UserConfig) { c.LogLevel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
