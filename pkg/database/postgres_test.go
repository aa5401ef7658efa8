package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/holonet/pkg/config"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want string
	}{
		{
			name: "discrete settings",
			cfg:  config.DatabaseConfig{Host: "db", Port: "5432", User: "holo", Password: "net", DBName: "holonet", SSLMode: "disable"},
			want: "host=db port=5432 user=holo password=net dbname=holonet sslmode=disable",
		},
		{
			name: "postgres url is rewritten",
			cfg:  config.DatabaseConfig{URL: "postgres://u:p@db:5432/holonet", Host: "ignored"},
			want: "postgresql://u:p@db:5432/holonet",
		},
		{
			name: "postgresql url kept",
			cfg:  config.DatabaseConfig{URL: "postgresql://u:p@db/holonet?sslmode=require"},
			want: "postgresql://u:p@db/holonet?sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DSN(tt.cfg))
		})
	}
}

func TestGormConfig_TranslatesErrors(t *testing.T) {
	cfg := GormConfig()
	assert.True(t, cfg.TranslateError)
	assert.NotNil(t, cfg.Logger)
}
