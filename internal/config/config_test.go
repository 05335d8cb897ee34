package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/conf"

	"sol-instruction-api/internal/logic/domain"
)

func TestLoad_Full(t *testing.T) {
	content := []byte(`
Name: solana-api
Host: 127.0.0.1
Port: 18080
Logger:
  Format: json
  LogDir: /tmp/solana-api
  Level: debug
  Compress: true
Policy:
  RejectZeroAmount: true
  TokenAccountMode: associated
`)
	var c Config
	require.NoError(t, conf.LoadFromYamlBytes(content, &c))
	require.NoError(t, c.Validate())

	assert.Equal(t, "solana-api", c.Name)
	assert.Equal(t, 18080, c.Port)
	assert.Equal(t, "json", c.LogConf.Format)
	assert.True(t, c.LogConf.Compress)

	opt := c.LogConf.ToLogOption()
	assert.Equal(t, "/tmp/solana-api", opt.LogDir)
	assert.Equal(t, "debug", opt.Level)

	policy, err := c.PolicyConf.ToPolicy()
	require.NoError(t, err)
	assert.Equal(t, domain.Policy{RejectZeroAmount: true, TokenAccountMode: domain.TokenAccountAssociated}, policy)
}

func TestLoad_PolicyDefaults(t *testing.T) {
	content := []byte(`
Name: solana-api
Port: 8080
`)
	var c Config
	require.NoError(t, conf.LoadFromYamlBytes(content, &c))
	require.NoError(t, c.Validate())

	policy, err := c.PolicyConf.ToPolicy()
	require.NoError(t, err)
	assert.False(t, policy.RejectZeroAmount)
	assert.Equal(t, domain.TokenAccountLiteral, policy.TokenAccountMode)
}

func TestValidate_UnknownMode(t *testing.T) {
	c := Config{PolicyConf: PolicyConfig{TokenAccountMode: "derived"}}
	assert.Error(t, c.Validate())
}
