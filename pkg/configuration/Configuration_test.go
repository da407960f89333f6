package configuration

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		mockFunc func(c *Configuration)
		wanted   string
	}{
		{
			"Valid configuration",
			func(c *Configuration) {},
			"",
		},
		{
			"Missing cluster name",
			func(c *Configuration) { c.ClusterName = "" },
			"configuration error: cluster-name is required",
		},
		{
			"Missing home and storage",
			func(c *Configuration) {
				c.Home = ""
				c.Storage = ""
			},
			"configuration error: home is required, storage is required",
		},
		{
			"Listen without port",
			func(c *Configuration) { c.Listen = "localhost" },
			"configuration error: listen is invalid (hostname_port)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewConfig()
			c.Home = "/home/kre8"
			c.Storage = "/srv/kre8/"
			c.ClusterName = "demo"

			tc.mockFunc(c)

			err := c.Validate()

			if tc.wanted == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.wanted)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	c := NewConfig()
	c.Home = "/home/kre8"
	c.Storage = "/srv/kre8/"
	c.ClusterName = "demo"

	assert.Equal(t, "/srv/kre8/AWS_Private/awsCredentials.json", c.CredentialsPath())
	assert.Equal(t, "/srv/kre8/AWS_Private/demo_MASTER_FILE.json", c.MasterFilePath())
	assert.Equal(t, "/srv/kre8/AWS_Private/.lock", c.LockPath())
	assert.Equal(t, "/home/kre8/.kre8/config/config.yaml", c.ConfigPath())
}

func TestHostPort(t *testing.T) {
	hp, err := NewHostPort("127.0.0.1:5180")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", hp.Host)
	assert.Equal(t, "5180", hp.Port)
	assert.Equal(t, "127.0.0.1:5180", hp.String())

	_, err = NewHostPort("localhost")
	assert.Error(t, err)
}
