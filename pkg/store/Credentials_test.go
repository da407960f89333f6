package store

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func TestCredentialsUpsert(t *testing.T) {
	credentials := NewCredentials(newTestConfig(t))

	err := credentials.Upsert("accessKeyId", "AKIA")
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, credentials.Init())
	require.NoError(t, credentials.Upsert("accessKeyId", "AKIA"))
	require.NoError(t, credentials.Upsert("region", "eu-west-1"))
	require.NoError(t, credentials.Upsert("accessKeyId", "AKIB"))

	value, ok, err := credentials.Get("accessKeyId")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "AKIB", value)

	_, ok, err = credentials.Get("secretAccessKey")
	require.NoError(t, err)
	assert.False(t, ok)

	data, err := os.ReadFile(credentials.Path())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"accessKeyId\": \"AKIB\",\n  \"region\": \"eu-west-1\"\n}", string(data))

	info, err := os.Stat(credentials.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCredentialsInitKeepsContent(t *testing.T) {
	credentials := NewCredentials(newTestConfig(t))
	writeFile(t, credentials.Path(), `{"region": "us-east-1"}`)

	require.NoError(t, credentials.Init())

	all, err := credentials.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"region": "us-east-1"}, all)
}

func TestCredentialsParseError(t *testing.T) {
	credentials := NewCredentials(newTestConfig(t))
	writeFile(t, credentials.Path(), `not json`)

	err := credentials.Upsert("region", "eu-west-1")
	assert.ErrorIs(t, err, ErrParse)

	data, err := os.ReadFile(credentials.Path())
	require.NoError(t, err)
	assert.Equal(t, "not json", string(data))
}
