package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithEnvVars(t *testing.T) {
	os.Setenv("UNIGEN_PORT", "9090")
	os.Setenv("UNIGEN_DEBUG", "true")
	os.Setenv("UNIGEN_KNOWLEDGE_DIR", "/tmp/knowledge")
	os.Setenv("UNIGEN_PROJECTS_DIR", "/tmp/projects")
	os.Setenv("UNIGEN_S3_ENDPOINT", "http://localhost:9000")
	os.Setenv("UNIGEN_S3_ACCESS_KEY_ID", "key")
	os.Setenv("UNIGEN_S3_SECRET_ACCESS_KEY", "secret")
	os.Setenv("UNIGEN_OPENAI_API_KEY", "sk-test")
	defer func() {
		os.Unsetenv("UNIGEN_PORT")
		os.Unsetenv("UNIGEN_DEBUG")
		os.Unsetenv("UNIGEN_KNOWLEDGE_DIR")
		os.Unsetenv("UNIGEN_PROJECTS_DIR")
		os.Unsetenv("UNIGEN_S3_ENDPOINT")
		os.Unsetenv("UNIGEN_S3_ACCESS_KEY_ID")
		os.Unsetenv("UNIGEN_S3_SECRET_ACCESS_KEY")
		os.Unsetenv("UNIGEN_OPENAI_API_KEY")
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/knowledge", cfg.KnowledgeDir)
	assert.Equal(t, "/tmp/projects", cfg.ProjectsDir)
	assert.Equal(t, "http://localhost:9000", cfg.S3Endpoint)
	assert.Equal(t, "key", cfg.S3AccessKey)
	assert.Equal(t, "secret", cfg.S3SecretKey)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "knowledge", cfg.KnowledgeDir)
	assert.Equal(t, "generated_projects", cfg.ProjectsDir)
	assert.Equal(t, "unity-projects", cfg.S3Bucket)
	assert.Equal(t, "us-east-1", cfg.S3Region)
}

func TestHasS3(t *testing.T) {
	cfg := &Config{
		S3Endpoint:  "http://localhost:9000",
		S3AccessKey: "key",
		S3SecretKey: "secret",
	}
	assert.True(t, cfg.HasS3())

	cfg.S3Endpoint = ""
	assert.False(t, cfg.HasS3())
}

func TestHasOpenAI(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-test"}
	assert.True(t, cfg.HasOpenAI())

	cfg.OpenAIAPIKey = ""
	assert.False(t, cfg.HasOpenAI())
}
