package database

import (
	"context"
	"testing"
)

func TestNewDynamoDBConfig(t *testing.T) {
	t.Run("local endpoint uses static credentials", func(t *testing.T) {
		t.Setenv("AWS_ACCESS_KEY_ID", "")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "")

		cfg, err := NewDynamoDBConfig(context.Background(), "", "http://localhost:8000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "us-east-1" {
			t.Fatalf("expected default region, got %q", cfg.Region)
		}
		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if creds.AccessKeyID != "local" || creds.SecretAccessKey != "local" {
			t.Fatalf("unexpected credentials: %+v", creds)
		}
	})

	t.Run("explicit region", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), "eu-central-2", "http://localhost:8000")
		if err != nil || cfg.Region != "eu-central-2" {
			t.Fatalf("unexpected result: %q, %v", cfg.Region, err)
		}
	})
}
