package db

import "testing"

func TestRunMigrationsEmptyURL(t *testing.T) {
	if err := RunMigrations(""); err == nil {
		t.Fatal("expected error for empty postgres url")
	}
}
