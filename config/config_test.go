package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigAndConnectDatabase_TestEnv(t *testing.T) {
	t.Setenv("APPENV", "test")
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)

	cfg := LoadConfig()
	if cfg == nil {
		t.Fatalf("expected non-nil config")
	}

	db, err := ConnectDatabase()
	if err != nil {
		t.Fatalf("ConnectDatabase failed in test env: %v", err)
	}
	if db == nil {
		t.Fatalf("expected non-nil DB connection")
	}
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestConnectDatabase_FreshDatabasePerCall(t *testing.T) {
	t.Setenv("APPENV", "test")
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)

	type row struct {
		ID   uint
		Name string
	}

	first, err := ConnectDatabase()
	assert.NoError(t, err)
	assert.NoError(t, first.AutoMigrate(&row{}))
	assert.NoError(t, first.Create(&row{Name: "a"}).Error)

	time.Sleep(time.Millisecond)
	second, err := ConnectDatabase()
	assert.NoError(t, err)
	assert.False(t, second.Migrator().HasTable(&row{}))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APPENV", "")
	t.Setenv("DBDRIVER", "")
	t.Setenv("SESSIONTTLMINUTES", "")
	t.Setenv("CORSORIGINS", "")
	t.Setenv("ENFORCEROLES", "")
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)

	cfg := LoadConfig()
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.EnforceRoles)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APPPORT", "8080")
	t.Setenv("DBDRIVER", "SQLite")
	t.Setenv("DBPATH", "/tmp/clinic.db")
	t.Setenv("SESSIONTTLMINUTES", "30")
	t.Setenv("CORSORIGINS", "http://a.test, http://b.test")
	t.Setenv("ENFORCEROLES", "false")
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)

	cfg := LoadConfig()
	assert.Equal(t, uint16(8080), cfg.AppPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/clinic.db", cfg.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.False(t, cfg.EnforceRoles)
}

func TestConnectDatabase_UnsupportedDriver(t *testing.T) {
	t.Setenv("APPENV", "")
	t.Setenv("DBDRIVER", "oracle")
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)

	db, err := ConnectDatabase()
	assert.Nil(t, db)
	assert.Error(t, err)
}
