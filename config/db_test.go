package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestResolveMySQLConfig_FromParts(t *testing.T) {
	mc, err := resolveMySQLConfig(DBConfig{
		Host: "db.local", Port: "3307", User: "wo", Password: "secret", Name: "wedding_organizer",
	})
	require.NoError(t, err)

	assert.Equal(t, "tcp", mc.Net)
	assert.Equal(t, "db.local:3307", mc.Addr)
	assert.Equal(t, "wo", mc.User)
	assert.Equal(t, "secret", mc.Passwd)
	assert.Equal(t, "wedding_organizer", mc.DBName)
	assert.True(t, mc.ParseTime)
	assert.True(t, mc.ClientFoundRows)
	assert.Equal(t, "utf8mb4", mc.Params["charset"])
}

func TestResolveMySQLConfig_FromURL(t *testing.T) {
	mc, err := resolveMySQLConfig(DBConfig{URL: "mysql://root:pw@mysql.internal/wedding?charset=latin1"})
	require.NoError(t, err)

	assert.Equal(t, "mysql.internal:3306", mc.Addr)
	assert.Equal(t, "root", mc.User)
	assert.Equal(t, "pw", mc.Passwd)
	assert.Equal(t, "wedding", mc.DBName)
	assert.Equal(t, "latin1", mc.Params["charset"])
	assert.True(t, mc.ClientFoundRows)
}

func TestResolveMySQLConfig_URLWithoutDatabase(t *testing.T) {
	_, err := resolveMySQLConfig(DBConfig{URL: "mysql://root:pw@mysql.internal:3306/"})
	assert.Error(t, err)
}

func TestResolveMySQLConfig_RawDSN(t *testing.T) {
	mc, err := resolveMySQLConfig(DBConfig{URL: "u:p@tcp(10.0.0.5:3306)/wo"})
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5:3306", mc.Addr)
	assert.Equal(t, "wo", mc.DBName)
	assert.True(t, mc.ParseTime)
	assert.Equal(t, time.Local, mc.Loc)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("SILENT"))
	assert.Equal(t, logger.Error, parseLogLevel("error"))
	assert.Equal(t, logger.Info, parseLogLevel(" info "))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
	assert.Equal(t, logger.Warn, parseLogLevel("verbose"))
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseList(""))
	assert.Equal(t, []string{"*"}, parseList(" , "))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, parseList("http://a.test, ,http://b.test "))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("WO_TEST_INT", "42")
	t.Setenv("WO_TEST_BAD_INT", "x")
	t.Setenv("WO_TEST_BOOL", "false")
	t.Setenv("WO_TEST_DUR", "90s")
	t.Setenv("WO_TEST_NEG_DUR", "-1s")
	t.Setenv("WO_TEST_DEC", "1500000.50")
	t.Setenv("WO_TEST_BAD_DEC", "lots")

	assert.Equal(t, 42, envInt("WO_TEST_INT", 1))
	assert.Equal(t, 1, envInt("WO_TEST_BAD_INT", 1))
	assert.False(t, envBool("WO_TEST_BOOL", true))
	assert.True(t, envBool("WO_TEST_MISSING", true))
	assert.Equal(t, 90*time.Second, envDuration("WO_TEST_DUR", time.Hour))
	assert.Equal(t, time.Hour, envDuration("WO_TEST_NEG_DUR", time.Hour))
	assert.True(t, decimal.RequireFromString("1500000.50").Equal(envDecimal("WO_TEST_DEC", decimal.Zero)))
	assert.True(t, decimal.NewFromInt(7).Equal(envDecimal("WO_TEST_BAD_DEC", decimal.NewFromInt(7))))
	assert.Equal(t, "fallback", envOrDefault("WO_TEST_MISSING", "fallback"))
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_SECRET", "RATE_LIMIT", "MYSQL_URL", "DATABASE_URL", "UPLOAD_DIR"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "dev-secret-change-in-production", cfg.JWTSecret)
	assert.Equal(t, "20-M", cfg.RateLimit)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Empty(t, cfg.DB.URL)
	assert.True(t, decimal.NewFromInt(2000000).Equal(cfg.DefaultBookingAmount))
}
