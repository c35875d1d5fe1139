package configs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	LogsPassword      string
	LogsPasswordHash  string
	LogsSessionSecret string
	LogsSessionTTL    time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	LogsPassword = GetEnv("LOGS_PASSWORD")
	LogsPasswordHash = GetEnv("LOGS_PASSWORD_HASH")
	LogsSessionSecret = GetEnv("LOGS_SESSION_SECRET", "dev-secret")

	ttl := GetEnv("LOGS_SESSION_TTL", "12h")
	d, err := time.ParseDuration(ttl)
	if err != nil {
		log.Printf("⚠️ LOGS_SESSION_TTL tidak valid (%q), pakai 12h", ttl)
		d = 12 * time.Hour
	}
	LogsSessionTTL = d

	if LogsPassword == "" && LogsPasswordHash == "" {
		log.Println("❌ LOGS_PASSWORD / LOGS_PASSWORD_HASH belum diset, halaman logs tidak bisa dibuka!")
	} else {
		log.Println("✅ Kredensial halaman logs berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[GORM][INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[GORM][WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[GORM][ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[GORM][ERR] %s | rows=%d | %s | %v", sql, rows, elapsed, err)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[GORM][SLOW>%s] %s | rows=%d | %s | %s", l.SlowThreshold, sql, rows, elapsed, utils.FileWithLineNum())
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[GORM] %s | rows=%d | %s", sql, rows, elapsed)
	}
}
