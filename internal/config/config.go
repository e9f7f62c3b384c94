package config

import (
	"os"
)

// Config 应用配置
type Config struct {
	Env       string
	AppSecret string
	MongoURI  string
	MongoDB   string
	Port      string
	SiteName  string
}

// Load 加载配置
func Load() *Config {
	appSecret := getEnv("SESSION_SECRET_KEY", "your-secret-key-change-in-production")

	if getEnv("APP_ENV", "development") == "production" && appSecret == "your-secret-key-change-in-production" {
		// 生产环境必须设置真实密钥
		os.Stderr.WriteString("【严重警告】生产环境正在使用默认 Session 密钥！请设置 SESSION_SECRET_KEY 环境变量。\n")
	}

	return &Config{
		Env:       getEnv("APP_ENV", "development"),
		AppSecret: appSecret,
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "mocorn"),
		Port:      getEnv("PORT", "3000"),
		SiteName:  getEnv("SITE_NAME", "MoCorn"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
