package utils

import (
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
	"sync"
)

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBTimezone string `yaml:"DB_TIMEZONE"`

	// JWT configuration
	JWTSecret   string `yaml:"JWT_SECRET"`
	JWTTTLHours string `yaml:"JWT_TTL_HOURS"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// OCR process configuration
	OcrPython         string `yaml:"OCR_PYTHON"`
	OcrScript         string `yaml:"OCR_SCRIPT"`
	OcrTimeoutSeconds string `yaml:"OCR_TIMEOUT_SECONDS"`
	OcrWorkDir        string `yaml:"OCR_WORK_DIR"`
	OcrMaxConcurrent  string `yaml:"OCR_MAX_CONCURRENT"`
}

var (
	config     Config
	configOnce sync.Once
)

var defaults = map[string]string{
	"APP_PORT":            "8080",
	"DB_PORT":             "5432",
	"DB_TIMEZONE":         "Asia/Seoul",
	"JWT_TTL_HOURS":       "24",
	"SMTP_PORT":           "587",
	"OCR_PYTHON":          "python3",
	"OCR_SCRIPT":          "ocr/ocr-parser.py",
	"OCR_TIMEOUT_SECONDS": "30",
	"OCR_MAX_CONCURRENT":  "4",
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"APP_PORT":            &c.AppPort,
		"DB_USER":             &c.DBUser,
		"DB_NAME":             &c.DBName,
		"DB_PASSWORD":         &c.DBPassword,
		"DB_PORT":             &c.DBPort,
		"DB_HOST":             &c.DBHost,
		"DB_TIMEZONE":         &c.DBTimezone,
		"JWT_SECRET":          &c.JWTSecret,
		"JWT_TTL_HOURS":       &c.JWTTTLHours,
		"SMTP_HOST":           &c.SMTPHost,
		"SMTP_PORT":           &c.SMTPPort,
		"SMTP_SENDER_NAME":    &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":     &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":  &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":       &c.AWSS3Bucket,
		"AWS_S3_REGION":       &c.AWSS3Region,
		"AWS_ACCESS_KEY":      &c.AWSAccessKey,
		"AWS_SECRET_KEY":      &c.AWSSecretKey,
		"OCR_PYTHON":          &c.OcrPython,
		"OCR_SCRIPT":          &c.OcrScript,
		"OCR_TIMEOUT_SECONDS": &c.OcrTimeoutSeconds,
		"OCR_WORK_DIR":        &c.OcrWorkDir,
		"OCR_MAX_CONCURRENT":  &c.OcrMaxConcurrent,
	}
}

// LoadConfig reads config.yaml, then lets a .env file and the process
// environment override individual keys. Only the first call does any work.
func LoadConfig() {
	configOnce.Do(func() {
		loadConfigFile("config.yaml")
	})
}

func loadConfigFile(path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error reading .env file: %s\n", err)
	}

	for key, value := range config.fields() {
		if env, ok := os.LookupEnv(key); ok {
			*value = env
		}
		if *value == "" {
			*value = defaults[key]
		}
	}
}

func GetConfig(key string) string {
	if value, ok := config.fields()[key]; ok {
		return *value
	}
	return ""
}

// GetConfigInt falls back to def when the key is missing or not a positive number.
func GetConfigInt(key string, def int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
