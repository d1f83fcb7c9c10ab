package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kr/pretty"
)

type Config struct {
	Env        string
	ServerPort string
	ClientUrl  string
	UploadDir  string
	Mongodb    MongodbConfig
	Jwt        JwtConfig
}

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = "8080"
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	clientUrl := os.Getenv(ClientUrl)
	if clientUrl == "" {
		clientUrl = "http://localhost:8080"
	}

	uploadDir := os.Getenv(UploadDir)
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	mongodbConfig, err := ReadMongoDbConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:        os.Getenv(AppEnv),
		ServerPort: serverPort,
		ClientUrl:  clientUrl,
		UploadDir:  uploadDir,
		Mongodb:    mongodbConfig,
		Jwt:        jwtConfig,
	}, nil
}

func (c *Config) Print() {
	printable := *c
	printable.Jwt.AccessSecret = nil
	printable.Jwt.RefreshSecret = nil
	printable.Mongodb.Password = ""
	_, _ = pretty.Println(&printable)
}

func ReadMongoDbConfig() (MongodbConfig, error) {
	mongodbUri := os.Getenv(MongodbUri)
	if mongodbUri == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUri)
	}

	mongodbDatabase := os.Getenv(MongodbDatabase)
	if mongodbDatabase == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbDatabase)
	}

	collections := map[string]string{
		MongodbUserCollection:        "users",
		MongodbJobCollection:         "jobs",
		MongodbCompanyCollection:     "companies",
		MongodbApplicationCollection: "applications",
	}
	for key := range collections {
		if name := os.Getenv(key); name != "" {
			collections[key] = name
		}
	}

	return MongodbConfig{
		Uri:         mongodbUri,
		Username:    os.Getenv(MongodbUsername),
		Password:    os.Getenv(MongodbPassword),
		Database:    mongodbDatabase,
		Collections: collections,
	}, nil
}

func ReadJwtConfig() (JwtConfig, error) {
	accessSecret := os.Getenv(JwtSecret)
	if accessSecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtSecret)
	}

	accessTokenTTL, err := readDuration(AccessTokenExpire, 15*time.Minute)
	if err != nil {
		return JwtConfig{}, err
	}

	refreshTokenTTL, err := readDuration(RefreshTokenExpire, 168*time.Hour)
	if err != nil {
		return JwtConfig{}, err
	}

	return JwtConfig{
		AccessSecret:    []byte(accessSecret),
		RefreshSecret:   []byte(os.Getenv(RefreshTokenSecret)),
		AccessTokenTTL:  accessTokenTTL,
		RefreshTokenTTL: refreshTokenTTL,
	}, nil
}

func readDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	duration, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s variable is not a valid duration: %w", key, err)
	}

	return duration, nil
}
