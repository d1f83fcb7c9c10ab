package config

import "time"

const (
	EnvironmentVariableNotDefined = "%s variable is not defined"

	AppEnv     = "APP_ENV"
	ServerPort = "SERVER_PORT"
	ClientUrl  = "CLIENT_URL"
	UploadDir  = "UPLOAD_DIR"

	MongodbUri      = "MONGODB_URI"
	MongodbUsername = "MONGODB_USERNAME"
	MongodbPassword = "MONGODB_PASSWORD"
	MongodbDatabase = "MONGODB_DATABASE"

	MongodbUserCollection        = "MONGODB_USER_COLLECTION"
	MongodbJobCollection         = "MONGODB_JOB_COLLECTION"
	MongodbCompanyCollection     = "MONGODB_COMPANY_COLLECTION"
	MongodbApplicationCollection = "MONGODB_APPLICATION_COLLECTION"

	JwtSecret          = "JWT_SECRET"
	RefreshTokenSecret = "REFRESH_TOKEN_SECRET"
	AccessTokenExpire  = "ACCESS_TOKEN_EXPIRE"
	RefreshTokenExpire = "REFRESH_TOKEN_EXPIRE"
)

const EnvProduction = "production"

type MongodbConfig struct {
	Uri         string
	Username    string
	Password    string
	Database    string
	Collections map[string]string
}

type JwtConfig struct {
	AccessSecret    []byte
	RefreshSecret   []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}
