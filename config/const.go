package config

const (
	FlagConfigPath         = "config-path"
	FlagConfigType         = "config-type"
	FlagConfigAwsRegion    = "aws-region"
	FlagConfigAwsSecretKey = "aws-secret-key"

	AWSConfig   = "aws"
	LocalConfig = "local"

	EnvVarConfigType     = "CONFIG_TYPE"
	EnvVarConfigFilePath = "CONFIG_FILE_PATH"

	DefaultMessageLimit   = 25
	DefaultTxWindowInHour = 24
)
