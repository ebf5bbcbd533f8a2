package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hyperledger-labs/firefly-explorer/cache"
	"github.com/hyperledger-labs/firefly-explorer/config"
	"github.com/hyperledger-labs/firefly-explorer/explorer"
	"github.com/hyperledger-labs/firefly-explorer/external/ff"
	"github.com/hyperledger-labs/firefly-explorer/logging"
	"github.com/hyperledger-labs/firefly-explorer/metrics"
	"github.com/hyperledger-labs/firefly-explorer/service"
)

func initFlags() {
	flag.String(config.FlagConfigPath, "", "config file path")
	flag.String(config.FlagConfigType, "", "config type, local or aws")
	flag.String(config.FlagConfigAwsRegion, "", "aws region")
	flag.String(config.FlagConfigAwsSecretKey, "", "aws secret key")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	err := viper.BindPFlags(pflag.CommandLine)
	if err != nil {
		panic(err)
	}
}

func printUsage() {
	fmt.Print("usage: ./firefly-explorer --config-type local --config-path configFile\n")
	fmt.Print("usage: ./firefly-explorer --config-type aws --aws-region awsRegion --aws-secret-key awsSecretKey\n")
}

func main() {
	var (
		cfg                        *config.Config
		configType, configFilePath string
	)
	initFlags()
	configType = viper.GetString(config.FlagConfigType)
	if configType == "" {
		configType = os.Getenv(config.EnvVarConfigType)
	}
	if configType != config.AWSConfig && configType != config.LocalConfig {
		printUsage()
		return
	}
	if configType == config.AWSConfig {
		awsSecretKey := viper.GetString(config.FlagConfigAwsSecretKey)
		if awsSecretKey == "" {
			printUsage()
			return
		}
		awsRegion := viper.GetString(config.FlagConfigAwsRegion)
		if awsRegion == "" {
			printUsage()
			return
		}
		configContent, err := config.GetSecret(awsSecretKey, awsRegion)
		if err != nil {
			fmt.Printf("get aws config error, err=%s", err.Error())
			return
		}
		cfg = config.ParseConfigFromJson(configContent)
	} else {
		configFilePath = viper.GetString(config.FlagConfigPath)
		if configFilePath == "" {
			configFilePath = os.Getenv(config.EnvVarConfigFilePath)
			if configFilePath == "" {
				printUsage()
				return
			}
		}
		cfg = config.ParseConfigFromFile(configFilePath)
	}
	if cfg == nil {
		panic("failed to get configuration")
	}
	logging.InitLogger(&cfg.LogConfig)

	clientOpts := make([]ff.ClientOption, 0)
	if cfg.APIConfig.RequestTimeoutInSec > 0 {
		clientOpts = append(clientOpts, ff.WithTimeout(time.Duration(cfg.APIConfig.RequestTimeoutInSec)*time.Second))
	}
	client, err := ff.NewClient(cfg.APIConfig.Endpoint, clientOpts...)
	if err != nil {
		panic(fmt.Sprintf("create core API client error, err=%s", err.Error()))
	}

	batchCache, err := cache.NewLocalCache(cfg.CacheConfig.GetCacheSize())
	if err != nil {
		panic(fmt.Sprintf("create cache error, err=%s", err.Error()))
	}

	messageLimit := cfg.ServerConfig.DashboardMessageLimit
	if messageLimit == 0 {
		messageLimit = config.DefaultMessageLimit
	}
	txWindowInHours := cfg.ServerConfig.DashboardTxWindowInHours
	if txWindowInHours == 0 {
		txWindowInHours = config.DefaultTxWindowInHour
	}

	dashboardSvc := service.NewDashboardService(client, messageLimit, time.Duration(txWindowInHours)*time.Hour)
	accountSvc := service.NewAccountService(client)
	messageSvc := service.NewMessageService(client, batchCache)

	if cfg.MetricsConfig.Enabled {
		address := cfg.MetricsConfig.Address
		if address == "" {
			address = metrics.DefaultMetricsAddress
		}
		metric := metrics.NewMetrics(address)
		metric.Start()
	}

	server, err := explorer.New(explorer.Config{
		BindAddress:      cfg.ServerConfig.BindAddress,
		Port:             cfg.ServerConfig.Port,
		DefaultNamespace: cfg.APIConfig.DefaultNamespace,
	}, client, dashboardSvc, accountSvc, messageSvc)
	if err != nil {
		panic(fmt.Sprintf("create explorer error, err=%s", err.Error()))
	}

	if err := server.Start(context.Background()); err != nil && err != http.ErrServerClosed {
		logging.Logger.Errorf("explorer stopped, err=%s", err.Error())
	}
}
