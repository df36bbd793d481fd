package config

import "os"

type AWSConfig struct {
	Region string
}

func GetAWSConfig() (*AWSConfig, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	return &AWSConfig{
		Region: region,
	}, nil
}
