package config

// Config aggregates every run-level setting. It is built once at process
// start and passed by reference into component constructors; components never
// read the environment themselves.
type Config struct {
	AWS      *AWSConfig
	S3       *S3Config
	Pipeline *PipelineConfig
	Report   *ReportConfig
}

func Load() (*Config, error) {
	awsConfig, err := GetAWSConfig()
	if err != nil {
		return nil, err
	}

	s3Config, err := GetS3Config()
	if err != nil {
		return nil, err
	}

	pipelineConfig, err := GetPipelineConfig()
	if err != nil {
		return nil, err
	}

	reportConfig, err := GetReportConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		AWS:      awsConfig,
		S3:       s3Config,
		Pipeline: pipelineConfig,
		Report:   reportConfig,
	}, nil
}
