package config

const (
	StorageDriverLocal = "local"
	StorageDriverOss   = "oss"
	StorageDriverMinio = "minio"
)

// StorageConfig 笔记文件、帖子图片的存储配置
type StorageConfig struct {
	Driver       string `json:"driver" yaml:"driver"`
	LocalDir     string `json:"local_dir" yaml:"local_dir"`
	PublicPrefix string `json:"public_prefix" yaml:"public_prefix"` // 本地存储对外访问前缀，如 /uploads
	MaxFileSize  int64  `json:"max_file_size" yaml:"max_file_size"`
}

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	CdnDomain       string `json:"cdn_domain" yaml:"cdn_domain"`
}

type MinioConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	SecretAccessKey string `json:"sk" yaml:"sk"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	UseSSL          bool   `json:"use_ssl" yaml:"use_ssl"`
}

func ProvideStorageConfig(cfg *Config) *StorageConfig {
	return cfg.Storage
}
