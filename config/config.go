package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App           `json:"app" yaml:"app"`
	Server   *Server        `json:"server" yaml:"server"`
	Database *Database      `json:"database" yaml:"database"`
	Redis    *Redis         `json:"redis" yaml:"redis"`
	Jwt      *Jwt           `json:"jwt" yaml:"jwt"`
	Storage  *StorageConfig `json:"storage" yaml:"storage"`
	Oss      *OssConfig     `json:"oss" yaml:"oss"`
	Minio    *MinioConfig   `json:"minio" yaml:"minio"`
	Ledger   *Ledger        `json:"ledger" yaml:"ledger"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}
	conf.applyDefaults()

	return &conf
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{Driver: "sqlite", Name: "studyhub.db"}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.ExpiresIn == 0 {
		c.Jwt.ExpiresIn = 7 * 24 * 3600
	}
	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverLocal
	}
	if c.Storage.LocalDir == "" {
		c.Storage.LocalDir = "uploads"
	}
	if c.Storage.PublicPrefix == "" {
		c.Storage.PublicPrefix = "/uploads"
	}
	if c.Storage.MaxFileSize == 0 {
		c.Storage.MaxFileSize = 10 << 20
	}
	if c.Ledger == nil {
		c.Ledger = DefaultLedger()
	}
	c.Ledger.fill(DefaultLedger())
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
