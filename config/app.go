package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

type Jwt struct {
	Secret    string `json:"secret" yaml:"secret"`
	ExpiresIn int64  `json:"expires_in" yaml:"expires_in"` // 秒
}
