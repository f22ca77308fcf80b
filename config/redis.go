package config

// RedisConfig 包含连接 Redis 所需的配置
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // host:port
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 密码，未设置时留空
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`                   // 逻辑库编号
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"` // 连接池大小，0 使用客户端默认值
}
