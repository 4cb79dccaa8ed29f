package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
	}
	Security struct {
		SessionSecretKey string // 会话签名密钥，用于签名 __session cookie ，更新会导致旧有会话全部失效
	}
}
