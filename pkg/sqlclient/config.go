package sqlclient

import (
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/kelseyhightower/envconfig"
	_ "modernc.org/sqlite"
)

const (
	mysqlDriver  = "mysql"
	sqliteDriver = "sqlite"
)

// Config holds resolved MySQL connection parameters.
type Config struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"3306"`
	User     string `envconfig:"USER" default:"root"`
	Password string `envconfig:"PASSWORD"`
	Database string `envconfig:"DATABASE" default:"tweet"`
	Charset  string `envconfig:"CHARSET" default:"utf8mb4"`
}

func (c Config) DSN() string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.DBName = c.Database

	if c.Charset != "" {
		cfg.Params = map[string]string{"charset": c.Charset}
	}

	return cfg.FormatDSN()
}

func NewMySQL(cfg Config) Database {
	return NewDatabase(mysqlDriver, cfg.DSN())
}

func GetConfig() Config {
	cfg := new(Config)
	if err := envconfig.Process("MYSQL", cfg); err != nil {
		panic(err)
	}

	return *cfg
}

// NewSQLite opens the database file at path with the pure Go driver.
func NewSQLite(path string) Database {
	return NewDatabase(sqliteDriver, path)
}
