package internal

import (
	"flag"
	"fmt"
	"os"
)

const (
	RunAddress         = "RUN_ADDRESS"
	DatabaseURI        = "DATABASE_URI"
	JWTSecret          = "JWT_SECRET"
	PlacedOrdersPath   = "PLACED_ORDERS_PATH"
	ReceivedOrdersPath = "RECEIVED_ORDERS_PATH"
)

const (
	defaultRunAddress = "localhost:8080"
	defaultJWTSecret  = "secret"
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
	database = "zencoo"
)

type Config struct {
	RunAddress         string
	DatabaseURI        string
	JWTSecret          string
	PlacedOrdersPath   string
	ReceivedOrdersPath string
}

func NewConfig() *Config {
	c := new(Config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s dbname=%s sslmode=disable",
		host, port, user, password, database)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	flag.StringVar(&c.JWTSecret, "s", setEnvOrDefault(JWTSecret, defaultJWTSecret), "JWT signing secret")
	flag.StringVar(&c.PlacedOrdersPath, "placed", setEnvOrDefault(PlacedOrdersPath, ""), "placed orders fixture (json or yaml)")
	flag.StringVar(&c.ReceivedOrdersPath, "received", setEnvOrDefault(ReceivedOrdersPath, ""), "received orders fixture (json or yaml)")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
