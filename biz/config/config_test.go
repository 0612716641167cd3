package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "deploy.yml")
	if err := os.WriteFile(p, []byte(`server:
  address: "127.0.0.1:8888"
  env: "production"

mysql:
  db_name: ""
  ip: "127.0.0.1"
  port: 3306
  username: ""
  password: ""

redis:
  ip: "127.0.0.1"
  port: 6379
  password: ""
  db: 0

jwt:
  session_token_secret: "test_secret"
  expiration_days: 30
  issuer: "test_issuer"
  cookie_name: "token"

cors:
  allow_origins:
    - "*"
  allow_methods:
    - "GET"
  allow_headers:
    - "Origin"
  allow_credentials: true
  max_age: 600

session:
  store_prefix: "auth_session:"
  name: "auth_session_id"
  path: "/"
  domain: ""
  max_age: 604800
  secure: false
  http_only: true
  same_site: "Strict"

logger:
  level: "info"
  dir: "./log"
  file_name: "hertz.log"
  max_size: 128
  max_backups: 5
  max_age: 7

rate_limit:
  - path: "/auth/login"
    window_seconds: 1
    limit: 5
    has_session: false
`), 0600); err != nil {
		t.Fatal(err)
	}

	Init(p)

	if got := GetServerConf().Address; got != "127.0.0.1:8888" {
		t.Errorf("server address: %s", got)
	}
	if !IsProdEnv() {
		t.Errorf("expected production env")
	}
	if got := GetJWTConfig().SessionTokenSecret; got != "test_secret" {
		t.Errorf("jwt secret: %s", got)
	}
	if got := GetJWTConfig().ExpirationDays; got != 30 {
		t.Errorf("jwt expiration days: %d", got)
	}
	if got := GetJWTConfig().CookieName; got != "token" {
		t.Errorf("jwt cookie name: %s", got)
	}
	if got := GetMySQLConf().IP; got != "127.0.0.1" {
		t.Errorf("mysql ip: %s", got)
	}
	if got := GetRedisConf().Port; got != 6379 {
		t.Errorf("redis port: %d", got)
	}
	if got := GetSessionConf().Name; got != "auth_session_id" {
		t.Errorf("session name: %s", got)
	}
	if got := GetLoggerConf().Level; got != "info" {
		t.Errorf("logger level: %s", got)
	}
	if got := len(GetRateLimitConf()); got != 1 {
		t.Errorf("rate limit rules: %d", got)
	}
}

func TestInit_BadFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on missing file")
		}
	}()
	Init(filepath.Join(t.TempDir(), "nope.yml"))
}
