package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q", c.AppPort)
	}
	if c.IdempTTLSecs != 300 || c.SessionTTLSecs != 600 {
		t.Fatalf("TTLs = %d/%d", c.IdempTTLSecs, c.SessionTTLSecs)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_BadPort(t *testing.T) {
	c := Load()
	c.MySQLPort = "not-a-port"
	if err := c.Validate(); err == nil {
		t.Fatal("want error for bad port")
	}
}

func TestMySQLDSN(t *testing.T) {
	t.Setenv("MYSQL_HOST", "db.local")
	t.Setenv("MYSQL_PORT", "3307")
	c := Load()
	dsn := c.MySQLDSN()
	want := "fundcollector:fundcollector@tcp(db.local:3307)/fundcollector?multiStatements=true&parseTime=true&charset=utf8mb4,utf8"
	if dsn != want {
		t.Fatalf("dsn = %q", dsn)
	}
}
