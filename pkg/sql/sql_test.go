package sql_test

import (
	"testing"

	"github.com/soapboxsocial/stories/pkg/conf"
	"github.com/soapboxsocial/stories/pkg/sql"
)

func TestDataSourceName(t *testing.T) {
	var tests = []struct {
		name     string
		conf     conf.PostgresConf
		expected string
	}{
		{
			"default ssl",
			conf.PostgresConf{Host: "localhost", Port: 5432, User: "u", Password: "p", Database: "stories"},
			"host=localhost port=5432 user=u password=p dbname=stories sslmode=disable",
		},
		{
			"explicit ssl",
			conf.PostgresConf{Host: "db", Port: 1, User: "u", Password: "p", Database: "d", SSL: "require"},
			"host=db port=1 user=u password=p dbname=d sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sql.DataSourceName(tt.conf)
			if result != tt.expected {
				t.Fatalf("expected %s does not match actual %s", tt.expected, result)
			}
		})
	}
}

func TestURL(t *testing.T) {
	result := sql.URL(conf.PostgresConf{Host: "localhost", Port: 5432, User: "u", Password: "p", Database: "stories"})
	expected := "postgres://u:p@localhost:5432/stories?sslmode=disable"
	if result != expected {
		t.Fatalf("expected %s does not match actual %s", expected, result)
	}
}
