package connection_test

import (
	"testing"

	"construct-erp/internal/shared/config"
	"construct-erp/internal/shared/connection"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	got := connection.DSN(config.DBConfig{
		Host:     "db",
		User:     "erp",
		Password: "secret",
		Name:     "construct_erp",
		Port:     "5432",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=db user=erp password=secret dbname=construct_erp port=5432 sslmode=disable TimeZone=UTC", got)
}
