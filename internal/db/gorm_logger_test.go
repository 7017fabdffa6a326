package db

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "uni.db?_foreign_keys=on", sqliteDSN("uni.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "uni.db?_fk=1", sqliteDSN("uni.db?_fk=1"))
}

func TestGormLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	lgr := NewGormLogger(zerolog.New(&buf), 50*time.Millisecond)
	ctx := context.Background()
	stmt := func() (string, int64) { return "SELECT 1", 1 }

	lgr.Trace(ctx, time.Now(), stmt, nil)
	assert.Empty(t, buf.String(), "fast successful query is not logged at warn level")

	lgr.Trace(ctx, time.Now(), stmt, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "missing rows are not errors")

	lgr.Trace(ctx, time.Now(), stmt, errors.New("disk I/O error"))
	assert.Contains(t, buf.String(), "Query failed")
	buf.Reset()

	lgr.Trace(ctx, time.Now().Add(-time.Second), stmt, nil)
	assert.Contains(t, buf.String(), "Slow query")
	buf.Reset()

	silent := lgr.LogMode(gormlogger.Silent)
	silent.Trace(ctx, time.Now(), stmt, errors.New("ignored"))
	silent.Error(ctx, "ignored %d", 1)
	assert.Empty(t, buf.String())

	lgr.Warn(ctx, "pool %s", "exhausted")
	assert.True(t, strings.Contains(buf.String(), "pool exhausted"))
}
