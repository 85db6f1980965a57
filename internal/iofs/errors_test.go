package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirError(t *testing.T) {
	orig := errors.New("permission denied")
	err := CreateDirError("/tmp/gnkey", orig)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
	assert.Equal(t, []any{"/tmp/gnkey"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, orig)
	assert.Contains(t, gnErr.Err.Error(), "cannot create directory")
}

func TestCopyFileError(t *testing.T) {
	orig := errors.New("disk full")
	err := CopyFileError("/tmp/config.yaml", orig)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.CopyFileError, gnErr.Code)
	assert.Contains(t, gnErr.Msg, "config file")
	assert.ErrorIs(t, gnErr.Err, orig)
}

func TestErrorsCallerInfo(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"create dir", CreateDirError("/d", errors.New("x"))},
		{"copy file", CopyFileError("/f", errors.New("x"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr := tt.err.(*gn.Error)
			assert.Contains(t, gnErr.Err.Error(), "from ")
			assert.Contains(t, gnErr.Err.Error(), "iofs.TestErrorsCallerInfo")
		})
	}
}

func TestReadConfigError(t *testing.T) {
	orig := errors.New("bad yaml")
	err := ReadConfigError("/home/config.yaml", orig)

	gnErr := err.(*gn.Error)
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, orig)
	assert.Contains(t, gnErr.Err.Error(), "/home/config.yaml")
}
