package errors_test

import (
	"errors"
	"io/fs"
	"testing"

	pkgerrors "github.com/agentstation/rostercheck/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "column",
			ID:       "CEDULA",
		}
		assert.Equal(t, "column CEDULA not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("sheet", "Hoja1")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "master.identifier",
			Message: "column is required",
		}
		assert.Equal(t, "validation failed for field master.identifier: column is required", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid mapping"}
		assert.Equal(t, "validation failed: invalid mapping", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("wrapping empty dataset", func(t *testing.T) {
		err := pkgerrors.WrapValidation("validation", pkgerrors.ErrEmptyDataset)
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.True(t, pkgerrors.IsEmptyDataset(err))
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapValidation("x", nil))
	})
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "file and line",
			err:  &pkgerrors.ParseError{Format: "csv", File: "a.csv", Line: 4, Message: "wrong number of fields"},
			want: "parse error in csv file a.csv at line 4: wrong number of fields",
		},
		{
			name: "file only",
			err:  &pkgerrors.ParseError{Format: "xlsx", File: "a.xlsx", Message: "zip: not a valid zip file"},
			want: "parse error in xlsx file a.xlsx: zip: not a valid zip file",
		},
		{
			name: "no file",
			err:  &pkgerrors.ParseError{Format: "sqlite", Message: "no such table"},
			want: "sqlite parse error: no such table",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIOError(t *testing.T) {
	err := pkgerrors.WrapIO("open", "/tmp/missing.csv", fs.ErrNotExist)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open")
	assert.Contains(t, err.Error(), "/tmp/missing.csv")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "/tmp/missing.csv", ioErr.Path)
}

func TestResourceError(t *testing.T) {
	err := pkgerrors.WrapResource("export", "report", "out.xlsx", pkgerrors.ErrNoInconsistencies)
	assert.Equal(t, "failed to export report out.xlsx: no inconsistencies to export", err.Error())
	assert.True(t, pkgerrors.IsNoInconsistencies(err))

	noID := pkgerrors.NewResourceError("load", "dataset", "", errors.New("boom"))
	assert.Equal(t, "failed to load dataset: boom", noID.Error())
}

func TestConfigError(t *testing.T) {
	base := errors.New("bad yaml")
	err := pkgerrors.NewConfigError("mapping", "cannot read profile", base)
	assert.Equal(t, "configuration error in mapping: cannot read profile", err.Error())
	assert.ErrorIs(t, err, base)
}
