package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget_Service(t *testing.T) {
	got, err := resolveTarget("incidentes", "", "", "/repo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", "safe-incidentes", "internal", "repository", "schema.sql"), got.Path)
	assert.Equal(t, "safe_incidentes", got.Database)

	got, err = resolveTarget("perfiles", "", "perfiles_test", ".")
	require.NoError(t, err)
	assert.Equal(t, "perfiles_test", got.Database)
}

func TestResolveTarget_File(t *testing.T) {
	got, err := resolveTarget("", "patch.sql", "safe_registros", ".")
	require.NoError(t, err)
	assert.Equal(t, target{Path: "patch.sql", Database: "safe_registros"}, got)
}

func TestResolveTarget_Errors(t *testing.T) {
	tests := []struct {
		name                  string
		service, file, dbName string
		msg                   string
	}{
		{"nothing", "", "", "", "one of -service or -file is required"},
		{"both", "perfiles", "x.sql", "", "mutually exclusive"},
		{"file without db", "", "x.sql", "", "-db is required"},
		{"unknown service", "bomberos", "", "", `unknown service "bomberos"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveTarget(tt.service, tt.file, tt.dbName, ".")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
