package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "1778.54", s.ReferencePayment)
	assert.Equal(t, 14, s.PaymentIntervalDays)
	assert.Contains(t, s.Keywords, "SUNCORP")
	assert.Contains(t, s.Keywords, "OSCAR PROPERTY")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finsight.yaml")

	saved := Default()
	require.NoError(t, Save(path, saved))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finsight.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reference_payment: [not: valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestReferenceAmount(t *testing.T) {
	s := Default()
	amount, err := s.ReferenceAmount()
	require.NoError(t, err)
	assert.Equal(t, "1778.54", amount.StringFixed(2))
}

func TestReferenceAmount_Malformed(t *testing.T) {
	s := &Settings{ReferencePayment: "lots"}
	_, err := s.ReferenceAmount()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reference_payment")
}
