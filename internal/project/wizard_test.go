package project

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestMapWizardErr(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, mapWizardErr(huh.ErrUserAborted), ErrWizardCancelled)

	other := errors.New("tty gone")
	err := mapWizardErr(other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, ErrWizardCancelled)
}

func TestWizardValidators(t *testing.T) {
	t.Parallel()

	assert.Error(t, validateRequired("  "))
	assert.NoError(t, validateRequired("demo"))

	assert.NoError(t, validatePackageName(""))
	assert.NoError(t, validatePackageName("com.example.demo"))
	assert.Error(t, validatePackageName("com.example.1demo"))

	assert.NoError(t, validateApplicationName(""))
	assert.NoError(t, validateApplicationName("DemoApplication"))
	assert.Error(t, validateApplicationName("Demo Application"))
}
