package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/gl-labs/internal/config"
	"github.com/paperboard/gl-labs/internal/input"
)

type recordingScene struct {
	loadErr error
	loaded  int
	deleted int
}

func (r *recordingScene) Load(*State) error          { r.loaded++; return r.loadErr }
func (r *recordingScene) Update(*State, input.Frame) {}
func (r *recordingScene) Draw(*State)                {}
func (r *recordingScene) Delete()                    { r.deleted++ }

func TestLoadSceneDeletesAfterFailedLoad(t *testing.T) {
	bad := errors.New("link failed")
	scene := &recordingScene{loadErr: bad}

	err := loadScene(scene, NewState(config.Default()))

	require.ErrorIs(t, err, bad)
	assert.Equal(t, 1, scene.loaded)
	assert.Equal(t, 1, scene.deleted)
}

func TestLoadSceneKeepsLoadedScene(t *testing.T) {
	scene := &recordingScene{}

	require.NoError(t, loadScene(scene, NewState(config.Default())))
	assert.Zero(t, scene.deleted)
}

func TestStateAspect(t *testing.T) {
	s := NewState(config.Default())
	assert.InDelta(t, 800.0/600.0, s.Aspect(), 1e-6)

	s.Width, s.Height = 1000, 500
	assert.InDelta(t, 2, s.Aspect(), 1e-6)
}
