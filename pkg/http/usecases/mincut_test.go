package usecases

import (
	"errors"
	"testing"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/lintang-b-s/Mincutx/pkg/engine"
	"github.com/lintang-b-s/Mincutx/pkg/engine/viecut"
	"github.com/lintang-b-s/Mincutx/pkg/mincut"
	"github.com/lintang-b-s/Mincutx/pkg/translator"
	"github.com/lintang-b-s/Mincutx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type brokenEngine struct{}

func (brokenEngine) Mincut(_ *da.CompactGraph, _, _ string, _ bool) (engine.MincutResult, error) {
	return nil, engine.ErrEngine
}

func TestMincutService(t *testing.T) {
	svc := NewMincutService(viecut.NewEngine(1, zap.NewNop()), mincut.NewConfig("noi", "bqueue", false), zap.NewNop())

	res, err := svc.Mincut([]string{"lonely"}, [][2]string{{"a", "b"}, {"b", "c"}}, true, svc.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, translator.BIPARTITION, res.GetKind())
	assert.Equal(t, 0, res.GetCutSize())
	assert.Equal(t, []string{"lonely"}, res.GetLightPartition())

	_, err = svc.Mincut(nil, [][2]string{{"a", "b"}}, false, mincut.NewConfig("noi", "pairing", false))
	assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
	assert.True(t, errors.Is(err, engine.ErrUnsupportedConfiguration))

	broken := NewMincutService(brokenEngine{}, mincut.NewConfig("noi", "bqueue", false), zap.NewNop())
	_, err = broken.Mincut(nil, [][2]string{{"a", "b"}}, false, broken.DefaultConfig())
	assert.Equal(t, util.ErrInternalServerError, util.ErrorCode(err))
}
