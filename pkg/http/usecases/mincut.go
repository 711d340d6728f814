package usecases

import (
	"errors"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/lintang-b-s/Mincutx/pkg/engine"
	"github.com/lintang-b-s/Mincutx/pkg/mincut"
	"github.com/lintang-b-s/Mincutx/pkg/translator"
	"github.com/lintang-b-s/Mincutx/pkg/util"
	"go.uber.org/zap"
)

// MincutService answers min-cut requests over string labels. Every request
// gets its own GraphModel, so concurrent requests share nothing but the engine.
type MincutService struct {
	solver   *mincut.Solver[string]
	defaults mincut.Config
	log      *zap.Logger
}

func NewMincutService(e engine.Engine, defaults mincut.Config, log *zap.Logger) *MincutService {
	return &MincutService{
		solver:   mincut.NewSolver[string](e, log),
		defaults: defaults,
		log:      log,
	}
}

func (ms *MincutService) DefaultConfig() mincut.Config {
	return ms.defaults
}

func (ms *MincutService) Mincut(nodes []string, edges [][2]string, undirected bool,
	cfg mincut.Config) (*translator.Result[string], error) {

	model := da.NewGraphModel(nodes, nil)
	for _, e := range edges {
		if undirected {
			model.AddUndirectedEdge(e[0], e[1])
		} else {
			model.AddEdge(e[0], e[1])
		}
	}

	res, err := ms.solver.Solve(model, cfg)
	if err != nil {
		if isBadInput(err) {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "mincut %s", cfg)
		}
		ms.log.Error("mincut failed", zap.Error(err), zap.Stringer("config", cfg))
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "mincut %s", cfg)
	}
	return res, nil
}

func isBadInput(err error) bool {
	return errors.Is(err, engine.ErrUnsupportedConfiguration) ||
		errors.Is(err, da.ErrUnknownLabel) ||
		errors.Is(err, da.ErrDuplicateLabel) ||
		errors.Is(err, da.ErrIndexOutOfRange)
}
