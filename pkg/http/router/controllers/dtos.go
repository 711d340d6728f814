package controllers

import (
	"github.com/lintang-b-s/Mincutx/pkg/engine"
	"github.com/lintang-b-s/Mincutx/pkg/mincut"
	"github.com/lintang-b-s/Mincutx/pkg/translator"
)

type mincutRequest struct {
	Nodes               []string    `json:"nodes" validate:"required_without=Edges,max=1000000"`
	Edges               [][2]string `json:"edges" validate:"required_without=Nodes,max=5000000"`
	Undirected          bool        `json:"undirected"`
	Algorithm           string      `json:"algorithm" validate:"omitempty,max=32"`
	QueueImplementation string      `json:"queue_implementation" validate:"omitempty,max=32"`
	Balanced            *bool       `json:"balanced"`
}

// config fills the fields the request left out from defaults.
func (r *mincutRequest) config(defaults mincut.Config) mincut.Config {
	cfg := defaults
	if r.Algorithm != "" {
		cfg.Algorithm = engine.Algorithm(r.Algorithm)
	}
	if r.QueueImplementation != "" {
		cfg.QueueImpl = engine.QueueImpl(r.QueueImplementation)
	}
	if r.Balanced != nil {
		cfg.Balanced = *r.Balanced
	}
	return cfg
}

type mincutResponse struct {
	Kind           string     `json:"kind"`
	HeavyPartition []string   `json:"heavy_partition,omitempty"`
	LightPartition []string   `json:"light_partition,omitempty"`
	Components     [][]string `json:"components,omitempty"`
	CutSize        int        `json:"cut_size"`
	Legacy         []any      `json:"legacy"`
}

func NewMincutResponse(res *translator.Result[string]) mincutResponse {
	return mincutResponse{
		Kind:           res.GetKind().String(),
		HeavyPartition: res.GetHeavyPartition(),
		LightPartition: res.GetLightPartition(),
		Components:     res.GetComponents(),
		CutSize:        res.GetCutSize(),
		Legacy:         res.Legacy(),
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
